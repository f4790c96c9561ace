package update

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/invicta-fest/festival-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// GET /updates — active ticker items only
func (h *Handler) ListActive(c *gin.Context) {
	updates, err := h.Service.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list updates"})
		return
	}
	c.JSON(http.StatusOK, updates)
}

// GET /updates/all (admin) — includes inactive
func (h *Handler) ListAll(c *gin.Context) {
	updates, err := h.Service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list updates"})
		return
	}
	c.JSON(http.StatusOK, updates)
}

// POST /updates (admin)
func (h *Handler) Create(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	u, err := h.Service.Create(&req, admin.AdminID, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create update"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// PUT /updates/:id (admin)
func (h *Handler) Edit(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update ID"})
		return
	}

	var req CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	u, err := h.Service.Edit(uint(id), &req, admin.AdminID, middleware.GetIPFromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "update not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit update"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /updates/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update ID"})
		return
	}

	if err := h.Service.Delete(uint(id), admin.AdminID, middleware.GetIPFromContext(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "update not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "update deleted"})
}
