package alumni

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

// POST /alumni (public)
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	reg, err := h.Service.Register(&req, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// GET /alumni (admin)
func (h *Handler) List(c *gin.Context) {
	regs, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alumni"})
		return
	}
	c.JSON(http.StatusOK, regs)
}

// DELETE /alumni/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alumni ID"})
		return
	}

	if err := h.Service.Delete(uint(id), admin.AdminID, middleware.GetIPFromContext(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alumni registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "alumni registration deleted"})
}
