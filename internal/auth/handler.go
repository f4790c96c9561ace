package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
	"github.com/invicta-fest/festival-backend/middleware"
)

type Handler struct {
	Service  Service
	AuditSvc auditlog.Service
}

func NewHandler(s Service, auditSvc auditlog.Service) *Handler {
	return &Handler{Service: s, AuditSvc: auditSvc}
}

// ===========================
// Login - POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	resp, err := h.Service.Login(req)
	if err != nil {
		h.AuditSvc.LogAction(c.Request.Context(), nil, "ADMIN_LOGIN", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		}, ip, "failure")

		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	h.AuditSvc.LogAction(c.Request.Context(), &resp.Admin.ID, "ADMIN_LOGIN", map[string]interface{}{
		"email": resp.Admin.Email,
		"role":  resp.Admin.Role,
	}, ip, "success")

	c.JSON(http.StatusOK, resp)
}

// ===========================
// Current admin - GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	actor, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	admin, err := h.Service.GetAdminByID(actor.AdminID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// ===========================
// Create admin - POST /admins (superadmin)
func (h *Handler) CreateAdmin(c *gin.Context) {
	actor, _ := middleware.AdminFromContext(c)
	ip := middleware.GetIPFromContext(c)

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.CreateAdmin(req)
	if err != nil {
		h.AuditSvc.LogAction(c.Request.Context(), &actor.AdminID, "ADMIN_CREATED", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		}, ip, "failure")

		if errors.Is(err, ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin: " + err.Error()})
		return
	}

	h.AuditSvc.LogAction(c.Request.Context(), &actor.AdminID, "ADMIN_CREATED", map[string]interface{}{
		"admin_id": created.ID,
		"email":    created.Email,
		"role":     created.Role,
	}, ip, "success")

	c.JSON(http.StatusCreated, created)
}

// ===========================
// List admins - GET /admins (superadmin)
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.Service.ListAdmins()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list admins"})
		return
	}
	c.JSON(http.StatusOK, admins)
}

// ===========================
// Delete admin - DELETE /admins/:id (superadmin)
func (h *Handler) DeleteAdmin(c *gin.Context) {
	actor, _ := middleware.AdminFromContext(c)
	ip := middleware.GetIPFromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin ID"})
		return
	}

	if err := h.Service.DeleteAdmin(uint(id), actor.AdminID); err != nil {
		h.AuditSvc.LogAction(c.Request.Context(), &actor.AdminID, "ADMIN_DELETED", map[string]interface{}{
			"admin_id": id,
			"error":    err.Error(),
		}, ip, "failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.AuditSvc.LogAction(c.Request.Context(), &actor.AdminID, "ADMIN_DELETED", map[string]interface{}{
		"admin_id": id,
	}, ip, "success")

	c.JSON(http.StatusOK, gin.H{"message": "admin deleted successfully"})
}
