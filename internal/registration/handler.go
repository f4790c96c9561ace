package registration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/invicta-fest/festival-backend/middleware"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// Submit - POST /registrations (public)
// @Summary Submit a registration against an open event
// @Tags registrations
// @Accept json
// @Produce json
// @Param payload body registration.SubmitRequest true "submission"
// @Success 201 {object} registration.Registration
// @Router /registrations [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	reg, err := h.Service.Submit(c.Request.Context(), req, ip)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrRegistrationClosed),
			errors.Is(err, ErrDeadlinePassed),
			errors.Is(err, ErrTeamNameRequired),
			errors.Is(err, ErrTeamSizeOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit registration"})
		}
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// ===========================
// Admin listing - GET /registrations?event_id=&search= (admin)
func (h *Handler) ListAll(c *gin.Context) {
	var filter ListFilter
	if raw := c.Query("event_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
			return
		}
		filter.EventID = uint(id)
	}
	filter.Search = c.Query("search")

	rows, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list registrations"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ===========================
// Payment transition - PATCH /registrations/:id/payment-status (admin)
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration ID"})
		return
	}

	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	reg, err := h.Service.SetPaymentStatus(c.Request.Context(), uint(id), req, admin.AdminID, ip)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "payment status updated",
		"registration": reg,
	})
}

// ===========================
// Delete - DELETE /registrations/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration ID"})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if err := h.Service.Delete(c.Request.Context(), uint(id), admin.AdminID, ip); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registration deleted successfully"})
}
