package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/invicta-fest/festival-backend/internal/teamsize"
	"github.com/invicta-fest/festival-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// List Events - GET /events?dept=
// @Summary List events, optionally filtered by department
// @Tags events
// @Produce json
// @Param dept query string false "department filter"
// @Success 200 {array} event.Event
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Query("dept"))
	if err != nil {
		if errors.Is(err, ErrInvalidDepartment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ===========================
// Get Event - GET /events/:id
// The parsed team-size bounds are echoed so the registration form can
// size its member inputs without reimplementing the parser.
func (h *Handler) GetEventByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	e, err := h.Service.GetEventByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	bounds := teamsize.Parse(e.TeamSize)
	c.JSON(http.StatusOK, gin.H{
		"event":         e,
		"team_bounds":   bounds,
		"is_team_event": bounds.IsTeamEvent(),
	})
}

// ===========================
// Create Event - POST /events (admin)
func (h *Handler) CreateEvent(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	created, err := h.Service.CreateEvent(&req, admin.AdminID, ip)
	if err != nil {
		if errors.Is(err, ErrInvalidDepartment) || errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ===========================
// Update Event - PUT /events/:id (admin)
func (h *Handler) UpdateEvent(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	updated, err := h.Service.UpdateEvent(uint(id), &req, admin.AdminID, ip)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		if errors.Is(err, ErrInvalidDepartment) || errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ===========================
// Registration flag - PATCH /events/:id/registration-status (admin)
func (h *Handler) UpdateRegistrationStatus(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req RegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if err := h.Service.SetRegistrationOpen(uint(id), *req.Open, admin.AdminID, ip); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update registration status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "registration status updated"})
}

// ===========================
// Like toggle - PATCH /events/:id/like (public)
func (h *Handler) ToggleLike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if err := h.Service.ToggleLike(uint(id), req.IsUnlike); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "like updated"})
}

// ===========================
// Delete Event - DELETE /events/:id (admin)
func (h *Handler) DeleteEvent(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if err := h.Service.DeleteEvent(uint(id), admin.AdminID, ip); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted successfully"})
}
