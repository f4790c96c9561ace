package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// List Audit Logs - GET /auditlogs?page=&limit=&action=&status=&admin_id=&from=&to=
func (h *Handler) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}

	filter := AuditLogFilter{
		Action: c.Query("action"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	if raw := c.Query("admin_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			adminID := uint(id)
			filter.AdminID = &adminID
		}
	}
	if raw := c.Query("from"); raw != "" {
		if ts, err := time.Parse("2006-01-02", raw); err == nil {
			filter.FromDate = &ts
		}
	}
	if raw := c.Query("to"); raw != "" {
		if ts, err := time.Parse("2006-01-02", raw); err == nil {
			// inclusive end of day
			end := ts.Add(24*time.Hour - time.Second)
			filter.ToDate = &end
		}
	}

	result, err := h.Service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ===========================
// Get Audit Log - GET /auditlogs/:id
func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audit log ID"})
		return
	}

	entry, err := h.Service.GetAuditLogByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "audit log not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
