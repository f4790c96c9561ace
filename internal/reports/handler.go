package reports

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invicta-fest/festival-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// GET /reports/:type?format=csv&event_id=&status= (superadmin)
func (h *Handler) Export(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	reportType := c.Param("type")
	format := c.DefaultQuery("format", FormatCSV)

	var filter ExportFilter
	if raw := c.Query("event_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
			return
		}
		filter.EventID = uint(id)
	}
	filter.Status = c.Query("status")

	fileBytes, filename, contentType, err := h.Service.Export(
		c.Request.Context(), reportType, format, filter, admin.AdminID, middleware.GetIPFromContext(c),
	)
	if err != nil {
		if !IsValidReportType(reportType) || !IsValidFormat(format) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, fileBytes)
}
