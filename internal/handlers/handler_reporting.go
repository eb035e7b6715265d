package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
)

// reportingHandler handles the dashboard endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
	}
}

// summary godoc
// @Summary Dashboard summary
// @Description Aggregates the company's notes: totals by type, net balance, status counts and recent notes.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	companyID, ok := companyScope(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
