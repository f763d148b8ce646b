package report

import (
	"net/http"

	"workshop-service/internal/pkg/response"
	reportservice "workshop-service/internal/service/report"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *reportservice.ReportService
}

func NewReportHandler(reportService *reportservice.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary returns the derived workshop statistics.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summarize(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to build report", err)
		return
	}
	response.Success(c, http.StatusOK, "report generated", summary)
}
