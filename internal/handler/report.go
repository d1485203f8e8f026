package handler

import (
	"fmt"
	"net/http"
	"time"

	"kas-taruna/internal/logger"
	"kas-taruna/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{ reports *service.ReportService }

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Get handles GET /api/reports
func (h *ReportHandler) Get(c *gin.Context) {
	start, end := monthRange(c)
	r, err := h.reports.Build(c.Request.Context(), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	if r.Incomplete == nil {
		r.Incomplete = []service.MemberArrears{}
	}
	c.JSON(http.StatusOK, r)
}

// Export handles GET /api/reports/export — streams the styled workbook.
func (h *ReportHandler) Export(c *gin.Context) {
	start, end := monthRange(c)
	r, err := h.reports.Build(c.Request.Context(), start, end)
	if err != nil {
		fail(c, err)
		return
	}

	now := time.Now()
	f, err := service.ExcelReport(r, now)
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFileName(now)))
	if err := f.Write(c.Writer); err != nil {
		logger.Error("report.export write failed", "err", err)
	}
}
