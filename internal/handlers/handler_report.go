package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportHandler serves exportable report files.
type reportHandler struct {
	reportService portssvc.ReportService
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportService) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes related to report exports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportService) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/sales/export", h.exportSalesReport)
		reports.GET("/inventory/export", h.exportInventoryReport)
	}
}

// exportSalesReport godoc
// @Summary Export sales report
// @Description Downloads all sale invoices as an xlsx spreadsheet
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/sales/export [get]
func (h *reportHandler) exportSalesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportService.SalesReportXLSX(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build sales report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		return
	}

	fileName := fmt.Sprintf("sales_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// exportInventoryReport godoc
// @Summary Export inventory report
// @Description Downloads all products with stock levels as an xlsx spreadsheet
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/inventory/export [get]
func (h *reportHandler) exportInventoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportService.InventoryReportXLSX(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build inventory report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build inventory report"})
		return
	}

	fileName := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, data)
}
