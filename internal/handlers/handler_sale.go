package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sale invoices.
type saleHandler struct {
	saleService portssvc.SaleService
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleService) *saleHandler {
	return &saleHandler{
		saleService: ss,
	}
}

// registerSaleRoutes registers routes related to sale invoices.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleService) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.postSale)
		sales.GET("", h.listSales)
		sales.GET("/:invoiceID", h.getSale)
		sales.DELETE("/:invoiceID", h.deleteSale)
	}
}

// postSale godoc
// @Summary Post a sale invoice
// @Description Creates a sale invoice, decrements stock for each item and adds the remaining amount to the customer's balance, all atomically
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateSaleInvoiceRequest true "Invoice details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input or inconsistent totals"
// @Failure 500 {object} map[string]string "Failed to post invoice"
// @Router /sales [post]
func (h *saleHandler) postSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.saleService.PostSale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Sale invoice rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to post sale invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post sale invoice"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": dto.ToSaleInvoiceResponse(created)})
}

// listSales godoc
// @Summary List sale invoices
// @Description Retrieves all sale invoices with their items
// @Tags sales
// @Produce  json
// @Success 200 {array} dto.SaleInvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sale invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sale invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSaleInvoiceResponse(invoices))
}

// getSale godoc
// @Summary Get a sale invoice by ID
// @Description Retrieves a sale invoice with its items
// @Tags sales
// @Produce  json
// @Param   invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.SaleInvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /sales/{invoiceID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "invoiceID")
	if !ok {
		return
	}

	invoice, err := h.saleService.GetSaleByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to get sale invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleInvoiceResponse(invoice))
}

// deleteSale godoc
// @Summary Delete a sale invoice
// @Description Removes a sale invoice and its items; stock and balance effects of the posting are not reversed
// @Tags sales
// @Produce  json
// @Param   invoiceID path int true "Invoice ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /sales/{invoiceID} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "invoiceID")
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), invoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to delete sale invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
