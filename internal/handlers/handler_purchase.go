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

// purchaseHandler handles HTTP requests related to purchase invoices.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseService
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseService) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
	}
}

// registerPurchaseRoutes registers routes related to purchase invoices.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseService) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.postPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:invoiceID", h.getPurchase)
		purchases.DELETE("/:invoiceID", h.deletePurchase)
	}
}

// postPurchase godoc
// @Summary Post a purchase invoice
// @Description Creates a purchase invoice, increments stock for each item and adds the remaining amount to the supplier's balance, all atomically
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreatePurchaseInvoiceRequest true "Invoice details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input or inconsistent totals"
// @Failure 500 {object} map[string]string "Failed to post invoice"
// @Router /purchases [post]
func (h *purchaseHandler) postPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.purchaseService.PostPurchase(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Purchase invoice rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to post purchase invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post purchase invoice"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": dto.ToPurchaseInvoiceResponse(created)})
}

// listPurchases godoc
// @Summary List purchase invoices
// @Description Retrieves all purchase invoices with their items
// @Tags purchases
// @Produce  json
// @Success 200 {array} dto.PurchaseInvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.purchaseService.ListPurchases(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list purchase invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchase invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseInvoiceResponse(invoices))
}

// getPurchase godoc
// @Summary Get a purchase invoice by ID
// @Description Retrieves a purchase invoice with its items
// @Tags purchases
// @Produce  json
// @Param   invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.PurchaseInvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /purchases/{invoiceID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "invoiceID")
	if !ok {
		return
	}

	invoice, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to get purchase invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve purchase invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseInvoiceResponse(invoice))
}

// deletePurchase godoc
// @Summary Delete a purchase invoice
// @Description Removes a purchase invoice and its items; stock and balance effects of the posting are not reversed
// @Tags purchases
// @Produce  json
// @Param   invoiceID path int true "Invoice ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /purchases/{invoiceID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "invoiceID")
	if !ok {
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), invoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to delete purchase invoice", slog.Int64("invoice_id", invoiceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
