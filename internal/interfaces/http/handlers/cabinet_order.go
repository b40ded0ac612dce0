// internal/interfaces/http/handlers/cabinet_order.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/y-store/cabinet-backend/internal/domain/order"
	"github.com/y-store/cabinet-backend/internal/interfaces/http/middleware"
)

// OrderService is the order-history surface the handler needs
type OrderService interface {
	ListOrders(buyerID string, page, limit int) (*order.OrderListResponse, error)
	GetOrder(buyerID, orderID string) (*order.OrderDetail, error)
	RepeatOrder(buyerID, orderID string) (*order.RepeatResult, error)
}

// InvoiceRenderer renders an order into a PDF document
type InvoiceRenderer interface {
	GenerateInvoice(ord *order.Order) (*bytes.Buffer, error)
}

// CabinetOrderHandler handles cabinet order endpoints
type CabinetOrderHandler struct {
	orders   OrderService
	invoices InvoiceRenderer
}

// NewCabinetOrderHandler creates a new cabinet order handler
func NewCabinetOrderHandler(orders OrderService, invoices InvoiceRenderer) *CabinetOrderHandler {
	return &CabinetOrderHandler{
		orders:   orders,
		invoices: invoices,
	}
}

// ListOrders handles GET /v2/cabinet/orders.
// Unparseable page/limit fall back to defaults; parseable values are
// passed through as given.
func (h *CabinetOrderHandler) ListOrders(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	response, err := h.orders.ListOrders(account.ID, page, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /v2/cabinet/orders/:order_id
func (h *CabinetOrderHandler) GetOrder(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.orders.GetOrder(account.ID, c.Param("order_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// RepeatOrder handles POST /v2/cabinet/orders/:order_id/repeat
func (h *CabinetOrderHandler) RepeatOrder(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.orders.RepeatOrder(account.ID, c.Param("order_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Items added to cart",
		"items_count": result.ItemsCount,
	})
}

// DownloadInvoice handles GET /v2/cabinet/orders/:order_id/invoice
func (h *CabinetOrderHandler) DownloadInvoice(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.orders.GetOrder(account.ID, c.Param("order_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	pdfBuffer, err := h.invoices.GenerateInvoice(&detail.Order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", detail.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
