// internal/interfaces/http/handlers/cabinet_order_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-store/cabinet-backend/internal/domain/order"
	"github.com/y-store/cabinet-backend/internal/domain/user"
)

// injectAccount simulates the session middleware for handler tests
func injectAccount(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("account", &user.User{ID: id, Email: "buyer@example.com"})
		c.Next()
	}
}

type stubOrderService struct {
	listResponse *order.OrderListResponse
	detail       *order.OrderDetail
	repeatResult *order.RepeatResult
	err          error

	gotBuyerID string
	gotOrderID string
	gotPage    int
	gotLimit   int
}

func (s *stubOrderService) ListOrders(buyerID string, page, limit int) (*order.OrderListResponse, error) {
	s.gotBuyerID = buyerID
	s.gotPage = page
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.listResponse, nil
}

func (s *stubOrderService) GetOrder(buyerID, orderID string) (*order.OrderDetail, error) {
	s.gotBuyerID = buyerID
	s.gotOrderID = orderID
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func (s *stubOrderService) RepeatOrder(buyerID, orderID string) (*order.RepeatResult, error) {
	s.gotBuyerID = buyerID
	s.gotOrderID = orderID
	if s.err != nil {
		return nil, s.err
	}
	return s.repeatResult, nil
}

type stubInvoiceRenderer struct {
	pdf []byte
	err error
}

func (s *stubInvoiceRenderer) GenerateInvoice(ord *order.Order) (*bytes.Buffer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return bytes.NewBuffer(s.pdf), nil
}

func newOrderTestRouter(orders OrderService, invoices InvoiceRenderer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCabinetOrderHandler(orders, invoices)

	router := gin.New()
	group := router.Group("/v2/cabinet", injectAccount("user-1"))
	group.GET("/orders", handler.ListOrders)
	group.GET("/orders/:order_id", handler.GetOrder)
	group.POST("/orders/:order_id/repeat", handler.RepeatOrder)
	group.GET("/orders/:order_id/invoice", handler.DownloadInvoice)

	return router
}

func TestListOrders_DefaultsAndPassThrough(t *testing.T) {
	stub := &stubOrderService{
		listResponse: &order.OrderListResponse{Orders: []order.Order{}, Total: 0, Page: 1, Pages: 0},
	}
	router := newOrderTestRouter(stub, &stubInvoiceRenderer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", stub.gotBuyerID)
	assert.Equal(t, 1, stub.gotPage)
	assert.Equal(t, 20, stub.gotLimit)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders?page=3&limit=5", nil))

	assert.Equal(t, 3, stub.gotPage)
	assert.Equal(t, 5, stub.gotLimit)

	// Unparseable values fall back to defaults
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders?page=abc&limit=xyz", nil))

	assert.Equal(t, 1, stub.gotPage)
	assert.Equal(t, 20, stub.gotLimit)
}

func TestGetOrder_NotFound(t *testing.T) {
	stub := &stubOrderService{err: order.ErrOrderNotFound}
	router := newOrderTestRouter(stub, &stubInvoiceRenderer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Order not found", payload["error"])
}

func TestGetOrder_ForeignOrderIsForbidden(t *testing.T) {
	stub := &stubOrderService{err: order.ErrAccessDenied}
	router := newOrderTestRouter(stub, &stubInvoiceRenderer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders/not-mine", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Access denied", payload["error"])
}

func TestGetOrder_ReturnsDetail(t *testing.T) {
	stub := &stubOrderService{
		detail: &order.OrderDetail{
			Order: order.Order{ID: "ord-1", OrderNumber: "YS-1001", BuyerID: "user-1"},
		},
	}
	router := newOrderTestRouter(stub, &stubInvoiceRenderer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders/ord-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ord-1", stub.gotOrderID)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "YS-1001", payload["order_number"])
	// No tracking number, so the tracking key is omitted entirely
	assert.NotContains(t, payload, "tracking")
}

func TestRepeatOrder_ReportsCartLineCount(t *testing.T) {
	stub := &stubOrderService{repeatResult: &order.RepeatResult{ItemsCount: 4}}
	router := newOrderTestRouter(stub, &stubInvoiceRenderer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v2/cabinet/orders/ord-1/repeat", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Message    string `json:"message"`
		ItemsCount int    `json:"items_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Items added to cart", payload.Message)
	assert.Equal(t, 4, payload.ItemsCount)
}

func TestDownloadInvoice_StreamsPDF(t *testing.T) {
	stub := &stubOrderService{
		detail: &order.OrderDetail{
			Order: order.Order{ID: "ord-1", OrderNumber: "YS-1001", BuyerID: "user-1"},
		},
	}
	renderer := &stubInvoiceRenderer{pdf: []byte("%PDF-1.7 fake")}
	router := newOrderTestRouter(stub, renderer)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders/ord-1/invoice", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "invoice-YS-1001.pdf")
	assert.Equal(t, "%PDF-1.7 fake", rec.Body.String())
}

func TestDownloadInvoice_RendererFailure(t *testing.T) {
	stub := &stubOrderService{
		detail: &order.OrderDetail{
			Order: order.Order{ID: "ord-1", OrderNumber: "YS-1001", BuyerID: "user-1"},
		},
	}
	renderer := &stubInvoiceRenderer{err: assert.AnError}
	router := newOrderTestRouter(stub, renderer)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/cabinet/orders/ord-1/invoice", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
