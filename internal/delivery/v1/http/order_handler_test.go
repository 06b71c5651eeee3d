package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeOrderUC возвращает заранее заданные ответы и запоминает последний запрос.
type fakeOrderUC struct {
	lastPlaceReq  *usecase.PlaceOrderReq
	lastStatusReq *usecase.SetStatusReq

	order *domain.Order
	err   error
}

func (f *fakeOrderUC) PlaceOrder(ctx context.Context, req *usecase.PlaceOrderReq) (*domain.Order, error) {
	f.lastPlaceReq = req
	return f.order, f.err
}

func (f *fakeOrderUC) SetStatus(ctx context.Context, req *usecase.SetStatusReq) (*domain.Order, error) {
	f.lastStatusReq = req
	return f.order, f.err
}

func (f *fakeOrderUC) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Order{*f.order}, nil
}

func (f *fakeOrderUC) GetOrder(ctx context.Context, id string) (*usecase.OrderWithItems, error) {
	if f.err != nil {
		return nil, f.err
	}
	return usecase.NewOrderWithItems(f.order, []domain.OrderItem{
		{ID: "item-1", OrderID: f.order.ID, ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("19.99")},
	}), nil
}

func newOrderRouter(uc usecase.OrderUC) *chi.Mux {
	handler := NewOrderHandler(uc, nopLogger{})

	r := chi.NewRouter()
	r.Post("/orders", handler.placeOrder)
	r.Get("/orders", handler.listOrders)
	r.Get("/orders/{id}", handler.getOrder)
	r.Put("/orders/{id}/status", handler.setStatus)
	return r
}

func placedOrder() *domain.Order {
	return &domain.Order{
		ID:            "order-1",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		TotalAmount:   decimal.RequireFromString("44.98"),
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPlaceOrderHandler(t *testing.T) {
	uc := &fakeOrderUC{order: placedOrder()}
	router := newOrderRouter(uc)

	body := `{
		"customerName": "Jane Doe",
		"customerEmail": "jane@example.com",
		"items": [
			{"productId": "p1", "quantity": 2, "price": "19.99"},
			{"productId": "p2", "quantity": 1, "price": "5.00"}
		],
		"totalAmount": "44.98"
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, "44.98", resp.TotalAmount)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, uc.lastPlaceReq)
	require.Len(t, uc.lastPlaceReq.Lines, 2)
	assert.Equal(t, "p1", uc.lastPlaceReq.Lines[0].ProductID)
	assert.Equal(t, "19.99", uc.lastPlaceReq.Lines[0].Price.StringFixed(2))
	assert.Equal(t, "44.98", uc.lastPlaceReq.TotalAmount.StringFixed(2))
}

func TestPlaceOrderHandlerBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"customerName": `},
		{"bad total", `{"customerName": "Jane", "customerEmail": "j@e.com", "items": [], "totalAmount": "abc"}`},
		{"bad line price", `{"customerName": "Jane", "customerEmail": "j@e.com", "items": [{"productId": "p1", "quantity": 1, "price": "9.999"}], "totalAmount": "9.99"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeOrderUC{order: placedOrder()}
			router := newOrderRouter(uc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// До usecase дело не дошло
			assert.Nil(t, uc.lastPlaceReq)
		})
	}
}

func TestPlaceOrderHandlerUsecaseError(t *testing.T) {
	uc := &fakeOrderUC{err: e.Wrap("OrderUseCase.PlaceOrder", e.ErrEmptyOrder)}
	router := newOrderRouter(uc)

	body := `{"customerName": "Jane", "customerEmail": "j@e.com", "items": [], "totalAmount": "0"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, e.ErrEmptyOrder.Error(), resp.Message)
}

func TestSetStatusHandler(t *testing.T) {
	order := placedOrder()
	order.Status = domain.StatusShipped
	uc := &fakeOrderUC{order: order}
	router := newOrderRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/orders/order-1/status",
		strings.NewReader(`{"status": "shipped"}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "shipped", resp.Status)

	require.NotNil(t, uc.lastStatusReq)
	assert.Equal(t, "order-1", uc.lastStatusReq.OrderID)
	assert.Equal(t, "shipped", uc.lastStatusReq.Status)
}

func TestSetStatusHandlerNotFound(t *testing.T) {
	uc := &fakeOrderUC{err: e.Wrap("OrderUseCase.SetStatus", e.ErrOrderNotFound)}
	router := newOrderRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/orders/missing/status",
		strings.NewReader(`{"status": "shipped"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderHandler(t *testing.T) {
	uc := &fakeOrderUC{order: placedOrder()}
	router := newOrderRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/order-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp OrderWithItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order-1", resp.ID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p1", resp.Items[0].ProductID)
	assert.Equal(t, "19.99", resp.Items[0].Price)
}
