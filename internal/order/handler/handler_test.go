package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fekuna/storefront-service/internal/auth"
	"github.com/fekuna/storefront-service/internal/model"
	"github.com/fekuna/storefront-service/internal/order"
	"github.com/fekuna/storefront-service/internal/order/dto"
	"github.com/fekuna/storefront-service/pkg/logger"
)

type stubUseCase struct {
	createErr error
	getErr    error
	created   *model.Order
}

func (s *stubUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubUseCase) ListOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return nil, nil
}

func (s *stubUseCase) GetOrder(ctx context.Context, callerID, id string) (*model.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.created, nil
}

func (s *stubUseCase) UpdateStatus(ctx context.Context, orderID string, status string) (*model.Order, error) {
	return nil, nil
}

func setIdentity(c *gin.Context) {
	c.Set("auth.identity", auth.Identity{CustomerID: "c1", Role: model.RoleCustomer})
}

func newRouter(uc order.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(uc, logger.NewNop())

	r := gin.New()
	r.POST("/api/orders", setIdentity, h.Create)
	r.GET("/api/orders/:id", setIdentity, h.Get)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"empty order", order.ErrEmptyOrder, http.StatusBadRequest, "Order must contain at least one item"},
		{"invalid quantity", order.ErrInvalidQuantity, http.StatusBadRequest, "Item quantity must be positive"},
		{"unknown product", order.ErrProductNotFound, http.StatusBadRequest, "One or more products not found"},
		{"insufficient stock", order.ErrInsufficientStock, http.StatusConflict, "insufficient stock"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&stubUseCase{createErr: tc.err})

			w := post(r, "/api/orders", `{"items":[{"productId":"p1","quantity":1}]}`)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	r := newRouter(&stubUseCase{})

	w := post(r, "/api/orders", `{"items":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestCreateOrderReturnsCreated(t *testing.T) {
	uc := &stubUseCase{created: &model.Order{
		BaseModel:  model.BaseModel{ID: "o1"},
		CustomerID: "c1",
		Status:     model.OrderStatusPending,
	}}
	r := newRouter(uc)

	w := post(r, "/api/orders", `{"items":[{"productId":"p1","quantity":1}]}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"o1"`)
}

func TestGetOrderErrorMapping(t *testing.T) {
	r := newRouter(&stubUseCase{getErr: order.ErrNotFound})
	req := httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	r = newRouter(&stubUseCase{getErr: order.ErrForbidden})
	req = httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
