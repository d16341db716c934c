package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "farm_hub/internal/domain/order"
	"farm_hub/internal/domain/product"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(ctx context.Context, req domain.Request) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockProductLister struct {
	mock.Mock
}

func (m *MockProductLister) ListProducts(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func postOrder(h *OrderHandler, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/orders", h.CreateOrder)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder_Success(t *testing.T) {
	svc := new(MockOrderPlacer)
	svc.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(req domain.Request) bool {
		return req.Name.String() == "Ada" && req.Quantity.String() == "2"
	})).Return(&domain.Order{ID: "2024-05-01T08:30:00.000Z"}, nil)

	w := postOrder(NewOrderHandler(svc), `{"name":"Ada","phone":"+234","quantity":2,"address":"x","productName":"Tomatoes","salePrice":"500"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Order placed successfully","orderId":"2024-05-01T08:30:00.000Z"}`, w.Body.String())
}

func TestOrderHandler_CreateOrder_ValidationErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrMissingFields, "Missing required fields"},
		{domain.ErrInvalidQuantity, "Invalid quantity"},
		{domain.ErrInvalidPrice, "Invalid sale price"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			svc := new(MockOrderPlacer)
			svc.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := postOrder(NewOrderHandler(svc), `{}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, w.Body.String())
		})
	}
}

func TestOrderHandler_CreateOrder_MalformedBody(t *testing.T) {
	svc := new(MockOrderPlacer)

	w := postOrder(NewOrderHandler(svc), `{"name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	svc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_CreateOrder_StoreError(t *testing.T) {
	svc := new(MockOrderPlacer)
	svc.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, errors.New("append order: quota exceeded"))

	w := postOrder(NewOrderHandler(svc), `{}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to process order","message":"append order: quota exceeded"}`, w.Body.String())
}

func TestProductHandler_ListProducts(t *testing.T) {
	svc := new(MockProductLister)
	svc.On("ListProducts", mock.Anything).Return([]product.Product{
		{ID: 1, ProductName: "Tomatoes", SalePrice: 150},
	}, nil)

	r := gin.New()
	r.GET("/products", NewProductHandler(svc).ListProducts)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"count": 1,
		"products": [{
			"id": 1, "dateAdded": "", "productName": "Tomatoes", "supplierName": "",
			"cost": 0, "salePrice": 150, "margin": "", "notes": ""
		}]
	}`, w.Body.String())
}

func TestProductHandler_ListProducts_Error(t *testing.T) {
	svc := new(MockProductLister)
	svc.On("ListProducts", mock.Anything).Return(nil, errors.New("read products: forbidden"))

	r := gin.New()
	r.GET("/products", NewProductHandler(svc).ListProducts)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch products","message":"read products: forbidden"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/healthz", Health)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
