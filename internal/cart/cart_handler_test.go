package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
	carterrors "github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart/errors"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/middleware"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	DetailFn       func(ctx context.Context, ownerID string) (cart.CartDetailResponse, error)
	AddItemFn      func(ctx context.Context, ownerID string, req cart.AddItemRequest) error
	UpdateQtyFn    func(ctx context.Context, ownerID, productID, size string, req cart.UpdateQtyRequest) error
	RemoveItemFn   func(ctx context.Context, ownerID, productID, size string) error
	ClearFn        func(ctx context.Context, ownerID string) error
	TakeSnapshotFn func(ctx context.Context, ownerID string) (cart.Snapshot, error)
}

func (f *fakeCartService) Detail(ctx context.Context, ownerID string) (cart.CartDetailResponse, error) {
	return f.DetailFn(ctx, ownerID)
}
func (f *fakeCartService) AddItem(ctx context.Context, ownerID string, req cart.AddItemRequest) error {
	if f.AddItemFn == nil {
		return nil
	}
	return f.AddItemFn(ctx, ownerID, req)
}
func (f *fakeCartService) UpdateQty(ctx context.Context, ownerID, productID, size string, req cart.UpdateQtyRequest) error {
	return f.UpdateQtyFn(ctx, ownerID, productID, size, req)
}
func (f *fakeCartService) RemoveItem(ctx context.Context, ownerID, productID, size string) error {
	return f.RemoveItemFn(ctx, ownerID, productID, size)
}
func (f *fakeCartService) Clear(ctx context.Context, ownerID string) error {
	return f.ClearFn(ctx, ownerID)
}
func (f *fakeCartService) TakeSnapshot(ctx context.Context, ownerID string) (cart.Snapshot, error) {
	return f.TakeSnapshotFn(ctx, ownerID)
}

// ==================== HELPER FUNCTIONS ====================

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withSession(ownerID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CartSessionKey, ownerID)
		handler(c)
	}
}

// ==================== TEST CASES ====================

func TestCartHandler_Detail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			DetailFn: func(ctx context.Context, ownerID string) (cart.CartDetailResponse, error) {
				assert.Equal(t, "owner-1", ownerID)
				return cart.CartDetailResponse{
					Items:         []cart.LineItem{{ProductID: "p1", Size: "M", Quantity: 2, UnitPrice: 10000}},
					TotalItems:    2,
					TotalPrice:    20000,
					ShippingFee:   3000,
					PayableAmount: 23000,
				}, nil
			},
		}

		h := cart.NewHandler(svc)
		r := setupTestRouter()
		r.GET("/cart", withSession("owner-1", h.Detail))

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPrice":20000`)
		assert.Contains(t, w.Body.String(), `"shippingFee":3000`)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, ownerID string, req cart.AddItemRequest) error {
				assert.Equal(t, "owner-1", ownerID)
				assert.Equal(t, "p1", req.ProductID)
				assert.Equal(t, int32(2), req.Quantity)
				return nil
			},
		}

		h := cart.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/cart/items", withSession("owner-1", h.AddItem))

		body := `{"productId":"p1","name":"hoodie","size":"M","quantity":2,"unitPrice":10000}`
		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("bad_request_invalid_json", func(t *testing.T) {
		h := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.POST("/cart/items", withSession("owner-1", h.AddItem))

		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"quantity":"two"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service_rejection_maps_to_http_status", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, ownerID string, req cart.AddItemRequest) error {
				return carterrors.ErrInvalidQuantity
			},
		}

		h := cart.NewHandler(svc)
		r := setupTestRouter()
		r.POST("/cart/items", withSession("owner-1", h.AddItem))

		body := `{"productId":"p1","name":"hoodie","quantity":0,"unitPrice":10000}`
		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	t.Run("success_forwards_path_and_query", func(t *testing.T) {
		svc := &fakeCartService{
			UpdateQtyFn: func(ctx context.Context, ownerID, productID, size string, req cart.UpdateQtyRequest) error {
				assert.Equal(t, "p1", productID)
				assert.Equal(t, "M", size)
				assert.Equal(t, int32(5), req.Quantity)
				return nil
			},
		}

		h := cart.NewHandler(svc)
		r := setupTestRouter()
		r.PATCH("/cart/items/:productId", withSession("owner-1", h.UpdateQty))

		req := httptest.NewRequest(http.MethodPatch, "/cart/items/p1?size=M", strings.NewReader(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad_request_invalid_json", func(t *testing.T) {
		h := cart.NewHandler(&fakeCartService{})
		r := setupTestRouter()
		r.PATCH("/cart/items/:productId", withSession("owner-1", h.UpdateQty))

		req := httptest.NewRequest(http.MethodPatch, "/cart/items/p1", strings.NewReader(`{"quantity":"five"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	svc := &fakeCartService{
		RemoveItemFn: func(ctx context.Context, ownerID, productID, size string) error {
			assert.Equal(t, "owner-1", ownerID)
			assert.Equal(t, "p1", productID)
			assert.Equal(t, "M", size)
			return nil
		},
	}

	h := cart.NewHandler(svc)
	r := setupTestRouter()
	r.DELETE("/cart/items/:productId", withSession("owner-1", h.RemoveItem))

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/p1?size=M", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	called := false
	svc := &fakeCartService{
		ClearFn: func(ctx context.Context, ownerID string) error {
			called = true
			assert.Equal(t, "owner-1", ownerID)
			return nil
		},
	}

	h := cart.NewHandler(svc)
	r := setupTestRouter()
	r.DELETE("/cart", withSession("owner-1", h.Clear))

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
