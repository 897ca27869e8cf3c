package order_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/middleware"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/order"
	ordererrors "github.com/AhnKwangHyuny/faddy-pay-stream/internal/order/errors"
)

// ==================== FAKE SERVICE ====================

type fakeOrderService struct {
	CheckoutFn       func(ctx context.Context, ownerID string, req order.CheckoutRequest) (order.CheckoutResponse, error)
	DetailFn         func(ctx context.Context, orderID string) (order.Order, error)
	ConfirmPaymentFn func(ctx context.Context, ownerID string, req order.ConfirmPaymentRequest) (order.ConfirmPaymentResponse, error)
	CancelFn         func(ctx context.Context, orderID string, req order.CancelOrderRequest) (order.CancelPaymentResult, error)
}

func (f *fakeOrderService) Checkout(ctx context.Context, ownerID string, req order.CheckoutRequest) (order.CheckoutResponse, error) {
	return f.CheckoutFn(ctx, ownerID, req)
}
func (f *fakeOrderService) Detail(ctx context.Context, orderID string) (order.Order, error) {
	return f.DetailFn(ctx, orderID)
}
func (f *fakeOrderService) ConfirmPayment(ctx context.Context, ownerID string, req order.ConfirmPaymentRequest) (order.ConfirmPaymentResponse, error) {
	return f.ConfirmPaymentFn(ctx, ownerID, req)
}
func (f *fakeOrderService) Cancel(ctx context.Context, orderID string, req order.CancelOrderRequest) (order.CancelPaymentResult, error) {
	return f.CancelFn(ctx, orderID, req)
}

// ==================== HELPER FUNCTIONS ====================

func setupOrderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withOwner(ownerID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CartSessionKey, ownerID)
		handler(c)
	}
}

// ==================== TEST CASES ====================

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, ownerID string, req order.CheckoutRequest) (order.CheckoutResponse, error) {
				assert.Equal(t, "owner-1", ownerID)
				assert.Equal(t, "홍길동", req.Name)
				return order.CheckoutResponse{
					OrderID:     "ord-1",
					Amount:      20000,
					CheckoutURL: "https://pay.example/checkout",
				}, nil
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.POST("/orders/checkout", withOwner("owner-1", h.Checkout))

		body := `{"name":"홍길동","phoneNumber":"010-1234-5678"}`
		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"checkoutUrl":"https://pay.example/checkout"`)
	})

	t.Run("empty_cart_maps_to_400", func(t *testing.T) {
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, ownerID string, req order.CheckoutRequest) (order.CheckoutResponse, error) {
				return order.CheckoutResponse{}, ordererrors.ErrCartEmpty
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.POST("/orders/checkout", withOwner("owner-1", h.Checkout))

		body := `{"name":"홍길동","phoneNumber":"010-1234-5678"}`
		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad_request_invalid_json", func(t *testing.T) {
		h := order.NewHandler(&fakeOrderService{})
		r := setupOrderRouter()
		r.POST("/orders/checkout", withOwner("owner-1", h.Checkout))

		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Detail(t *testing.T) {
	t.Run("not_found_maps_to_404", func(t *testing.T) {
		svc := &fakeOrderService{
			DetailFn: func(ctx context.Context, orderID string) (order.Order, error) {
				return order.Order{}, ordererrors.ErrOrderNotFound
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.GET("/orders/:id", h.Detail)

		req := httptest.NewRequest(http.MethodGet, "/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_PaymentSuccess(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeOrderService{
			ConfirmPaymentFn: func(ctx context.Context, ownerID string, req order.ConfirmPaymentRequest) (order.ConfirmPaymentResponse, error) {
				assert.Equal(t, "owner-1", ownerID)
				assert.Equal(t, "pay-1", req.PaymentKey)
				assert.Equal(t, "ord-1", req.OrderID)
				assert.Equal(t, int64(20000), req.Amount)
				return order.ConfirmPaymentResponse{Status: "DONE"}, nil
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.GET("/payments/success", withOwner("owner-1", h.PaymentSuccess))

		req := httptest.NewRequest(http.MethodGet, "/payments/success?paymentKey=pay-1&orderId=ord-1&amount=20000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"DONE"`)
	})

	t.Run("missing_query_params_rejected", func(t *testing.T) {
		h := order.NewHandler(&fakeOrderService{})
		r := setupOrderRouter()
		r.GET("/payments/success", withOwner("owner-1", h.PaymentSuccess))

		req := httptest.NewRequest(http.MethodGet, "/payments/success?paymentKey=pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("amount_mismatch_maps_to_400", func(t *testing.T) {
		svc := &fakeOrderService{
			ConfirmPaymentFn: func(ctx context.Context, ownerID string, req order.ConfirmPaymentRequest) (order.ConfirmPaymentResponse, error) {
				return order.ConfirmPaymentResponse{}, ordererrors.ErrAmountMismatch
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.GET("/payments/success", withOwner("owner-1", h.PaymentSuccess))

		req := httptest.NewRequest(http.MethodGet, "/payments/success?paymentKey=pay-1&orderId=ord-1&amount=100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_PaymentFail(t *testing.T) {
	h := order.NewHandler(&fakeOrderService{})
	r := setupOrderRouter()
	r.GET("/payments/fail", h.PaymentFail)

	t.Run("forwards_gateway_code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/payments/fail?code=PAY_PROCESS_CANCELED&message=cancelled", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, w.Body.String(), "PAY_PROCESS_CANCELED")
	})

	t.Run("defaults_when_query_is_empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/payments/fail", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, w.Body.String(), "UNKNOWN")
	})
}

func TestOrderHandler_Cancel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeOrderService{
			CancelFn: func(ctx context.Context, orderID string, req order.CancelOrderRequest) (order.CancelPaymentResult, error) {
				assert.Equal(t, "ord-1", orderID)
				assert.Equal(t, "pay-1", req.PaymentKey)
				return order.CancelPaymentResult{Cancelled: true, OrderID: orderID}, nil
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.POST("/orders/:id/cancel", h.Cancel)

		body := `{"paymentKey":"pay-1","amount":20000}`
		req := httptest.NewRequest(http.MethodPost, "/orders/ord-1/cancel", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"cancelled":true`)
	})

	t.Run("upstream_rejection_maps_to_502", func(t *testing.T) {
		svc := &fakeOrderService{
			CancelFn: func(ctx context.Context, orderID string, req order.CancelOrderRequest) (order.CancelPaymentResult, error) {
				return order.CancelPaymentResult{}, ordererrors.ErrCancelRejected
			},
		}

		h := order.NewHandler(svc)
		r := setupOrderRouter()
		r.POST("/orders/:id/cancel", h.Cancel)

		body := `{"paymentKey":"pay-1"}`
		req := httptest.NewRequest(http.MethodPost, "/orders/ord-1/cancel", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
