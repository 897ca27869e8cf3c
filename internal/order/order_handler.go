package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/middleware"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Checkout(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)

	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Checkout(ctx, ownerID, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusCreated, res)
}

func (h *Handler) Detail(ctx *gin.Context) {
	res, err := h.service.Detail(ctx, ctx.Param("id"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Cancel(ctx *gin.Context) {
	var req CancelOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Cancel(ctx, ctx.Param("id"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, res)
}

// PaymentSuccess is the gateway's success redirect target:
// ?paymentKey=&orderId=&amount=
func (h *Handler) PaymentSuccess(ctx *gin.Context) {
	ownerID := ctx.GetString(middleware.CartSessionKey)

	paymentKey := ctx.Query("paymentKey")
	orderID := ctx.Query("orderId")
	amount, err := strconv.ParseInt(ctx.Query("amount"), 10, 64)
	if paymentKey == "" || orderID == "" || err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST",
			"paymentKey, orderId and amount query parameters are required", nil)
		return
	}

	res, err := h.service.ConfirmPayment(ctx, ownerID, ConfirmPaymentRequest{
		PaymentKey: paymentKey,
		OrderID:    orderID,
		Amount:     amount,
	})
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, res)
}

// PaymentFail is the gateway's failure redirect target: ?code=&message=
func (h *Handler) PaymentFail(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		code = "UNKNOWN"
	}
	message := ctx.Query("message")
	if message == "" {
		message = "Payment failed"
	}

	response.Error(ctx, http.StatusPaymentRequired, code, message, nil)
}
