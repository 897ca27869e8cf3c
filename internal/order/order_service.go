package order

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
	ordererrors "github.com/AhnKwangHyuny/faddy-pay-stream/internal/order/errors"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/payment"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, ownerID string, req CheckoutRequest) (CheckoutResponse, error)
	Detail(ctx context.Context, orderID string) (Order, error)
	ConfirmPayment(ctx context.Context, ownerID string, req ConfirmPaymentRequest) (ConfirmPaymentResponse, error)
	Cancel(ctx context.Context, orderID string, req CancelOrderRequest) (CancelPaymentResult, error)
}

// CartEventPublisher emits the clear-cart signal once a collaborator
// reports payment success. The cart itself stays editable until then.
type CartEventPublisher interface {
	PublishClearCart(ctx context.Context, ownerID string) error
}

type service struct {
	client    Client
	cartSvc   cart.Service
	gateway   payment.Gateway
	publisher CartEventPublisher
	amounts   AmountStore
	validate  *validator.Validate
	logger    *zap.Logger

	couponDiscount int64
	successURL     string
	failURL        string
}

type Deps struct {
	Client    Client
	CartSvc   cart.Service
	Gateway   payment.Gateway
	Publisher CartEventPublisher
	Amounts   AmountStore
	Logger    *zap.Logger

	CouponDiscount int64
	SuccessURL     string
	FailURL        string
}

var phonePattern = regexp.MustCompile(`^01[016789]-?[0-9]{3,4}-?[0-9]{4}$`)

func NewService(deps Deps) Service {
	if deps.Client == nil {
		panic("order client cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Gateway == nil {
		panic("payment gateway cannot be nil")
	}
	if deps.Publisher == nil {
		panic("cart event publisher cannot be nil")
	}
	if deps.Amounts == nil {
		deps.Amounts = NewMemoryAmountStore()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		client:         deps.Client,
		cartSvc:        deps.CartSvc,
		gateway:        deps.Gateway,
		publisher:      deps.Publisher,
		amounts:        deps.Amounts,
		validate:       validator.New(),
		logger:         deps.Logger,
		couponDiscount: deps.CouponDiscount,
		successURL:     deps.SuccessURL,
		failURL:        deps.FailURL,
	}
}

func (s *service) Checkout(ctx context.Context, ownerID string, req CheckoutRequest) (CheckoutResponse, error) {
	logger := s.logger.With(zap.String("owner_id", ownerID))

	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, ordererrors.ErrInvalidOrderer
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return CheckoutResponse{}, ordererrors.ErrInvalidPhoneNumber
	}

	snapshot, err := s.cartSvc.TakeSnapshot(ctx, ownerID)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(snapshot.Items) == 0 {
		return CheckoutResponse{}, ordererrors.ErrCartEmpty
	}

	created, err := s.client.Create(ctx, buildPurchaseOrder(req, snapshot))
	if err != nil {
		logger.Error("order creation failed", zap.Error(err))
		return CheckoutResponse{}, err
	}

	// the collaborator's total is authoritative; the snapshot total is a
	// display value
	amount := created.TotalPrice
	if amount == 0 {
		amount = snapshot.TotalPrice
	}
	if req.CouponApplied {
		amount -= s.couponDiscount
		if amount < 0 {
			amount = 0
		}
	}

	orderName := buildOrderName(snapshot)

	session, err := s.gateway.RequestPayment(ctx, payment.PaymentRequest{
		OrderID:       created.OrderID,
		OrderName:     orderName,
		Amount:        amount,
		CustomerName:  req.Name,
		CustomerPhone: req.PhoneNumber,
		SuccessURL:    s.successURL,
		FailURL:       s.failURL,
	})
	if err != nil {
		logger.Error("payment session request failed",
			zap.String("order_id", created.OrderID),
			zap.Error(err),
		)
		return CheckoutResponse{}, err
	}

	s.amounts.Remember(ctx, created.OrderID, amount)

	logger.Info("checkout started",
		zap.String("order_id", created.OrderID),
		zap.Int64("amount", amount),
	)

	return CheckoutResponse{
		OrderID:     created.OrderID,
		OrderName:   orderName,
		Amount:      amount,
		CheckoutURL: session.CheckoutURL,
	}, nil
}

func (s *service) Detail(ctx context.Context, orderID string) (Order, error) {
	return s.client.Get(ctx, orderID)
}

func (s *service) ConfirmPayment(ctx context.Context, ownerID string, req ConfirmPaymentRequest) (ConfirmPaymentResponse, error) {
	logger := s.logger.With(
		zap.String("owner_id", ownerID),
		zap.String("order_id", req.OrderID),
	)

	order, err := s.client.Get(ctx, req.OrderID)
	if err != nil {
		return ConfirmPaymentResponse{}, err
	}

	if !s.amountMatches(ctx, req.OrderID, order.TotalPrice, req.Amount) {
		logger.Warn("payment amount mismatch, refusing to confirm",
			zap.Int64("order_total", order.TotalPrice),
			zap.Int64("callback_amount", req.Amount),
		)
		return ConfirmPaymentResponse{}, ordererrors.ErrAmountMismatch
	}

	conf, err := s.gateway.Confirm(ctx, req.PaymentKey, req.OrderID, req.Amount)
	if err != nil {
		logger.Error("payment confirmation failed", zap.Error(err))
		return ConfirmPaymentResponse{}, err
	}

	// cart clears only after the collaborator confirmed success; a lost
	// event leaves the cart intact, never the other way around
	if err := s.publisher.PublishClearCart(ctx, ownerID); err != nil {
		logger.Warn("failed to publish clear-cart event", zap.Error(err))
	}

	return ConfirmPaymentResponse{
		OrderID:    conf.OrderID,
		PaymentKey: conf.PaymentKey,
		Amount:     conf.TotalAmount,
		Status:     conf.Status,
	}, nil
}

func (s *service) Cancel(ctx context.Context, orderID string, req CancelOrderRequest) (CancelPaymentResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return CancelPaymentResult{}, ordererrors.ErrInvalidOrderer
	}

	reason := req.CancelReason
	if reason == "" {
		reason = "고객 요청에 의한 취소"
	}

	result, err := s.client.CancelPayment(ctx, CancelPaymentRequest{
		OrderID:            orderID,
		CancelReason:       reason,
		CancellationItems:  "전체",
		PaymentKey:         req.PaymentKey,
		CancellationAmount: req.Amount,
	})
	if err != nil {
		if errors.Is(err, ordererrors.ErrOrderServiceUnavailable) {
			// degraded path: cancel at the gateway directly so the
			// customer is not left charged while the collaborator is down
			s.logger.Warn("order service unavailable, cancelling at the gateway",
				zap.String("order_id", orderID),
			)
			if gwErr := s.gateway.Cancel(ctx, req.PaymentKey, reason, req.Amount); gwErr != nil {
				return CancelPaymentResult{}, gwErr
			}
			return CancelPaymentResult{
				Cancelled:          true,
				OrderID:            orderID,
				PaymentKey:         req.PaymentKey,
				CancellationAmount: req.Amount,
			}, nil
		}
		return CancelPaymentResult{}, err
	}

	if !result.Cancelled {
		return CancelPaymentResult{}, ordererrors.ErrCancelRejected
	}

	s.logger.Info("order cancelled",
		zap.String("order_id", orderID),
		zap.Int64("amount", req.Amount),
	)
	return result, nil
}

func (s *service) amountMatches(ctx context.Context, orderID string, orderTotal, callbackAmount int64) bool {
	// the amount the session was opened with is the exact expectation
	if expected, ok := s.amounts.Lookup(ctx, orderID); ok {
		return callbackAmount == expected
	}

	// no record (restart, expiry): fall back to the order total, allowing
	// the coupon-discounted variant since the session may have been opened
	// with the reduced amount
	if callbackAmount == orderTotal {
		return true
	}
	return s.couponDiscount > 0 && callbackAmount == orderTotal-s.couponDiscount
}

func buildPurchaseOrder(req CheckoutRequest, snapshot cart.Snapshot) PurchaseOrder {
	items := make([]PurchaseOrderItem, 0, len(snapshot.Items))
	for i, item := range snapshot.Items {
		size := item.Size
		if size == "" {
			size = "FREE"
		}
		items = append(items, PurchaseOrderItem{
			ItemIdx:     int32(i + 1), // collaborator requires 1-based indexes
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.UnitPrice,
			Size:        size,
			Amount:      item.UnitPrice * int64(item.Quantity),
			Quantity:    item.Quantity,
			State:       StatusOrderCompleted,
		})
	}

	return PurchaseOrder{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		TotalPrice:  snapshot.TotalPrice,
		Status:      StatusOrderCompleted,
		Items:       items,
	}
}

// gateway order names are capped at 80 characters
func buildOrderName(snapshot cart.Snapshot) string {
	names := make([]string, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		names = append(names, item.ProductName)
	}
	name := strings.Join(names, ", ")
	if runes := []rune(name); len(runes) > 80 {
		name = string(runes[:80])
	}
	return name
}
