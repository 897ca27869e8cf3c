package cart

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	carterrors "github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart/errors"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, ownerID string) (CartDetailResponse, error)
	AddItem(ctx context.Context, ownerID string, req AddItemRequest) error
	UpdateQty(ctx context.Context, ownerID, productID, size string, req UpdateQtyRequest) error
	RemoveItem(ctx context.Context, ownerID, productID, size string) error
	Clear(ctx context.Context, ownerID string) error
	TakeSnapshot(ctx context.Context, ownerID string) (Snapshot, error)
}

// ShippingPolicy derives the display-only shipping fee: free at or above
// the threshold, flat cost below it.
type ShippingPolicy struct {
	FreeThreshold int64
	DefaultCost   int64
}

func (p ShippingPolicy) Fee(totalPrice int64) int64 {
	if totalPrice == 0 || totalPrice >= p.FreeThreshold {
		return 0
	}
	return p.DefaultCost
}

type service struct {
	store    Store
	shipping ShippingPolicy
	validate *validator.Validate
	logger   *zap.Logger
}

// Sizeless products carry the FREE placeholder so that the same empty
// reference adds, updates and removes one line.
func normalizeSize(size string) string {
	if size == "" {
		return "FREE"
	}
	return size
}

func NewService(store Store, shipping ShippingPolicy, logger *zap.Logger) Service {
	if store == nil {
		panic("cart store cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		store:    store,
		shipping: shipping,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *service) Detail(ctx context.Context, ownerID string) (CartDetailResponse, error) {
	state := s.store.Load(ctx, ownerID)
	fee := s.shipping.Fee(state.TotalPrice)

	return CartDetailResponse{
		Items:         state.Items,
		TotalItems:    state.TotalItems,
		TotalPrice:    state.TotalPrice,
		ShippingFee:   fee,
		PayableAmount: state.TotalPrice + fee,
	}, nil
}

func (s *service) AddItem(ctx context.Context, ownerID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}

	if req.Quantity <= 0 {
		// the reducer treats this as a no-op; reject it here so the page
		// can show a validation message instead of silently dropping it
		s.logger.Warn("rejected add with non-positive quantity",
			zap.String("owner_id", ownerID),
			zap.String("product_id", req.ProductID),
			zap.Int32("quantity", req.Quantity),
		)
		return carterrors.ErrInvalidQuantity
	}

	state := s.store.Load(ctx, ownerID)
	state = Add(state, LineItem{
		ProductID:     req.ProductID,
		Name:          req.Name,
		ImageURL:      req.ImageURL,
		Size:          normalizeSize(req.Size),
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		DiscountPrice: req.DiscountPrice,
	})
	s.store.Save(ctx, ownerID, state)

	return nil
}

func (s *service) UpdateQty(ctx context.Context, ownerID, productID, size string, req UpdateQtyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}

	state := s.store.Load(ctx, ownerID)
	state = UpdateQuantity(state, productID, normalizeSize(size), req.Quantity)
	s.store.Save(ctx, ownerID, state)

	return nil
}

func (s *service) RemoveItem(ctx context.Context, ownerID, productID, size string) error {
	state := s.store.Load(ctx, ownerID)
	state = Remove(state, productID, normalizeSize(size))
	s.store.Save(ctx, ownerID, state)

	return nil
}

func (s *service) Clear(ctx context.Context, ownerID string) error {
	state := Clear(s.store.Load(ctx, ownerID))
	s.store.Save(ctx, ownerID, state)

	s.logger.Info("cart cleared", zap.String("owner_id", ownerID))
	return nil
}

func (s *service) TakeSnapshot(ctx context.Context, ownerID string) (Snapshot, error) {
	state := s.store.Load(ctx, ownerID)
	return TakeSnapshot(state), nil
}
