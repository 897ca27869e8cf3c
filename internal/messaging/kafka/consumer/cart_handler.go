package consumer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/messaging/kafka/producer"
)

func handleClearCart(ctx context.Context, payload []byte, cartService cart.Service, logger *zap.Logger) error {
	var data producer.ClearCartPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	if err := cartService.Clear(ctx, data.OwnerID); err != nil {
		return err
	}

	logger.Info("cart cleared after payment", zap.String("owner_id", data.OwnerID))
	return nil
}
