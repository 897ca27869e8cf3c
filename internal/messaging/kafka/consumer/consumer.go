package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/messaging/kafka/producer"
)

// ConsumeMessages is the clear-cart signal loop: a confirmed payment on
// the API side arrives here as a CLEAR_CART event and empties the
// session's cart. Unknown event types are committed and skipped.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("started consuming cart events")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("error fetching message", zap.Error(err))
			continue
		}

		if eventTypeOf(msg) == producer.EventTypeClearCart {
			if err := handleClearCart(ctx, msg.Value, cartService, logger); err != nil {
				logger.Error("error handling clear-cart event", zap.Error(err))
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("error committing message", zap.Error(err))
		}
	}
}

// eventTypeOf reads the event_type header the publisher stamps on every
// cart event; messages without one come from another producer and are
// skipped.
func eventTypeOf(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			return string(h.Value)
		}
	}
	return ""
}
