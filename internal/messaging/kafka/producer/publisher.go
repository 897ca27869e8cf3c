package producer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventTypeClearCart = "CLEAR_CART"

	aggregateTypeCart = "cart"
)

type ClearCartPayload struct {
	OwnerID string `json:"ownerId"`
}

// Publisher emits cart lifecycle events. Messages are keyed by owner so
// one session's events stay ordered within a partition.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(writer *kafka.Writer, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) PublishClearCart(ctx context.Context, ownerID string) error {
	payload, err := json.Marshal(ClearCartPayload{OwnerID: ownerID})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(ownerID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeClearCart)},
			{Key: "aggregate_type", Value: []byte(aggregateTypeCart)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Info("published clear-cart event", zap.String("owner_id", ownerID))
	return nil
}
