package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/config"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/messaging/kafka/consumer"
)

// RunConsumer runs the clear-cart event loop until interrupted.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	rdb, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
	if err != nil {
		return err
	}

	cartStore := cart.NewRedisStore(rdb, cfg.CartKeyPrefix, cfg.CartTTL, logger)
	cartService := cart.NewService(cartStore, cart.ShippingPolicy{
		FreeThreshold: cfg.FreeShippingThreshold,
		DefaultCost:   cfg.DefaultShippingCost,
	}, logger)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.CartTopic,
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()
	logger.Info("kafka reader initialized", zap.String("topic", cfg.CartTopic))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	return nil
}
