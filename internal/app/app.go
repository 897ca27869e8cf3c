package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/config"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/payment"
)

// BuildApp wires infrastructure and routes into the router. The cart is
// the only state this process owns; everything else is a collaborator.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	// A dead Redis degrades persistence to in-memory instead of refusing
	// to serve; the cart must stay usable for the session either way.
	rdb, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
	if err != nil {
		logger.Warn("redis unavailable, carts will not survive restarts", zap.Error(err))
		rdb = nil
	}

	kafkaWriter, err := connectKafkaWithRetry(cfg.KafkaBroker, cfg.CartTopic, 5, logger)
	if err != nil {
		return err
	}

	gateway, err := payment.NewTossGateway(cfg.TossBaseURL, cfg.TossSecretKey, logger)
	if err != nil {
		return err
	}

	registerModules(router, cfg, rdb, kafkaWriter, gateway, logger)
	return nil
}
