package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/cart"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/config"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/messaging/kafka/producer"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/middleware"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/order"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/payment"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
	kafkaWriter *kafka.Writer,
	gateway payment.Gateway,
	logger *zap.Logger,
) {
	// --- Stores ---
	var cartStore cart.Store
	if rdb != nil {
		cartStore = cart.NewRedisStore(rdb, cfg.CartKeyPrefix, cfg.CartTTL, logger)
	} else {
		cartStore = cart.NewMemoryStore()
	}

	// --- Services ---
	cartService := cart.NewService(cartStore, cart.ShippingPolicy{
		FreeThreshold: cfg.FreeShippingThreshold,
		DefaultCost:   cfg.DefaultShippingCost,
	}, logger)

	orderClient := order.NewHTTPClient(cfg.OrderAPIBaseURLs, logger)
	publisher := producer.NewPublisher(kafkaWriter, logger)

	var amountStore order.AmountStore
	if rdb != nil {
		amountStore = order.NewRedisAmountStore(rdb, logger)
	} else {
		amountStore = order.NewMemoryAmountStore()
	}

	orderService := order.NewService(order.Deps{
		Client:         orderClient,
		CartSvc:        cartService,
		Gateway:        gateway,
		Publisher:      publisher,
		Amounts:        amountStore,
		Logger:         logger,
		CouponDiscount: cfg.CouponDiscount,
		SuccessURL:     cfg.PaymentSuccessURL,
		FailURL:        cfg.PaymentFailURL,
	})

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.CartSession())
	{
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler, rdb)
	}
}
