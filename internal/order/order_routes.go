package order

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	orders := r.Group("/orders")
	{
		// double submission on checkout is the expensive mistake here
		orders.POST("/checkout",
			middleware.Idempotency(rdb),
			handler.Checkout,
		)

		orders.GET("/:id", handler.Detail)
		orders.POST("/:id/cancel", handler.Cancel)
	}

	// gateway redirect targets
	payments := r.Group("/payments")
	{
		payments.GET("/success", handler.PaymentSuccess)
		payments.GET("/fail", handler.PaymentFail)
	}
}
