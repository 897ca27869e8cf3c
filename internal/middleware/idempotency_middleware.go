package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/pkg/response"
)

const idempotencyHeader = "Idempotency-Key"

const idempotencyTTL = 10 * time.Minute

// Idempotency guards checkout against accidental double submission. The
// first request claims the key with SETNX; replays within the TTL are
// rejected. A nil client or a missing header disables the guard rather
// than blocking checkout.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if rdb == nil {
			ctx.Next()
			return
		}

		key := ctx.GetHeader(idempotencyHeader)
		if key == "" {
			ctx.Next()
			return
		}

		ok, err := rdb.SetNX(ctx, "idempotency:"+key, 1, idempotencyTTL).Result()
		if err != nil {
			// guard is best-effort; a broken Redis must not stop orders
			ctx.Next()
			return
		}
		if !ok {
			response.Error(ctx, http.StatusConflict, "DUPLICATE_REQUEST",
				"Request with this idempotency key was already processed", nil)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
