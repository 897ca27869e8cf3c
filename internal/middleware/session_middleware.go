package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionKey is the gin context key carrying the cart session id.
const CartSessionKey = "cart_session"

const sessionCookieName = "cart_session"

// 30 days, matching how long a browser would keep the cart around.
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// CartSession assigns an anonymous session id to every caller. The id
// scopes the persisted cart the way localStorage scoped it to a browser;
// there is no account attached to it.
func CartSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID, err := ctx.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(sessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		ctx.Set(CartSessionKey, sessionID)
		ctx.Next()
	}
}
