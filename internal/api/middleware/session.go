package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/session"
)

// SessionHeader carries the session id in both directions
const SessionHeader = "X-Session-ID"

const sessionIDKey = "session_id"

// SessionMiddleware resolves the shopper session and attaches its cart store
// to the request context.
func SessionMiddleware(registry *session.Registry, cfg config.SessionConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(SessionHeader)
		if rawID == "" {
			rawID, _ = c.Cookie(cfg.CookieName)
		}

		id, store, created := registry.Resolve(rawID)
		if created && rawID != "" {
			logger.Debug("Unknown session replaced", zap.String("requested", rawID), zap.String("session_id", id.String()))
		}

		c.Header(SessionHeader, id.String())
		c.SetCookie(cfg.CookieName, id.String(), int(cfg.TTL.Seconds()), "/", "", false, true)
		c.Set(sessionIDKey, id)
		c.Request = c.Request.WithContext(cart.NewContext(c.Request.Context(), store))

		c.Next()
	}
}

// GetSessionID returns the session id resolved by SessionMiddleware
func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
