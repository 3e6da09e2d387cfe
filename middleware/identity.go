package middleware

import (
	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where the resolved user id lives in the gin context.
const ContextUserIDKey = "userID"

// IdentityMiddleware lifts the gateway-supplied identity header into the
// request context. Authentication itself happens upstream; an absent header
// is allowed here and only blocks the final submission step.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// CurrentUserID returns the resolved user id, or "" when anonymous.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}
