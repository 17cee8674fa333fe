package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leavedesk/internal/shared/contextutil"
)

// RequestID accepts an inbound X-Request-ID or mints one, echoes it on the
// response, and propagates it through the request context so upstream
// calls and logs can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", rid)

		c.Next()
	}
}
