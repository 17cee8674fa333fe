package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	corsgin "github.com/rs/cors/wrapper/gin"
)

// CORS permits the browser app's origins. Credentials stay on because the
// session rides a cookie.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}
	return corsgin.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		AllowCredentials: true,
	})
}
