package app

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/middleware"
	"leavedesk/internal/shared/connection"
	"leavedesk/internal/upstream"
)

// BuildApp connects the infrastructure and registers every module on the
// router. The HR core base URL and redis address come from the
// environment; the rest is wiring.
func BuildApp(router *gin.Engine) error {
	redisClient, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 5)
	if err != nil {
		return err
	}

	client := upstream.NewClient(envOr("HR_API_BASE_URL", "http://localhost:8080/api/v1"), nil)

	router.Use(middleware.CORS(corsOrigins()))
	router.Use(middleware.RequestID())

	if err := registerModules(router, client, redisClient); err != nil {
		return err
	}

	zap.L().Info("application wired",
		zap.String("hr_api", envOr("HR_API_BASE_URL", "http://localhost:8080/api/v1")),
	)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
