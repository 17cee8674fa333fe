package compassionate

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	leaves := r.Group("/compassionate-leaves")
	leaves.Use(middleware.RequireSession())
	{
		leaves.GET("/check", handler.CheckDate)
		leaves.POST("", middleware.Idempotency(rdb), handler.Create)
		leaves.GET("", handler.List)

		leaves.PUT("/:id/status",
			middleware.RequireRole(session.RoleManager, session.RoleAdmin),
			handler.Decide)
	}
}
