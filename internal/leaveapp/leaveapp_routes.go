package leaveapp

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	leaves := r.Group("/leave-applications")
	leaves.Use(middleware.RequireSession())
	{
		leaves.POST("", middleware.Idempotency(rdb), handler.Create)
		leaves.GET("/employee", handler.History)
		leaves.GET("/date", handler.OnDate)
		leaves.PATCH("/:id/cancel", handler.Cancel)

		leaves.GET("/status/:status",
			middleware.RequireRole(session.RoleManager, session.RoleAdmin),
			handler.ByStatus)
		leaves.PATCH("/:id/status",
			middleware.RequireRole(session.RoleManager, session.RoleAdmin),
			handler.Decide)
		leaves.GET("/export/:status",
			middleware.RequireRole(session.RoleManager, session.RoleAdmin),
			handler.Export)
	}
}
