package notification

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.RequireSession())
	{
		notifications.GET("", handler.Feed)
		notifications.PUT("/:id/read", handler.MarkRead)
		notifications.PUT("/read-all", handler.MarkAllRead)
	}
}
