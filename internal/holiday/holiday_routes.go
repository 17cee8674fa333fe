package holiday

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.RequireSession())
	{
		holidays.GET("", handler.List)

		holidays.POST("", middleware.RequireRole(session.RoleAdmin), handler.Create)
		holidays.PUT("/:id", middleware.RequireRole(session.RoleAdmin), handler.Update)
		holidays.DELETE("/:id", middleware.RequireRole(session.RoleAdmin), handler.Delete)
	}
}
