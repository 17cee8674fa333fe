package employee

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.RequireRole(session.RoleManager, session.RoleAdmin))
	{
		employees.GET("", handler.List)
		employees.GET("/:id", handler.ByID)

		employees.POST("", middleware.RequireRole(session.RoleAdmin), handler.Create)
		employees.PUT("/:id", middleware.RequireRole(session.RoleAdmin), handler.Update)
	}
}
