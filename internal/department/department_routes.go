package department

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.RequireSession())
	{
		departments.GET("", handler.List)

		departments.POST("", middleware.RequireRole(session.RoleAdmin), handler.Create)
		departments.PUT("/:id", middleware.RequireRole(session.RoleAdmin), handler.Update)
		departments.PUT("/:id/status", middleware.RequireRole(session.RoleAdmin), handler.SetStatus)
	}
}
