package policy

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	policies := r.Group("/leave-policies")
	policies.Use(middleware.RequireSession())
	{
		policies.GET("", handler.List)
		policies.GET("/:id", handler.ByID)

		policies.POST("", middleware.RequireRole(session.RoleAdmin), handler.Create)
		policies.PATCH("/:id", middleware.RequireRole(session.RoleAdmin), handler.Patch)
		policies.PUT("/:id", middleware.RequireRole(session.RoleAdmin), handler.Replace)
	}
}
