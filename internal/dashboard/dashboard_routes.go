package dashboard

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	board := r.Group("/dashboard")
	board.Use(middleware.RequireSession())
	{
		board.GET("/employee", handler.Employee)
		board.GET("/manager",
			middleware.RequireRole(session.RoleManager, session.RoleAdmin),
			handler.Manager)
	}
}
