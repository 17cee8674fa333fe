package auth

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.RequireSession(), handler.Me)
		auth.PATCH("/profile", middleware.RequireSession(), handler.UpdateProfile)
	}
}
