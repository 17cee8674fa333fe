package balance

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	balances := r.Group("/leave-balances")
	balances.Use(middleware.RequireSession())
	{
		balances.GET("", handler.List)
		balances.POST("/eligibility", handler.CheckEligibility)
	}
}
