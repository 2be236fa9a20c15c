package http

import (
	"github.com/gin-gonic/gin"

	"smart-travel-planner/internal/middleware"
)

// RegisterRoutes maps the planner endpoints. Planning and tool calls are rate
// limited per user; reads are not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/plans", mw.RateLimit(), h.PlanTravel)
	rg.GET("/sessions/:user_id", h.GetSession)

	tools := rg.Group("/tools")
	{
		tools.GET("", h.ListTools)
		tools.POST("/:name", mw.RateLimit(), h.InvokeTool)
	}
}
