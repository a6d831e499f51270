package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/parse", h.Parse)
	rg.GET("/reality-check", h.RealityCheck)
	rg.GET("/insights", h.Insights)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.POST("/quick", h.QuickCreate)
		tasks.GET("", h.List)
		tasks.GET("/export", h.Export)
		tasks.GET("/prioritized", h.Prioritized)
		tasks.GET("/stale", h.Stale)
		tasks.GET("/:id", h.Detail)
		tasks.POST("/:id/defer", h.Defer)
	}
}
