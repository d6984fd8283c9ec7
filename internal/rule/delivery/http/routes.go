package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the alert rule and fired-alert routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rules := r.Group("/rules")
	{
		rules.POST("", h.Create)
		rules.GET("", h.List)
		rules.GET("/:id", h.Detail)
		rules.PUT("/:id", h.Update)
		rules.PATCH("/:id/toggle", h.Toggle)
		rules.DELETE("/:id", h.Delete)
	}

	r.GET("/alerts", h.Alerts)
}
