package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the tracker routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	trackers := r.Group("/trackers")
	{
		trackers.POST("", h.Create)
		trackers.GET("", h.List)
		trackers.GET("/:id", h.Detail)
		trackers.PUT("/:id/query", h.EditQuery)
		trackers.PUT("/:id/filters", h.SetFilters)
		trackers.PATCH("/:id/toggle", h.Toggle)
		trackers.DELETE("/:id", h.Delete)
		trackers.GET("/:id/metrics", h.Metrics)
	}
}
