package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the crisis incident routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	crises := r.Group("/crises")
	{
		crises.GET("", h.List)
		crises.GET("/:id", h.Detail)
		crises.POST("/:id/escalate", h.Escalate)
		crises.POST("/:id/resolve", h.Resolve)
		crises.POST("/:id/actions", h.AddAction)
		crises.PATCH("/:id/actions/:actionID", h.UpdateAction)
	}
}
