package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the mention routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	mentions := r.Group("/mentions")
	{
		mentions.GET("", h.List)
		mentions.GET("/export", h.Export)
	}
}
