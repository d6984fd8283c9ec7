package http

import (
	"monitoring-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the internal content item feed.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/ingest", mw.InternalAuth(), h.Ingest)
}
