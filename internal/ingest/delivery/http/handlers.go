package http

import (
	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Ingest handles POST /ingest: one harvested content item per call.
// Acceptance only means the item entered the pipeline; matching happens
// asynchronously.
func (h *Handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	var req contentItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.mapError(errBadBody))
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.engine.Process(ctx, req.toModel()); err != nil {
		h.l.Warnf(ctx, "ingest.delivery.http.Ingest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ingestResp{Accepted: true, ItemID: req.ID})
}
