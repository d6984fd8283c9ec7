package http

import (
	"fmt"
	"net/http"
	"time"

	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List handles GET /mentions.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	if err := h.checkTrackerVisible(c, req.TrackerID); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Get(ctx, orgScope(c), ip)
	if err != nil {
		h.l.Errorf(ctx, "mention.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listMentionsResp{
		Mentions:  out.Mentions,
		Paginator: out.Paginator.ToResponse(),
	})
}

// Export handles GET /mentions/export. The body streams directly, so all
// validation happens before the first byte is written.
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	if err := h.checkTrackerVisible(c, req.TrackerID); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	filename := fmt.Sprintf("mentions-%s-%s.%s", req.TrackerID, time.Now().Format("20060102-150405"), req.Format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch req.Format {
	case formatJSON:
		c.Header("Content-Type", "application/json")
		err = h.uc.ExportJSON(ctx, orgScope(c), ip, c.Writer)
	default:
		c.Header("Content-Type", "text/csv")
		err = h.uc.ExportCSV(ctx, orgScope(c), ip, c.Writer)
	}
	if err != nil {
		h.l.Errorf(ctx, "mention.delivery.http.Export: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
