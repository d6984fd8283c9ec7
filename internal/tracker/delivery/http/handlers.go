package http

import (
	"time"

	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create handles POST /trackers.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	tr, err := h.uc.Create(ctx, orgScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "tracker.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tr)
}

// List handles GET /trackers.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	trackers, err := h.uc.List(ctx, orgScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "tracker.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, trackers)
}

// Detail handles GET /trackers/:id.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	tr, err := h.uc.Detail(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tr)
}

// EditQuery handles PUT /trackers/:id/query.
func (h *Handler) EditQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditQueryRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	tr, err := h.uc.EditQuery(ctx, orgScope(c), req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "tracker.delivery.http.EditQuery: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tr)
}

// SetFilters handles PUT /trackers/:id/filters.
func (h *Handler) SetFilters(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetFiltersRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	tr, err := h.uc.SetFilters(ctx, orgScope(c), req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "tracker.delivery.http.SetFilters: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tr)
}

// Toggle handles PATCH /trackers/:id/toggle.
func (h *Handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	tr, err := h.uc.Toggle(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tr)
}

// Delete handles DELETE /trackers/:id.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, orgScope(c), c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Metrics handles GET /trackers/:id/metrics. Visibility is checked
// through the usecase before reading the aggregator.
func (h *Handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	tr, err := h.uc.Detail(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	// Advance the windows before reading so counts reflect the current
	// moment, not the last mention's arrival.
	now := time.Now()
	h.agg.Evict(tr.ID, now)

	snap := h.agg.Snapshot(tr.ID)
	at := snap.At
	if at.IsZero() {
		at = now
	}

	resp := metricsResp{
		TrackerID:    tr.ID,
		At:           at.Format(time.RFC3339),
		Windows:      make(map[string]windowResp, len(snap.Windows)),
		Baseline:     snap.Baseline,
		ShareOfVoice: make(map[string]float64, len(model.Timeframes)),
	}
	for tf, w := range snap.Windows {
		resp.Windows[string(tf)] = windowResp{Count: w.Count, MeanSentiment: w.MeanSentiment}
	}
	for _, tf := range model.Timeframes {
		resp.ShareOfVoice[string(tf)] = h.agg.ShareOfVoice(tr.ID, tf)
	}

	response.OK(c, resp)
}
