package http

import (
	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create handles POST /rules.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	r, err := h.uc.Create(ctx, orgScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "rule.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, r)
}

// List handles GET /rules.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	rules, err := h.uc.List(ctx, orgScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "rule.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, rules)
}

// Detail handles GET /rules/:id.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.uc.Detail(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, r)
}

// Update handles PUT /rules/:id.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	r, err := h.uc.Update(ctx, orgScope(c), req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "rule.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, r)
}

// Toggle handles PATCH /rules/:id/toggle.
func (h *Handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.uc.Toggle(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, r)
}

// Delete handles DELETE /rules/:id.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, orgScope(c), c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Alerts handles GET /alerts.
func (h *Handler) Alerts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAlertsRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	alerts, err := h.uc.Alerts(ctx, orgScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "rule.delivery.http.Alerts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, alerts)
}
