package http

import (
	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List handles GET /crises.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	events, err := h.uc.List(ctx, orgScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "crisis.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, events)
}

// Detail handles GET /crises/:id.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	ev, err := h.uc.Detail(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ev)
}

// Escalate handles POST /crises/:id/escalate.
func (h *Handler) Escalate(c *gin.Context) {
	ctx := c.Request.Context()

	ev, err := h.uc.Escalate(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "crisis.delivery.http.Escalate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ev)
}

// Resolve handles POST /crises/:id/resolve.
func (h *Handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	ev, err := h.uc.Resolve(ctx, orgScope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "crisis.delivery.http.Resolve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ev)
}

// AddAction handles POST /crises/:id/actions.
func (h *Handler) AddAction(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddActionRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ev, err := h.uc.AddAction(ctx, orgScope(c), c.Param("id"), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "crisis.delivery.http.AddAction: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ev)
}

// UpdateAction handles PATCH /crises/:id/actions/:actionID.
func (h *Handler) UpdateAction(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateActionRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ev, err := h.uc.UpdateAction(ctx, orgScope(c), c.Param("id"), req.toInput(c.Param("actionID")))
	if err != nil {
		h.l.Warnf(ctx, "crisis.delivery.http.UpdateAction: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ev)
}
