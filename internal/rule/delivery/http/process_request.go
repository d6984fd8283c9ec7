package http

import (
	"monitoring-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// orgScope extracts the caller's organization from the request headers.
func orgScope(c *gin.Context) model.Scope {
	return model.Scope{OrgID: c.GetHeader("X-Org-ID")}
}

func (h *Handler) processCreateRequest(c *gin.Context) (createRuleReq, error) {
	var req createRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createRuleReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (updateRuleReq, error) {
	var req updateRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return updateRuleReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processListRequest(c *gin.Context) (listRulesReq, error) {
	var req listRulesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return listRulesReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processAlertsRequest(c *gin.Context) (alertsReq, error) {
	var req alertsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return alertsReq{}, errBadBody
	}
	return req, nil
}
