package http

import (
	"monitoring-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// orgScope extracts the caller's organization from the request headers.
func orgScope(c *gin.Context) model.Scope {
	return model.Scope{OrgID: c.GetHeader("X-Org-ID")}
}

func (h *Handler) processListRequest(c *gin.Context) (listCrisesReq, error) {
	var req listCrisesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return listCrisesReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processAddActionRequest(c *gin.Context) (addActionReq, error) {
	var req addActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return addActionReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processUpdateActionRequest(c *gin.Context) (updateActionReq, error) {
	var req updateActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return updateActionReq{}, errBadBody
	}
	return req, nil
}
