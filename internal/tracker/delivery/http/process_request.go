package http

import (
	"monitoring-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// orgScope extracts the caller's organization from the request headers.
func orgScope(c *gin.Context) model.Scope {
	return model.Scope{OrgID: c.GetHeader("X-Org-ID")}
}

func (h *Handler) processCreateRequest(c *gin.Context) (createTrackerReq, error) {
	var req createTrackerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createTrackerReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processEditQueryRequest(c *gin.Context) (editQueryReq, error) {
	var req editQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return editQueryReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processSetFiltersRequest(c *gin.Context) (setFiltersReq, error) {
	var req setFiltersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return setFiltersReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processListRequest(c *gin.Context) (listTrackersReq, error) {
	var req listTrackersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return listTrackersReq{}, errBadBody
	}
	return req, nil
}
