package http

import (
	"monitoring-srv/internal/model"

	"github.com/gin-gonic/gin"
)

// orgScope extracts the caller's organization from the request headers.
func orgScope(c *gin.Context) model.Scope {
	return model.Scope{OrgID: c.GetHeader("X-Org-ID")}
}

func (h *Handler) processListRequest(c *gin.Context) (listMentionsReq, error) {
	var req listMentionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return listMentionsReq{}, errBadBody
	}
	return req, nil
}

func (h *Handler) processExportRequest(c *gin.Context) (exportMentionsReq, error) {
	var req exportMentionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return exportMentionsReq{}, errBadBody
	}
	if req.Format == "" {
		req.Format = formatCSV
	}
	if req.Format != formatCSV && req.Format != formatJSON {
		return exportMentionsReq{}, errBadFormat
	}
	return req, nil
}

// checkTrackerVisible enforces the org boundary before touching the
// mention store.
func (h *Handler) checkTrackerVisible(c *gin.Context, trackerID string) error {
	if trackerID == "" {
		return errTrackerRequired
	}
	_, err := h.trackerUC.Detail(c.Request.Context(), orgScope(c), trackerID)
	return err
}
