package middleware

import (
	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrgHeader carries the caller's organization on tenant-facing routes.
const OrgHeader = "X-Org-ID"

// RequireOrg rejects tenant-facing requests that carry no organization.
// An empty scope is reserved for internal callers; it never enters
// through HTTP.
func (m Middleware) RequireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(OrgHeader) == "" {
			m.l.Warnf(c.Request.Context(), "Missing org header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
