package middleware

import (
	"crypto/subtle"

	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// InternalAuthHeader carries the shared key on service-to-service calls.
const InternalAuthHeader = "X-Internal-Key"

// InternalAuth guards routes reserved for internal collaborators (the
// harvester feed). An empty configured key rejects every request.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalAuthHeader)
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "Invalid internal key | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
