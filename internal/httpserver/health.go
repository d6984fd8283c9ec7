package httpserver

import (
	"monitoring-srv/pkg/errors"
	"monitoring-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health including backend status.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	postgres := "disabled"
	if srv.db != nil {
		postgres = "connected"
		if err := srv.db.PingContext(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "PostgreSQL connection failed"))
			return
		}
	}

	redis := "disabled"
	if srv.redis != nil {
		redis = "connected"
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed"))
			return
		}
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "monitoring-srv",
		"version":  "1.0.0",
		"postgres": postgres,
		"redis":    redis,
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.db != nil {
		if err := srv.db.PingContext(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "PostgreSQL connection not available"))
			return
		}
	}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available"))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "monitoring-srv",
		"version": "1.0.0",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "monitoring-srv",
		"version": "1.0.0",
	})
}
