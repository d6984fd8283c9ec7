package httpserver

import (
	crisisHTTP "monitoring-srv/internal/crisis/delivery/http"
	ingestHTTP "monitoring-srv/internal/ingest/delivery/http"
	mentionHTTP "monitoring-srv/internal/mention/delivery/http"
	"monitoring-srv/internal/middleware"
	ruleHTTP "monitoring-srv/internal/rule/delivery/http"
	trackerHTTP "monitoring-srv/internal/tracker/delivery/http"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.internalKey)

	// Global middleware
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// API routes
	api := srv.gin.Group(Api)

	ingestHTTP.New(srv.l, srv.engine).RegisterRoutes(api, mw)

	// Tenant-facing routes require an organization scope.
	scoped := api.Group("", mw.RequireOrg())
	trackerHTTP.New(srv.l, srv.trackerUC, srv.agg).RegisterRoutes(scoped)
	ruleHTTP.New(srv.l, srv.ruleUC).RegisterRoutes(scoped)
	crisisHTTP.New(srv.l, srv.crisisUC).RegisterRoutes(scoped)
	mentionHTTP.New(srv.l, srv.mentionUC, srv.trackerUC).RegisterRoutes(scoped)

	return nil
}
