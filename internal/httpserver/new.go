package httpserver

import (
	"database/sql"
	"errors"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/ingest"
	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/rule"
	"monitoring-srv/internal/tracker"
	"monitoring-srv/pkg/log"
	pkgRedis "monitoring-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting the pipeline and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin  *gin.Engine
	l    log.Logger
	host string
	port int
	mode string

	// Domain usecases
	trackerUC tracker.UseCase
	ruleUC    rule.UseCase
	crisisUC  crisis.UseCase
	mentionUC mention.UseCase

	// Pipeline
	engine *ingest.Engine
	agg    *metrics.Aggregator

	// Auth & security
	internalKey string

	// External services (optional; health checks skip nil backends)
	db    *sql.DB
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host string
	Port int
	Mode string

	// Domain usecases
	TrackerUC tracker.UseCase
	RuleUC    rule.UseCase
	CrisisUC  crisis.UseCase
	MentionUC mention.UseCase

	// Pipeline
	Engine     *ingest.Engine
	Aggregator *metrics.Aggregator

	// Auth & security
	InternalKey string

	// External services
	DB    *sql.DB
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:  gin.New(),
		l:    l,
		host: cfg.Host,
		port: cfg.Port,
		mode: cfg.Mode,

		trackerUC: cfg.TrackerUC,
		ruleUC:    cfg.RuleUC,
		crisisUC:  cfg.CrisisUC,
		mentionUC: cfg.MentionUC,

		engine: cfg.Engine,
		agg:    cfg.Aggregator,

		internalKey: cfg.InternalKey,

		db:    cfg.DB,
		redis: cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.trackerUC == nil || srv.ruleUC == nil || srv.crisisUC == nil || srv.mentionUC == nil {
		return errors.New("all domain usecases are required")
	}
	if srv.engine == nil {
		return errors.New("ingest engine is required")
	}
	if srv.agg == nil {
		return errors.New("metrics aggregator is required")
	}

	return nil
}
