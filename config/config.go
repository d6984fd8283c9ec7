package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/ingest"
)

// Config holds all service configuration, populated from the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	HTTPServer HTTPServerConfig `envPrefix:"HTTP_"`
	Logger     LoggerConfig     `envPrefix:"LOGGER_"`

	Postgres PostgresConfig `envPrefix:"POSTGRES_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`

	Ingest IngestConfig `envPrefix:"INGEST_"`
	Crisis CrisisConfig `envPrefix:"CRISIS_"`
	Notify NotifyConfig `envPrefix:"NOTIFY_"`

	Internal InternalConfig `envPrefix:"INTERNAL_"`

	// SeedDemo loads a demo tracker, rule and mentions on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
	Mode string `env:"MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LEVEL" envDefault:"info"`
	Mode         string `env:"MODE" envDefault:"production"`
	Encoding     string `env:"ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL. An empty host
// switches the mention store to the in-memory implementation.
type PostgresConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DB_NAME" envDefault:"monitoring"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis. An empty host disables the
// pub/sub notification channels.
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// IngestConfig tunes the content item pipeline.
type IngestConfig struct {
	IntakeBuffer   int           `env:"INTAKE_BUFFER" envDefault:"1024"`
	TrackerBuffer  int           `env:"TRACKER_BUFFER" envDefault:"256"`
	RatePerSec     float64       `env:"RATE_PER_SEC" envDefault:"200"`
	RateBurst      int           `env:"RATE_BURST" envDefault:"400"`
	CrisisDebounce time.Duration `env:"CRISIS_DEBOUNCE" envDefault:"2s"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
}

// ToEngineConfig maps to the pipeline's own config type.
func (c IngestConfig) ToEngineConfig() ingest.Config {
	return ingest.Config{
		IntakeBuffer:   c.IntakeBuffer,
		TrackerBuffer:  c.TrackerBuffer,
		RatePerSec:     c.RatePerSec,
		RateBurst:      c.RateBurst,
		CrisisDebounce: c.CrisisDebounce,
		SweepInterval:  c.SweepInterval,
	}
}

// CrisisConfig tunes trigger detection and the incident state machine.
type CrisisConfig struct {
	MonitoringFloor int           `env:"MONITORING_FLOOR" envDefault:"30"`
	ActiveFloor     int           `env:"ACTIVE_FLOOR" envDefault:"60"`
	EscalateFloor   int           `env:"ESCALATE_FLOOR" envDefault:"80"`
	SpikeFactor     float64       `env:"SPIKE_FACTOR" envDefault:"3"`
	DropDelta       float64       `env:"DROP_DELTA" envDefault:"-0.25"`
	HighReach       int           `env:"HIGH_REACH" envDefault:"50000"`
	MinRegions      int           `env:"MIN_REGIONS" envDefault:"3"`
	MinNegativeHits int           `env:"MIN_NEGATIVE_HITS" envDefault:"3"`
	ObserveWindow   time.Duration `env:"OBSERVE_WINDOW" envDefault:"1h"`
	ResolveCooldown time.Duration `env:"RESOLVE_COOLDOWN" envDefault:"30m"`
	NotifyChannels  []string      `env:"NOTIFY_CHANNELS" envDefault:"email,slack"`
}

// ToDomainConfig maps to the crisis package's own config type.
func (c CrisisConfig) ToDomainConfig() crisis.Config {
	return crisis.Config{
		MonitoringFloor: c.MonitoringFloor,
		ActiveFloor:     c.ActiveFloor,
		EscalateFloor:   c.EscalateFloor,
		SpikeFactor:     c.SpikeFactor,
		DropDelta:       c.DropDelta,
		HighReach:       c.HighReach,
		MinRegions:      c.MinRegions,
		MinNegativeHits: c.MinNegativeHits,
		ObserveWindow:   c.ObserveWindow,
		ResolveCooldown: c.ResolveCooldown,
		NotifyChannels:  c.NotifyChannels,
	}
}

// NotifyConfig is the configuration for alert fan-out.
type NotifyConfig struct {
	// ChannelPrefix prefixes the redis pub/sub topics.
	ChannelPrefix string `env:"CHANNEL_PREFIX" envDefault:"notifications"`
	// WebhookURL is the direct webhook channel endpoint; empty disables it.
	WebhookURL string `env:"WEBHOOK_URL"`
}

// InternalConfig holds service-to-service authentication.
type InternalConfig struct {
	// InternalKey guards the ingest feed. Empty rejects every ingest call.
	InternalKey string `env:"KEY"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http.port is invalid: %d", cfg.HTTPServer.Port)
	}
	if cfg.Postgres.Host != "" && cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required when postgres.host is set")
	}

	return nil
}
