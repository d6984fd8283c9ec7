package ingest

import "time"

// Config tunes the pipeline's buffering and throttling.
type Config struct {
	// IntakeBuffer is the shared intake queue size. A full queue rejects
	// the item instead of blocking the caller.
	IntakeBuffer int
	// TrackerBuffer is the per-tracker queue size.
	TrackerBuffer int

	// RatePerSec caps accepted items per second; zero or negative
	// disables throttling.
	RatePerSec float64
	RateBurst  int

	// CrisisDebounce coalesces crisis rescores during mention bursts.
	CrisisDebounce time.Duration

	// SweepInterval is how often idle trackers are advanced: windows
	// evicted, rules re-evaluated, crisis scores recomputed. Without the
	// sweep, a tracker's metrics would only move when a mention arrives.
	SweepInterval time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		IntakeBuffer:   1024,
		TrackerBuffer:  256,
		RatePerSec:     200,
		RateBurst:      400,
		CrisisDebounce: 2 * time.Second,
		SweepInterval:  30 * time.Second,
	}
}

func (c *Config) adjust() {
	if c.IntakeBuffer <= 0 {
		c.IntakeBuffer = 1024
	}
	if c.TrackerBuffer <= 0 {
		c.TrackerBuffer = 256
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 1
	}
	if c.CrisisDebounce <= 0 {
		c.CrisisDebounce = 2 * time.Second
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = 30 * time.Second
	}
}
