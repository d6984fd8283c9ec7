package ingest

import "errors"

var (
	// ErrRateLimited rejects an item over the configured intake rate.
	ErrRateLimited = errors.New("ingest rate limit exceeded")
	// ErrQueueFull rejects an item when the intake queue is saturated.
	ErrQueueFull = errors.New("ingest queue full")
	// ErrStopped rejects items after shutdown began.
	ErrStopped = errors.New("ingest engine stopped")
)
