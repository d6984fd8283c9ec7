package tracker

import "errors"

var (
	ErrTrackerNotFound = errors.New("tracker not found")
	ErrNameRequired    = errors.New("tracker name required")
	ErrInvalidFilters  = errors.New("invalid tracker filters")
)
