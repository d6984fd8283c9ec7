package mention

import "errors"

var (
	ErrTrackerRequired = errors.New("tracker id required")
	ErrInvalidFilter   = errors.New("invalid mention filter")
)
