package crisis

import "errors"

var (
	ErrCrisisNotFound = errors.New("crisis event not found")
	ErrActionNotFound = errors.New("response action not found")
	ErrCrisisResolved = errors.New("crisis event already resolved")
	ErrActionRequired = errors.New("action text required")
	ErrInvalidStatus  = errors.New("invalid action status")
)
