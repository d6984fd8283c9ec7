package rule

import "errors"

var (
	ErrRuleNotFound     = errors.New("alert rule not found")
	ErrNameRequired     = errors.New("rule name required")
	ErrTrackerRequired  = errors.New("tracker id required")
	ErrInvalidCondition = errors.New("invalid rule condition")
	ErrInvalidThreshold = errors.New("invalid threshold for condition")
	ErrInvalidMode      = errors.New("invalid threshold mode")
	ErrKeywordRequired  = errors.New("keyword required for keyword_trend")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	ErrInvalidSeverity  = errors.New("invalid severity")
	ErrChannelRequired  = errors.New("at least one channel required")
	ErrInvalidChannel   = errors.New("invalid channel")
)
