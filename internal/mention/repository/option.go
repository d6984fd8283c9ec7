package repository

import (
	"time"

	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
)

// Filter contains filtering options for mention queries.
type Filter struct {
	TrackerID   string
	SourceTypes []string
	Sentiment   model.Sentiment
	Language    string
	Search      string
	From        time.Time
	To          time.Time
}

// CreateOptions contains options for storing a mention.
type CreateOptions struct {
	Mention model.Mention
}

// GetOptions contains options for paginated mention listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// ListOptions contains options for unpaginated mention listing.
type ListOptions struct {
	Filter Filter
}
