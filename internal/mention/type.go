package mention

import (
	"time"

	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
)

// Filter narrows a mention listing.
type Filter struct {
	TrackerID   string
	SourceTypes []string
	Sentiment   model.Sentiment
	Language    string
	Search      string // substring over title and snippet
	From        time.Time
	To          time.Time
}

// GetInput is a paginated mention listing request.
type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// GetOutput is a page of mentions.
type GetOutput struct {
	Mentions  []model.Mention
	Paginator paginator.Paginator
}

// ExportInput selects the mentions to export.
type ExportInput struct {
	Filter Filter
}
