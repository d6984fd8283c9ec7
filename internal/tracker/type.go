package tracker

import "monitoring-srv/internal/model"

// CreateInput carries a new tracker definition.
type CreateInput struct {
	Name             string
	Conditions       []model.Condition
	Filters          model.TrackerFilters
	NegativeKeywords []string
}

// EditQueryInput replaces a tracker's condition list.
type EditQueryInput struct {
	ID         string
	Conditions []model.Condition
}

// SetFiltersInput replaces a tracker's filters and negative keywords.
type SetFiltersInput struct {
	ID               string
	Filters          model.TrackerFilters
	NegativeKeywords []string
}

// ListInput filters the tracker listing.
type ListInput struct {
	Enabled *bool
}
