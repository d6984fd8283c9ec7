package repository

import "monitoring-srv/internal/model"

// Filter contains filtering options for crisis queries.
type Filter struct {
	TrackerID string
	Status    model.CrisisStatus
}

// CreateOptions contains options for creating a crisis event.
type CreateOptions struct {
	Event model.CrisisEvent
}

// UpdateOptions contains options for updating a crisis event.
type UpdateOptions struct {
	Event model.CrisisEvent
}

// ListOptions contains options for listing crisis events.
type ListOptions struct {
	Filter Filter
}
