package repository

import "monitoring-srv/internal/model"

// Filter contains filtering options for tracker queries.
type Filter struct {
	Enabled *bool
}

// CreateOptions contains options for creating a tracker.
type CreateOptions struct {
	Tracker model.Tracker
}

// UpdateOptions contains options for updating a tracker.
type UpdateOptions struct {
	Tracker model.Tracker
}

// ListOptions contains options for listing trackers.
type ListOptions struct {
	Filter Filter
}
