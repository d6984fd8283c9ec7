package repository

import "monitoring-srv/internal/model"

// Filter contains filtering options for rule queries.
type Filter struct {
	TrackerID string
	Enabled   *bool
}

// CreateOptions contains options for creating a rule.
type CreateOptions struct {
	Rule model.AlertRule
}

// UpdateOptions contains options for updating a rule.
type UpdateOptions struct {
	Rule model.AlertRule
}

// ListOptions contains options for listing rules.
type ListOptions struct {
	Filter Filter
}

// CreateAlertOptions contains options for recording a fired alert.
type CreateAlertOptions struct {
	Alert model.Alert
}

// AlertFilter contains filtering options for fired-alert queries.
type AlertFilter struct {
	TrackerID string
	RuleID    string
}

// ListAlertsOptions contains options for listing fired alerts.
type ListAlertsOptions struct {
	Filter AlertFilter
	Limit  int
}
