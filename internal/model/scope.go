package model

// Scope identifies the organization a request acts on behalf of.
// Trackers, rules, mentions and crisis events are all owned by an
// organization; repositories filter on it.
type Scope struct {
	OrgID string `json:"org_id"`
}
