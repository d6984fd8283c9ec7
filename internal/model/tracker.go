package model

import "time"

// ConditionKind tags one structured search condition.
type ConditionKind string

const (
	KindKeyword ConditionKind = "keyword"
	KindPhrase  ConditionKind = "phrase"
	KindExclude ConditionKind = "exclude"
	KindDomain  ConditionKind = "domain"
	KindAuthor  ConditionKind = "author"
)

// Valid reports whether k is a known condition kind.
func (k ConditionKind) Valid() bool {
	switch k {
	case KindKeyword, KindPhrase, KindExclude, KindDomain, KindAuthor:
		return true
	}
	return false
}

// Joiner combines a condition with the expression accumulated to its left.
type Joiner string

const (
	JoinerAnd Joiner = "AND"
	JoinerOr  Joiner = "OR"
	JoinerNot Joiner = "NOT" // AND NOT
)

// Valid reports whether j is a known joiner.
func (j Joiner) Valid() bool {
	return j == JoinerAnd || j == JoinerOr || j == JoinerNot
}

// Condition is one row of the boolean query builder. Order in the list is
// significant; the first condition's joiner is ignored.
type Condition struct {
	ID     string        `json:"id"`
	Kind   ConditionKind `json:"kind"`
	Joiner Joiner        `json:"joiner"`
	Value  string        `json:"value"`
}

// TrackerFilters narrow which content items a tracker accepts on top of
// its boolean query. Empty sets are wildcards; SentimentAll is a wildcard.
type TrackerFilters struct {
	SourceTypes []string  `json:"source_types"`
	Countries   []string  `json:"countries"`
	Sentiment   Sentiment `json:"sentiment"`
}

// Tracker is a saved boolean query plus filters representing one monitored
// subject (a brand, competitor or risk topic). Window metrics are owned by
// the aggregator and are not stored on this record.
type Tracker struct {
	ID         string         `json:"id"`
	OrgID      string         `json:"org_id"`
	Name       string         `json:"name"`
	Query      string         `json:"query"` // canonical serialized form
	Conditions []Condition    `json:"conditions"`
	Filters    TrackerFilters `json:"filters"`

	// NegativeKeywords feed the crisis scorer's negative-keyword trigger.
	NegativeKeywords []string `json:"negative_keywords,omitempty"`

	Enabled   bool      `json:"enabled"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
