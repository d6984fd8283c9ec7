package http

import (
	"monitoring-srv/internal/model"
	"monitoring-srv/internal/tracker"
)

// --- Request DTOs ---

type conditionReq struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Joiner string `json:"joiner"`
	Value  string `json:"value"`
}

func (r conditionReq) toModel() model.Condition {
	return model.Condition{
		ID:     r.ID,
		Kind:   model.ConditionKind(r.Kind),
		Joiner: model.Joiner(r.Joiner),
		Value:  r.Value,
	}
}

type filtersReq struct {
	SourceTypes []string `json:"source_types"`
	Countries   []string `json:"countries"`
	Sentiment   string   `json:"sentiment"`
}

func (r filtersReq) toModel() model.TrackerFilters {
	return model.TrackerFilters{
		SourceTypes: r.SourceTypes,
		Countries:   r.Countries,
		Sentiment:   model.Sentiment(r.Sentiment),
	}
}

type createTrackerReq struct {
	Name             string         `json:"name"`
	Conditions       []conditionReq `json:"conditions"`
	Filters          filtersReq     `json:"filters"`
	NegativeKeywords []string       `json:"negative_keywords"`
}

func (r createTrackerReq) toInput() tracker.CreateInput {
	conds := make([]model.Condition, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		conds = append(conds, c.toModel())
	}
	return tracker.CreateInput{
		Name:             r.Name,
		Conditions:       conds,
		Filters:          r.Filters.toModel(),
		NegativeKeywords: r.NegativeKeywords,
	}
}

type editQueryReq struct {
	Conditions []conditionReq `json:"conditions"`
}

func (r editQueryReq) toInput(id string) tracker.EditQueryInput {
	conds := make([]model.Condition, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		conds = append(conds, c.toModel())
	}
	return tracker.EditQueryInput{ID: id, Conditions: conds}
}

type setFiltersReq struct {
	Filters          filtersReq `json:"filters"`
	NegativeKeywords []string   `json:"negative_keywords"`
}

func (r setFiltersReq) toInput(id string) tracker.SetFiltersInput {
	return tracker.SetFiltersInput{
		ID:               id,
		Filters:          r.Filters.toModel(),
		NegativeKeywords: r.NegativeKeywords,
	}
}

type listTrackersReq struct {
	Enabled *bool `form:"enabled"`
}

func (r listTrackersReq) toInput() tracker.ListInput {
	return tracker.ListInput{Enabled: r.Enabled}
}

// --- Response DTOs ---

type windowResp struct {
	Count         int     `json:"count"`
	MeanSentiment float64 `json:"mean_sentiment"`
}

// metricsResp is the tracker metrics view: per-timeframe windows plus the
// tracker's share of voice across all trackers.
type metricsResp struct {
	TrackerID    string                `json:"tracker_id"`
	At           string                `json:"at"`
	Windows      map[string]windowResp `json:"windows"`
	Baseline     float64               `json:"baseline"`
	ShareOfVoice map[string]float64    `json:"share_of_voice"`
}
