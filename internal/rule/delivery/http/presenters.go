package http

import (
	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule"
)

// --- Request DTOs ---

type createRuleReq struct {
	Name      string   `json:"name"`
	TrackerID string   `json:"tracker_id"`
	Condition string   `json:"condition"`
	Threshold float64  `json:"threshold"`
	Mode      string   `json:"mode"`
	Keyword   string   `json:"keyword"`
	Timeframe string   `json:"timeframe"`
	Severity  string   `json:"severity"`
	Channels  []string `json:"channels"`
}

func (r createRuleReq) toInput() rule.CreateInput {
	return rule.CreateInput{
		Name:      r.Name,
		TrackerID: r.TrackerID,
		Condition: model.RuleCondition(r.Condition),
		Threshold: r.Threshold,
		Mode:      model.ThresholdMode(r.Mode),
		Keyword:   r.Keyword,
		Timeframe: model.Timeframe(r.Timeframe),
		Severity:  model.Severity(r.Severity),
		Channels:  toChannels(r.Channels),
	}
}

type updateRuleReq struct {
	Name      *string  `json:"name"`
	Threshold *float64 `json:"threshold"`
	Mode      *string  `json:"mode"`
	Keyword   *string  `json:"keyword"`
	Timeframe *string  `json:"timeframe"`
	Severity  *string  `json:"severity"`
	Channels  []string `json:"channels"`
}

func (r updateRuleReq) toInput(id string) rule.UpdateInput {
	ip := rule.UpdateInput{
		ID:        id,
		Name:      r.Name,
		Threshold: r.Threshold,
		Keyword:   r.Keyword,
		Channels:  toChannels(r.Channels),
	}
	if r.Mode != nil {
		m := model.ThresholdMode(*r.Mode)
		ip.Mode = &m
	}
	if r.Timeframe != nil {
		tf := model.Timeframe(*r.Timeframe)
		ip.Timeframe = &tf
	}
	if r.Severity != nil {
		sv := model.Severity(*r.Severity)
		ip.Severity = &sv
	}
	return ip
}

type listRulesReq struct {
	TrackerID string `form:"tracker_id"`
}

func (r listRulesReq) toInput() rule.ListInput {
	return rule.ListInput{TrackerID: r.TrackerID}
}

type alertsReq struct {
	TrackerID string `form:"tracker_id"`
	RuleID    string `form:"rule_id"`
	Limit     int    `form:"limit"`
}

func (r alertsReq) toInput() rule.AlertsInput {
	return rule.AlertsInput{
		TrackerID: r.TrackerID,
		RuleID:    r.RuleID,
		Limit:     r.Limit,
	}
}

func toChannels(in []string) []model.Channel {
	if in == nil {
		return nil
	}
	out := make([]model.Channel, 0, len(in))
	for _, ch := range in {
		out = append(out, model.Channel(ch))
	}
	return out
}
