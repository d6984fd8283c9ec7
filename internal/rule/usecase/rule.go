package usecase

import (
	"context"
	"time"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule"
	"monitoring-srv/internal/rule/repository"
	postgresPkg "monitoring-srv/pkg/postgre"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip rule.CreateInput) (model.AlertRule, error) {
	now := time.Now()
	rl := model.AlertRule{
		ID:        postgresPkg.NewUUID(),
		Name:      ip.Name,
		TrackerID: ip.TrackerID,
		Condition: ip.Condition,
		Threshold: ip.Threshold,
		Mode:      ip.Mode,
		Keyword:   ip.Keyword,
		Timeframe: ip.Timeframe,
		Severity:  ip.Severity,
		Channels:  ip.Channels,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validate(rl); err != nil {
		return model.AlertRule{}, err
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Rule: rl})
	if err != nil {
		uc.l.Errorf(ctx, "internal.rule.usecase.Create: %v", err)
		return model.AlertRule{}, err
	}

	return created, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip rule.UpdateInput) (model.AlertRule, error) {
	rl, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.AlertRule{}, rule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.rule.usecase.Update.Detail: %v", err)
		return model.AlertRule{}, err
	}

	if ip.Name != nil {
		rl.Name = *ip.Name
	}
	if ip.Threshold != nil {
		rl.Threshold = *ip.Threshold
	}
	if ip.Mode != nil {
		rl.Mode = *ip.Mode
	}
	if ip.Keyword != nil {
		rl.Keyword = *ip.Keyword
	}
	if ip.Timeframe != nil {
		rl.Timeframe = *ip.Timeframe
	}
	if ip.Severity != nil {
		rl.Severity = *ip.Severity
	}
	if ip.Channels != nil {
		rl.Channels = ip.Channels
	}
	rl.UpdatedAt = time.Now()

	if err := validate(rl); err != nil {
		return model.AlertRule{}, err
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Rule: rl})
	if err != nil {
		uc.l.Errorf(ctx, "internal.rule.usecase.Update: %v", err)
		return model.AlertRule{}, err
	}

	// A redefined rule starts a fresh episode.
	uc.resetEpisode(rl.ID)

	return updated, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error) {
	rl, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.AlertRule{}, rule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.rule.usecase.Detail: %v", err)
		return model.AlertRule{}, err
	}
	return rl, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip rule.ListInput) ([]model.AlertRule, error) {
	rules, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{TrackerID: ip.TrackerID},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.rule.usecase.List: %v", err)
		return nil, err
	}
	return rules, nil
}

func (uc *usecase) Toggle(ctx context.Context, sc model.Scope, id string) (model.AlertRule, error) {
	rl, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.AlertRule{}, rule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.rule.usecase.Toggle.Detail: %v", err)
		return model.AlertRule{}, err
	}

	rl.Enabled = !rl.Enabled
	rl.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Rule: rl})
	if err != nil {
		uc.l.Errorf(ctx, "internal.rule.usecase.Toggle: %v", err)
		return model.AlertRule{}, err
	}

	if !updated.Enabled {
		uc.resetEpisode(rl.ID)
	}

	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return rule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.rule.usecase.Delete: %v", err)
		return err
	}

	uc.resetEpisode(id)
	return nil
}

func (uc *usecase) Alerts(ctx context.Context, sc model.Scope, ip rule.AlertsInput) ([]model.Alert, error) {
	alerts, err := uc.repo.ListAlerts(ctx, sc, repository.ListAlertsOptions{
		Filter: repository.AlertFilter{
			TrackerID: ip.TrackerID,
			RuleID:    ip.RuleID,
		},
		Limit: ip.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.rule.usecase.Alerts: %v", err)
		return nil, err
	}
	return alerts, nil
}

func validate(rl model.AlertRule) error {
	if rl.Name == "" {
		return rule.ErrNameRequired
	}
	if rl.TrackerID == "" {
		return rule.ErrTrackerRequired
	}
	if !rl.Condition.Valid() {
		return rule.ErrInvalidCondition
	}
	if !rl.Timeframe.Valid() {
		return rule.ErrInvalidTimeframe
	}
	if !rl.Severity.Valid() {
		return rule.ErrInvalidSeverity
	}
	if len(rl.Channels) == 0 {
		return rule.ErrChannelRequired
	}
	for _, ch := range rl.Channels {
		if !ch.Valid() {
			return rule.ErrInvalidChannel
		}
	}

	switch rl.Condition {
	case model.ConditionSentimentDrop:
		// Drop thresholds are deltas on a [-1, 1] scale, below zero.
		if rl.Threshold >= 0 {
			return rule.ErrInvalidThreshold
		}
	case model.ConditionKeywordTrend:
		if rl.Keyword == "" {
			return rule.ErrKeywordRequired
		}
		if rl.Threshold <= 0 {
			return rule.ErrInvalidThreshold
		}
	case model.ConditionVolumeSpike:
		if rl.Threshold <= 0 {
			return rule.ErrInvalidThreshold
		}
		if rl.Mode != "" && rl.Mode != model.ThresholdAbsolute && rl.Mode != model.ThresholdBaselineMultiple {
			return rule.ErrInvalidMode
		}
	default:
		if rl.Threshold <= 0 {
			return rule.ErrInvalidThreshold
		}
	}

	return nil
}
