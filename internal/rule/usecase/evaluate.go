package usecase

import (
	"context"
	"fmt"
	"time"

	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule/repository"
	pkgLog "monitoring-srv/pkg/log"
	"monitoring-srv/pkg/notify"
	postgresPkg "monitoring-srv/pkg/postgre"
)

// EvaluateTracker checks every enabled rule of the tracker against the
// aggregator snapshot. A rule fires at most once per episode: once it
// crossed, it stays silent until the condition clears and recrosses, or
// until one timeframe of cooldown has elapsed.
func (uc *usecase) EvaluateTracker(ctx context.Context, trackerID string, latest *model.Mention) ([]model.Alert, error) {
	enabled := true
	rules, err := uc.repo.List(ctx, model.Scope{}, repository.ListOptions{
		Filter: repository.Filter{TrackerID: trackerID, Enabled: &enabled},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.rule.usecase.EvaluateTracker: %v", err)
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}

	snap := uc.metrics.Snapshot(trackerID)
	now := snap.At
	if now.IsZero() {
		now = time.Now()
	}

	var fired []model.Alert
	for _, rl := range rules {
		if !uc.crossed(rl, snap, latest) {
			uc.clearEpisode(rl.ID)
			continue
		}
		if !uc.openEpisode(rl.ID, now, rl.Timeframe.Duration()) {
			continue
		}

		alert := model.Alert{
			ID:        postgresPkg.NewUUID(),
			OrgID:     rl.OrgID,
			RuleID:    rl.ID,
			TrackerID: rl.TrackerID,
			FiredAt:   now,
			Severity:  rl.Severity,
			Channels:  rl.Channels,
			Message:   buildMessage(rl, snap, latest),
		}

		if _, err := uc.repo.CreateAlert(ctx, repository.CreateAlertOptions{Alert: alert}); err != nil {
			uc.l.Errorf(ctx, "internal.rule.usecase.EvaluateTracker.CreateAlert: %v", err)
			return fired, err
		}

		uc.dispatch(ctx, uc.l, alert)
		fired = append(fired, alert)
	}

	return fired, nil
}

// crossed reports whether the rule's condition holds against the
// snapshot. Missing metrics read as zero and never fire.
func (uc *usecase) crossed(rl model.AlertRule, snap metrics.Snapshot, latest *model.Mention) bool {
	switch rl.Condition {
	case model.ConditionVolumeSpike:
		count := float64(snap.Windows[rl.Timeframe].Count)
		if rl.Mode == model.ThresholdBaselineMultiple && snap.Baseline > 0 {
			return count > rl.Threshold*snap.Baseline
		}
		return count > rl.Threshold

	case model.ConditionSentimentDrop:
		w := snap.Windows[rl.Timeframe]
		if w.Count == 0 {
			return false
		}
		return w.MeanSentiment-snap.LongMeanSentiment < rl.Threshold

	case model.ConditionNewInfluencer:
		return latest != nil && float64(latest.Reach()) > rl.Threshold

	case model.ConditionKeywordTrend:
		current, previous := uc.metrics.KeywordCounts(rl.TrackerID, rl.Keyword, rl.Timeframe)
		if previous == 0 {
			return current > 0
		}
		growth := float64(current-previous) / float64(previous)
		return growth > rl.Threshold
	}

	return false
}

// openEpisode records a crossing. It returns true when the crossing
// opens a new episode (fresh, cleared-and-recrossed, or cooldown
// elapsed) and false while the rule is still inside one.
func (uc *usecase) openEpisode(ruleID string, now time.Time, cooldown time.Duration) bool {
	uc.epMu.Lock()
	defer uc.epMu.Unlock()

	ep, ok := uc.episodes[ruleID]
	if !ok {
		uc.episodes[ruleID] = &episode{active: true, firedAt: now}
		return true
	}
	if ep.active && now.Sub(ep.firedAt) < cooldown {
		return false
	}
	ep.active = true
	ep.firedAt = now
	return true
}

// clearEpisode marks the rule's condition as no longer holding, so the
// next crossing fires immediately.
func (uc *usecase) clearEpisode(ruleID string) {
	uc.epMu.Lock()
	defer uc.epMu.Unlock()

	if ep, ok := uc.episodes[ruleID]; ok {
		ep.active = false
	}
}

// resetEpisode forgets the rule's episode state entirely.
func (uc *usecase) resetEpisode(ruleID string) {
	uc.epMu.Lock()
	defer uc.epMu.Unlock()
	delete(uc.episodes, ruleID)
}

// dispatch hands the alert to the notifier. Delivery failures are
// logged, not propagated; the alert record already exists.
func (uc *usecase) dispatch(ctx context.Context, l pkgLog.Logger, alert model.Alert) {
	channels := make([]string, len(alert.Channels))
	for i, ch := range alert.Channels {
		channels[i] = string(ch)
	}

	n := notify.Notification{
		Kind:      notify.KindAlert,
		TrackerID: alert.TrackerID,
		Severity:  string(alert.Severity),
		Channels:  channels,
		Title:     "Alert fired",
		Message:   alert.Message,
		FiredAt:   alert.FiredAt,
		Payload:   alert,
	}
	if err := uc.notifier.Notify(ctx, n); err != nil {
		l.Errorf(ctx, "internal.rule.usecase.dispatch: %v", err)
	}
}

func buildMessage(rl model.AlertRule, snap metrics.Snapshot, latest *model.Mention) string {
	switch rl.Condition {
	case model.ConditionVolumeSpike:
		return fmt.Sprintf("%s: mention volume %d in %s exceeded threshold",
			rl.Name, snap.Windows[rl.Timeframe].Count, rl.Timeframe)
	case model.ConditionSentimentDrop:
		return fmt.Sprintf("%s: sentiment dropped %.2f vs the 72h mean",
			rl.Name, snap.Windows[rl.Timeframe].MeanSentiment-snap.LongMeanSentiment)
	case model.ConditionNewInfluencer:
		author := "unknown author"
		reach := 0
		if latest != nil {
			if latest.Author != "" {
				author = latest.Author
			}
			reach = latest.Reach()
		}
		return fmt.Sprintf("%s: %s (reach %d) mentioned the tracker", rl.Name, author, reach)
	case model.ConditionKeywordTrend:
		return fmt.Sprintf("%s: keyword %q is trending over %s", rl.Name, rl.Keyword, rl.Timeframe)
	}
	return rl.Name
}
