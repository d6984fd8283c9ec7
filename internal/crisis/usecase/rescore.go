package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/crisis/repository"
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/notify"
	postgresPkg "monitoring-srv/pkg/postgre"
)

// Rescore recomputes the tracker's crisis score and drives the incident
// state machine. Score transitions only promote; demotion happens solely
// through resolution after the cool-down.
func (uc *usecase) Rescore(ctx context.Context, tr model.Tracker) (model.CrisisEvent, bool, error) {
	snap := uc.metrics.Snapshot(tr.ID)
	obs := uc.metrics.Observe(tr.ID, uc.cfg.ObserveWindow, tr.NegativeKeywords)

	triggers := crisis.DeriveTriggers(uc.cfg, snap, obs)
	score := crisis.Score(triggers)

	now := snap.At
	if now.IsZero() {
		now = time.Now()
	}

	ev, err := uc.repo.GetOpen(ctx, tr.ID)
	if err != nil {
		if err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.crisis.usecase.Rescore.GetOpen: %v", err)
			return model.CrisisEvent{}, false, err
		}
		if score < uc.cfg.MonitoringFloor {
			return model.CrisisEvent{}, false, nil
		}
		return uc.open(ctx, tr, now, score, triggers, snap, obs)
	}

	ev.Score = score
	ev.Severity = model.CrisisSeverity(score)
	ev.Triggers = triggers
	ev.Metrics = crisis.FreezeMetrics(snap, obs)

	if score < uc.cfg.MonitoringFloor {
		return uc.maybeResolve(ctx, ev, now)
	}
	uc.clearBelow(tr.ID)

	promoted := uc.promote(&ev, now)

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.Rescore.Update: %v", err)
		return model.CrisisEvent{}, false, err
	}

	if promoted {
		uc.dispatch(ctx, updated, "Crisis escalated")
	}
	return updated, true, nil
}

// open creates a fresh incident in monitoring state, then promotes it as
// far as the score allows in the same rescore.
func (uc *usecase) open(ctx context.Context, tr model.Tracker, now time.Time, score int, triggers model.TriggerSet, snap metrics.Snapshot, obs metrics.Observation) (model.CrisisEvent, bool, error) {
	uc.clearBelow(tr.ID)

	ev := model.CrisisEvent{
		ID:          postgresPkg.NewUUID(),
		OrgID:       tr.OrgID,
		TrackerID:   tr.ID,
		Title:       fmt.Sprintf("Crisis detected: %s", tr.Name),
		Description: describeTriggers(triggers),
		DetectedAt:  now,
		Severity:    model.CrisisSeverity(score),
		Status:      model.CrisisMonitoring,
		Score:       score,
		Triggers:    triggers,
		Metrics:     crisis.FreezeMetrics(snap, obs),
		Timeline: []model.TimelineEntry{{
			Timestamp: now,
			Event:     "Crisis score crossed the monitoring floor",
			Type:      model.TimelineDetection,
			Details:   fmt.Sprintf("score %d", score),
		}},
	}

	uc.promote(&ev, now)

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.Rescore.Create: %v", err)
		return model.CrisisEvent{}, false, err
	}

	uc.dispatch(ctx, created, "Crisis detected")
	return created, true, nil
}

// promote walks the event up through active and escalated as far as its
// score reaches, appending a timeline entry per step. Reports whether
// any step was taken.
func (uc *usecase) promote(ev *model.CrisisEvent, now time.Time) bool {
	promoted := false
	if ev.Status == model.CrisisMonitoring && ev.Score >= uc.cfg.ActiveFloor {
		ev.Status = model.CrisisActive
		ev.Timeline = append(ev.Timeline, model.TimelineEntry{
			Timestamp: now,
			Event:     "Crisis became active",
			Type:      model.TimelineEscalation,
			Details:   fmt.Sprintf("score %d", ev.Score),
		})
		promoted = true
	}
	if ev.Status == model.CrisisActive && ev.Score >= uc.cfg.EscalateFloor {
		ev.Status = model.CrisisEscalated
		ev.Timeline = append(ev.Timeline, model.TimelineEntry{
			Timestamp: now,
			Event:     "Crisis escalated",
			Type:      model.TimelineEscalation,
			Details:   fmt.Sprintf("score %d", ev.Score),
		})
		promoted = true
	}
	return promoted
}

// maybeResolve resolves the event once its score has stayed below the
// monitoring floor for the full cool-down.
func (uc *usecase) maybeResolve(ctx context.Context, ev model.CrisisEvent, now time.Time) (model.CrisisEvent, bool, error) {
	uc.mu.Lock()
	since, ok := uc.belowSince[ev.TrackerID]
	if !ok {
		since = now
		uc.belowSince[ev.TrackerID] = now
	}
	uc.mu.Unlock()

	if now.Sub(since) >= uc.cfg.ResolveCooldown {
		ev.Status = model.CrisisResolved
		ev.Timeline = append(ev.Timeline, model.TimelineEntry{
			Timestamp: now,
			Event:     "Crisis auto-resolved",
			Type:      model.TimelineResolution,
			Details:   fmt.Sprintf("score below %d for %s", uc.cfg.MonitoringFloor, uc.cfg.ResolveCooldown),
		})
		uc.clearBelow(ev.TrackerID)

		updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
		if err != nil {
			uc.l.Errorf(ctx, "internal.crisis.usecase.Rescore.resolve: %v", err)
			return model.CrisisEvent{}, false, err
		}
		return updated, false, nil
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.Rescore.Update: %v", err)
		return model.CrisisEvent{}, false, err
	}
	return updated, true, nil
}

func (uc *usecase) clearBelow(trackerID string) {
	uc.mu.Lock()
	delete(uc.belowSince, trackerID)
	uc.mu.Unlock()
}

// dispatch hands the event to the notifier. Delivery failures are
// logged, not propagated.
func (uc *usecase) dispatch(ctx context.Context, ev model.CrisisEvent, title string) {
	if len(uc.cfg.NotifyChannels) == 0 {
		return
	}
	n := notify.Notification{
		Kind:      notify.KindCrisis,
		TrackerID: ev.TrackerID,
		Severity:  string(ev.Severity),
		Channels:  uc.cfg.NotifyChannels,
		Title:     title,
		Message:   fmt.Sprintf("%s (score %d, status %s)", ev.Title, ev.Score, ev.Status),
		FiredAt:   time.Now(),
		Payload:   ev,
	}
	if err := uc.notifier.Notify(ctx, n); err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.dispatch: %v", err)
	}
}

func describeTriggers(t model.TriggerSet) string {
	var parts []string
	if t.VolumeSpike {
		parts = append(parts, "volume spike")
	}
	if t.SentimentDrop {
		parts = append(parts, "sentiment drop")
	}
	if t.InfluencerAmplification {
		parts = append(parts, "influencer amplification")
	}
	if t.NegativeKeywords {
		parts = append(parts, "negative keywords")
	}
	if t.GeographicSpread {
		parts = append(parts, "geographic spread")
	}
	if len(parts) == 0 {
		return "no active triggers"
	}
	return "Triggered by " + strings.Join(parts, ", ")
}
