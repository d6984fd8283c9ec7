package usecase

import (
	"context"
	"testing"
	"time"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/crisis/repository/inmem"
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/notify"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockMetrics struct {
	snap metrics.Snapshot
	obs  metrics.Observation
}

func (m *mockMetrics) Snapshot(trackerID string) metrics.Snapshot {
	return m.snap
}

func (m *mockMetrics) Observe(trackerID string, within time.Duration, negativeKeywords []string) metrics.Observation {
	return m.obs
}

// set configures the mock so DeriveTriggers under DefaultConfig yields
// exactly the requested trigger set.
func (m *mockMetrics) set(at time.Time, spike, drop, negative, influencer, geo bool) {
	snap := metrics.Snapshot{
		TrackerID:  "tr1",
		At:         at,
		Windows:    map[model.Timeframe]metrics.Window{},
		PrevCounts: map[model.Timeframe]int{},
	}
	var obs metrics.Observation

	w1h := metrics.Window{Count: 1, MeanSentiment: 0}
	if spike {
		snap.Baseline = 2
		w1h.Count = 10
	}
	if drop {
		w1h.MeanSentiment = -0.5
	}
	snap.Windows[model.Timeframe1h] = w1h
	snap.Windows[model.Timeframe24h] = metrics.Window{Count: w1h.Count}
	if negative {
		obs.NegativeKeywordHits = 5
	}
	if influencer {
		obs.MaxReach = 80000
	}
	if geo {
		obs.Regions = 4
	}

	m.snap = snap
	m.obs = obs
}

func tracker() model.Tracker {
	return model.Tracker{
		ID:               "tr1",
		OrgID:            "org1",
		Name:             "Contoso",
		NegativeKeywords: []string{"boycott", "recall"},
	}
}

func TestRescore_StateSequence(t *testing.T) {
	ms := &mockMetrics{}
	uc := New(mockLogger{}, crisis.DefaultConfig(), inmem.New(mockLogger{}), ms, notify.Noop{})
	ctx := context.Background()
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Score 10 (geo only): below the monitoring floor, no event.
	ms.set(t0, false, false, false, false, true)
	_, open, err := uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if open {
		t.Fatal("score 10 opened an event")
	}

	// Score 35 (drop + geo): monitoring.
	ms.set(t0.Add(time.Minute), false, true, false, false, true)
	ev, open, err := uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if !open || ev.Status != model.CrisisMonitoring {
		t.Fatalf("score 35: open=%v status=%s, want monitoring", open, ev.Status)
	}
	if ev.Score != 35 {
		t.Fatalf("score = %d, want 35", ev.Score)
	}

	// Score 65 (spike + drop + geo): active.
	ms.set(t0.Add(2*time.Minute), true, true, false, false, true)
	ev, _, err = uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if ev.Status != model.CrisisActive {
		t.Fatalf("score 65: status = %s, want active", ev.Status)
	}
	if ev.Severity != model.SeverityHigh {
		t.Errorf("severity = %s, want high", ev.Severity)
	}

	// Score 85 (spike + drop + influencer + geo): escalated.
	ms.set(t0.Add(3*time.Minute), true, true, false, true, true)
	ev, _, err = uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if ev.Status != model.CrisisEscalated {
		t.Fatalf("score 85: status = %s, want escalated", ev.Status)
	}
	if ev.Severity != model.SeverityCritical {
		t.Errorf("severity = %s, want critical", ev.Severity)
	}

	// Score 20 (influencer only): below the floor, but the cool-down has
	// not elapsed, so the event stays open and keeps its state.
	ms.set(t0.Add(4*time.Minute), false, false, false, true, false)
	ev, open, err = uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if !open || ev.Status != model.CrisisEscalated {
		t.Fatalf("score 20: open=%v status=%s, want still escalated", open, ev.Status)
	}

	// The same event was mutated throughout, never replaced.
	if len(ev.Timeline) < 3 {
		t.Errorf("timeline has %d entries, want detection plus two escalations", len(ev.Timeline))
	}
	for i := 1; i < len(ev.Timeline); i++ {
		if ev.Timeline[i].Timestamp.Before(ev.Timeline[i-1].Timestamp) {
			t.Error("timeline entries out of order")
		}
	}
}

func TestRescore_SingleBurstPromotesThrough(t *testing.T) {
	ms := &mockMetrics{}
	uc := New(mockLogger{}, crisis.DefaultConfig(), inmem.New(mockLogger{}), ms, notify.Noop{})
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Score 100 from a cold start still walks every state.
	ms.set(t0, true, true, true, true, true)
	ev, open, err := uc.Rescore(context.Background(), tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if !open || ev.Status != model.CrisisEscalated {
		t.Fatalf("open=%v status=%s, want escalated", open, ev.Status)
	}
	if ev.Score != 100 {
		t.Errorf("score = %d, want 100", ev.Score)
	}

	var types []model.TimelineEntryType
	for _, entry := range ev.Timeline {
		types = append(types, entry.Type)
	}
	want := []model.TimelineEntryType{model.TimelineDetection, model.TimelineEscalation, model.TimelineEscalation}
	if len(types) != len(want) {
		t.Fatalf("timeline types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("timeline types = %v, want %v", types, want)
		}
	}
}

func TestRescore_AutoResolveAfterCooldown(t *testing.T) {
	cfg := crisis.DefaultConfig()
	ms := &mockMetrics{}
	uc := New(mockLogger{}, cfg, inmem.New(mockLogger{}), ms, notify.Noop{})
	ctx := context.Background()
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ms.set(t0, true, true, false, false, true)
	if _, _, err := uc.Rescore(ctx, tracker()); err != nil {
		t.Fatalf("Rescore: %v", err)
	}

	// Quiet, but inside the cool-down: still open.
	ms.set(t0.Add(5*time.Minute), false, false, false, false, false)
	ev, open, err := uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if !open {
		t.Fatal("event resolved before the cool-down elapsed")
	}

	// Quiet past the cool-down: auto-resolved.
	ms.set(t0.Add(5*time.Minute).Add(cfg.ResolveCooldown), false, false, false, false, false)
	ev, open, err = uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if open {
		t.Fatal("event still open after the cool-down")
	}
	if ev.Status != model.CrisisResolved {
		t.Fatalf("status = %s, want resolved", ev.Status)
	}
	last := ev.Timeline[len(ev.Timeline)-1]
	if last.Type != model.TimelineResolution {
		t.Errorf("last timeline type = %s, want resolution", last.Type)
	}

	// A fresh crossing opens a new event.
	ms.set(t0.Add(2*time.Hour), true, true, false, false, true)
	next, open, err := uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if !open {
		t.Fatal("new crossing did not open an event")
	}
	if next.ID == ev.ID {
		t.Error("resolved event was reopened instead of a new one created")
	}
}

func TestManualOps(t *testing.T) {
	ms := &mockMetrics{}
	uc := New(mockLogger{}, crisis.DefaultConfig(), inmem.New(mockLogger{}), ms, notify.Noop{})
	ctx := context.Background()
	sc := model.Scope{OrgID: "org1"}
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ms.set(t0, false, true, false, false, true)
	ev, _, err := uc.Rescore(ctx, tracker())
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}

	// Manual escalation walks one state at a time.
	active, err := uc.Escalate(ctx, sc, ev.ID)
	if err != nil {
		t.Fatalf("Escalate: %v", err)
	}
	if active.Status != model.CrisisActive {
		t.Fatalf("status = %s, want active", active.Status)
	}

	escalated, err := uc.Escalate(ctx, sc, ev.ID)
	if err != nil {
		t.Fatalf("Escalate: %v", err)
	}
	if escalated.Status != model.CrisisEscalated {
		t.Fatalf("status = %s, want escalated", escalated.Status)
	}

	// A third escalation has nowhere to go.
	again, err := uc.Escalate(ctx, sc, ev.ID)
	if err != nil {
		t.Fatalf("Escalate: %v", err)
	}
	if again.Status != model.CrisisEscalated || len(again.Timeline) != len(escalated.Timeline) {
		t.Fatalf("repeat escalate changed the event: status=%s timeline=%d, want escalated with %d entries",
			again.Status, len(again.Timeline), len(escalated.Timeline))
	}

	withAction, err := uc.AddAction(ctx, sc, ev.ID, crisis.AddActionInput{
		Action:     "Draft holding statement",
		AssignedTo: "comms",
		DueDate:    t0.Add(4 * time.Hour),
	})
	if err != nil {
		t.Fatalf("AddAction: %v", err)
	}
	if len(withAction.Actions) != 1 || withAction.Actions[0].Status != model.ActionPending {
		t.Fatalf("actions = %+v, want one pending", withAction.Actions)
	}

	done := model.ActionCompleted
	updated, err := uc.UpdateAction(ctx, sc, ev.ID, crisis.UpdateActionInput{
		ActionID: withAction.Actions[0].ID,
		Status:   &done,
	})
	if err != nil {
		t.Fatalf("UpdateAction: %v", err)
	}
	if updated.Actions[0].Status != model.ActionCompleted {
		t.Errorf("action status = %s, want completed", updated.Actions[0].Status)
	}

	resolved, err := uc.Resolve(ctx, sc, ev.ID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Status != model.CrisisResolved {
		t.Fatalf("status = %s, want resolved", resolved.Status)
	}

	// Resolved is terminal for operator state changes.
	if _, err := uc.Escalate(ctx, sc, ev.ID); err != crisis.ErrCrisisResolved {
		t.Errorf("Escalate on resolved = %v, want ErrCrisisResolved", err)
	}
	if _, err := uc.Resolve(ctx, sc, ev.ID); err != crisis.ErrCrisisResolved {
		t.Errorf("Resolve on resolved = %v, want ErrCrisisResolved", err)
	}

	// Post-mortem action bookkeeping stays possible.
	pending := model.ActionPending
	if _, err := uc.UpdateAction(ctx, sc, ev.ID, crisis.UpdateActionInput{
		ActionID: withAction.Actions[0].ID,
		Status:   &pending,
	}); err != nil {
		t.Errorf("UpdateAction on resolved: %v", err)
	}
}

func TestManualOps_NotFound(t *testing.T) {
	ms := &mockMetrics{}
	uc := New(mockLogger{}, crisis.DefaultConfig(), inmem.New(mockLogger{}), ms, notify.Noop{})
	ctx := context.Background()
	sc := model.Scope{OrgID: "org1"}

	if _, err := uc.Detail(ctx, sc, "missing"); err != crisis.ErrCrisisNotFound {
		t.Errorf("Detail = %v, want ErrCrisisNotFound", err)
	}
	if _, err := uc.Escalate(ctx, sc, "missing"); err != crisis.ErrCrisisNotFound {
		t.Errorf("Escalate = %v, want ErrCrisisNotFound", err)
	}
}
