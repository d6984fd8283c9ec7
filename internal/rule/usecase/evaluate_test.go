package usecase

import (
	"context"
	"testing"
	"time"

	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule"
	"monitoring-srv/internal/rule/repository/inmem"
	"monitoring-srv/pkg/notify"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any) {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any) {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Warn(ctx context.Context, arg ...any) {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Error(ctx context.Context, arg ...any) {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any) {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockMetrics struct {
	snap     metrics.Snapshot
	current  int
	previous int
}

func (m *mockMetrics) Snapshot(trackerID string) metrics.Snapshot {
	return m.snap
}

func (m *mockMetrics) KeywordCounts(trackerID, keyword string, tf model.Timeframe) (int, int) {
	return m.current, m.previous
}

type mockNotifier struct {
	sent []notify.Notification
}

func (m *mockNotifier) Notify(ctx context.Context, n notify.Notification) error {
	m.sent = append(m.sent, n)
	return nil
}

func snapshotAt(at time.Time, count1h int, mean1h, longMean, baseline float64) metrics.Snapshot {
	return metrics.Snapshot{
		TrackerID: "tr1",
		At:        at,
		Windows: map[model.Timeframe]metrics.Window{
			model.Timeframe1h: {Count: count1h, MeanSentiment: mean1h},
		},
		PrevCounts:        map[model.Timeframe]int{},
		Baseline:          baseline,
		LongMeanSentiment: longMean,
	}
}

func newTestUsecase(t *testing.T, ms *mockMetrics) (rule.UseCase, *mockNotifier) {
	t.Helper()
	notifier := &mockNotifier{}
	repo := inmem.New(mockLogger{})
	return New(mockLogger{}, repo, ms, notifier), notifier
}

func createRule(t *testing.T, uc rule.UseCase, ip rule.CreateInput) model.AlertRule {
	t.Helper()
	rl, err := uc.Create(context.Background(), model.Scope{OrgID: "org1"}, ip)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return rl
}

func TestEvaluateTracker_VolumeSpikeDedup(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 10, 0, 0, 0)}
	uc, notifier := newTestUsecase(t, ms)

	createRule(t, uc, rule.CreateInput{
		Name:      "volume spike",
		TrackerID: "tr1",
		Condition: model.ConditionVolumeSpike,
		Threshold: 5,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail, model.ChannelSlack},
	})

	ctx := context.Background()

	// First crossing fires.
	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("first crossing fired %d alerts, want 1", len(fired))
	}

	// Still crossed ten minutes later: same episode, no refire.
	ms.snap = snapshotAt(t0.Add(10*time.Minute), 12, 0, 0, 0)
	fired, err = uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("same episode fired %d alerts, want 0", len(fired))
	}

	// Clears, then recrosses: new episode fires immediately.
	ms.snap = snapshotAt(t0.Add(20*time.Minute), 3, 0, 0, 0)
	if _, err := uc.EvaluateTracker(ctx, "tr1", nil); err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	ms.snap = snapshotAt(t0.Add(30*time.Minute), 8, 0, 0, 0)
	fired, err = uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("recross fired %d alerts, want 1", len(fired))
	}

	// Stays crossed past the 1h cooldown: refires.
	ms.snap = snapshotAt(t0.Add(95*time.Minute), 9, 0, 0, 0)
	fired, err = uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("cooldown elapse fired %d alerts, want 1", len(fired))
	}

	if len(notifier.sent) != 3 {
		t.Errorf("notifier received %d notifications, want 3", len(notifier.sent))
	}
	if got := notifier.sent[0].Channels; len(got) != 2 || got[0] != "email" || got[1] != "slack" {
		t.Errorf("notification channels = %v, want [email slack]", got)
	}
}

func TestEvaluateTracker_VolumeSpikeBaselineMultiple(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 10, 0, 0, 4)}
	uc, _ := newTestUsecase(t, ms)

	createRule(t, uc, rule.CreateInput{
		Name:      "3x baseline",
		TrackerID: "tr1",
		Condition: model.ConditionVolumeSpike,
		Threshold: 3,
		Mode:      model.ThresholdBaselineMultiple,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail},
	})

	ctx := context.Background()

	// 10 <= 3 * 4: below the multiple.
	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("below baseline multiple fired %d alerts, want 0", len(fired))
	}

	// 13 > 3 * 4: crossed.
	ms.snap = snapshotAt(t0.Add(time.Minute), 13, 0, 0, 4)
	fired, err = uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("above baseline multiple fired %d alerts, want 1", len(fired))
	}
}

func TestEvaluateTracker_SentimentDrop(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 5, -0.5, 0.0, 0)}
	uc, _ := newTestUsecase(t, ms)

	createRule(t, uc, rule.CreateInput{
		Name:      "sentiment drop",
		TrackerID: "tr1",
		Condition: model.ConditionSentimentDrop,
		Threshold: -0.3,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityMedium,
		Channels:  []model.Channel{model.ChannelSlack},
	})

	ctx := context.Background()

	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("drop of -0.5 fired %d alerts, want 1", len(fired))
	}

	// An empty window never fires, regardless of the long mean.
	ms.snap = snapshotAt(t0.Add(2*time.Hour), 0, 0, 0.8, 0)
	fired, err = uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("empty window fired %d alerts, want 0", len(fired))
	}
}

func TestEvaluateTracker_NewInfluencer(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 1, 0, 0, 0)}
	uc, _ := newTestUsecase(t, ms)

	createRule(t, uc, rule.CreateInput{
		Name:      "influencer",
		TrackerID: "tr1",
		Condition: model.ConditionNewInfluencer,
		Threshold: 50000,
		Timeframe: model.Timeframe24h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail},
	})

	ctx := context.Background()

	// No triggering mention: nothing to judge.
	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("nil mention fired %d alerts, want 0", len(fired))
	}

	m := model.Mention{ID: "m1", TrackerID: "tr1", Author: "@bigaccount", AuthorReach: 80000}
	fired, err = uc.EvaluateTracker(ctx, "tr1", &m)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("high-reach mention fired %d alerts, want 1", len(fired))
	}
}

func TestEvaluateTracker_KeywordTrend(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 5, 0, 0, 0), current: 5, previous: 2}
	uc, _ := newTestUsecase(t, ms)

	createRule(t, uc, rule.CreateInput{
		Name:      "keyword trend",
		TrackerID: "tr1",
		Condition: model.ConditionKeywordTrend,
		Threshold: 1.0,
		Keyword:   "recall",
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityLow,
		Channels:  []model.Channel{model.ChannelWebhook},
	})

	ctx := context.Background()

	// Growth (5-2)/2 = 1.5 > 1.0.
	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("growth 1.5 fired %d alerts, want 1", len(fired))
	}

	// Growth (3-2)/2 = 0.5 <= 1.0.
	ms.snap = snapshotAt(t0.Add(2*time.Hour), 3, 0, 0, 0)
	ms.current, ms.previous = 3, 2
	fired, err = uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("growth 0.5 fired %d alerts, want 0", len(fired))
	}
}

func TestEvaluateTracker_DisabledRuleSkipped(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 100, 0, 0, 0)}
	uc, _ := newTestUsecase(t, ms)

	rl := createRule(t, uc, rule.CreateInput{
		Name:      "volume spike",
		TrackerID: "tr1",
		Condition: model.ConditionVolumeSpike,
		Threshold: 5,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail},
	})

	ctx := context.Background()
	if _, err := uc.Toggle(ctx, model.Scope{OrgID: "org1"}, rl.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("disabled rule fired %d alerts, want 0", len(fired))
	}
}

func TestAlerts_ScopedToOwningOrg(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := &mockMetrics{snap: snapshotAt(t0, 10, 0, 0, 0)}
	uc, _ := newTestUsecase(t, ms)

	createRule(t, uc, rule.CreateInput{
		Name:      "volume spike",
		TrackerID: "tr1",
		Condition: model.ConditionVolumeSpike,
		Threshold: 5,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail},
	})

	ctx := context.Background()
	fired, err := uc.EvaluateTracker(ctx, "tr1", nil)
	if err != nil {
		t.Fatalf("EvaluateTracker: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("fired %d alerts, want 1", len(fired))
	}
	if fired[0].OrgID != "org1" {
		t.Errorf("alert OrgID = %q, want the owning rule's org", fired[0].OrgID)
	}

	// The owning org sees its alert.
	alerts, err := uc.Alerts(ctx, model.Scope{OrgID: "org1"}, rule.AlertsInput{})
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("owning org sees %d alerts, want 1", len(alerts))
	}

	// Another org does not.
	alerts, err = uc.Alerts(ctx, model.Scope{OrgID: "org2"}, rule.AlertsInput{})
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("foreign org sees %d alerts, want 0", len(alerts))
	}

	// The internal scope sees everything.
	alerts, err = uc.Alerts(ctx, model.Scope{}, rule.AlertsInput{})
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("internal scope sees %d alerts, want 1", len(alerts))
	}
}

func TestCreate_Validation(t *testing.T) {
	base := rule.CreateInput{
		Name:      "rule",
		TrackerID: "tr1",
		Condition: model.ConditionVolumeSpike,
		Threshold: 5,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail},
	}

	tcs := map[string]struct {
		mutate  func(*rule.CreateInput)
		wantErr error
	}{
		"missing name": {
			mutate:  func(ip *rule.CreateInput) { ip.Name = "" },
			wantErr: rule.ErrNameRequired,
		},
		"missing tracker": {
			mutate:  func(ip *rule.CreateInput) { ip.TrackerID = "" },
			wantErr: rule.ErrTrackerRequired,
		},
		"unknown condition": {
			mutate:  func(ip *rule.CreateInput) { ip.Condition = "volume" },
			wantErr: rule.ErrInvalidCondition,
		},
		"unknown timeframe": {
			mutate:  func(ip *rule.CreateInput) { ip.Timeframe = "2h" },
			wantErr: rule.ErrInvalidTimeframe,
		},
		"critical severity reserved for crises": {
			mutate:  func(ip *rule.CreateInput) { ip.Severity = model.SeverityCritical },
			wantErr: rule.ErrInvalidSeverity,
		},
		"no channels": {
			mutate:  func(ip *rule.CreateInput) { ip.Channels = nil },
			wantErr: rule.ErrChannelRequired,
		},
		"unknown channel": {
			mutate:  func(ip *rule.CreateInput) { ip.Channels = []model.Channel{"sms"} },
			wantErr: rule.ErrInvalidChannel,
		},
		"non-negative drop threshold": {
			mutate: func(ip *rule.CreateInput) {
				ip.Condition = model.ConditionSentimentDrop
				ip.Threshold = 0.3
			},
			wantErr: rule.ErrInvalidThreshold,
		},
		"keyword trend without keyword": {
			mutate: func(ip *rule.CreateInput) {
				ip.Condition = model.ConditionKeywordTrend
				ip.Threshold = 1.5
			},
			wantErr: rule.ErrKeywordRequired,
		},
		"bad mode": {
			mutate:  func(ip *rule.CreateInput) { ip.Mode = "relative" },
			wantErr: rule.ErrInvalidMode,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			ms := &mockMetrics{}
			uc, _ := newTestUsecase(t, ms)

			ip := base
			tc.mutate(&ip)
			_, err := uc.Create(context.Background(), model.Scope{OrgID: "org1"}, ip)
			if err != tc.wantErr {
				t.Errorf("Create error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
