package usecase

import (
	"context"
	"errors"
	"testing"

	"monitoring-srv/internal/model"
	"monitoring-srv/internal/query"
	"monitoring-srv/internal/tracker"
	"monitoring-srv/internal/tracker/repository/inmem"
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

func contosoConditions() []model.Condition {
	return []model.Condition{
		{ID: "c1", Kind: model.KindKeyword, Joiner: model.JoinerAnd, Value: "Contoso"},
		{ID: "c2", Kind: model.KindKeyword, Joiner: model.JoinerOr, Value: "Fabrikam"},
		{ID: "c3", Kind: model.KindExclude, Joiner: model.JoinerNot, Value: "lowongan"},
	}
}

func TestCreate(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	sc := model.Scope{OrgID: "org1"}

	tr, err := uc.Create(context.Background(), sc, tracker.CreateInput{
		Name:             "Contoso brand",
		Conditions:       contosoConditions(),
		Filters:          model.TrackerFilters{Sentiment: model.SentimentAll},
		NegativeKeywords: []string{"boycott"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if tr.Query != "(Contoso OR Fabrikam) AND NOT (lowongan)" {
		t.Errorf("Query = %q, want canonical form", tr.Query)
	}
	if tr.Version != 1 || !tr.Enabled {
		t.Errorf("Version = %d, Enabled = %v, want 1, true", tr.Version, tr.Enabled)
	}
	if tr.OrgID != "org1" {
		t.Errorf("OrgID = %q, want org1", tr.OrgID)
	}
}

func TestCreate_RejectsBadQuery(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	sc := model.Scope{OrgID: "org1"}

	_, err := uc.Create(context.Background(), sc, tracker.CreateInput{
		Name: "broken",
		Conditions: []model.Condition{
			{ID: "c1", Kind: model.KindKeyword, Joiner: model.JoinerAnd, Value: "   "},
		},
	})
	var cerr *query.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("Create error = %v, want *query.CompileError", err)
	}

	if _, err := uc.Create(context.Background(), sc, tracker.CreateInput{Conditions: contosoConditions()}); err != tracker.ErrNameRequired {
		t.Errorf("Create without name = %v, want ErrNameRequired", err)
	}
}

func TestEditQuery_BumpsVersion(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	sc := model.Scope{OrgID: "org1"}
	ctx := context.Background()

	tr, err := uc.Create(ctx, sc, tracker.CreateInput{Name: "Contoso", Conditions: contosoConditions()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := uc.EditQuery(ctx, sc, tracker.EditQueryInput{
		ID: tr.ID,
		Conditions: []model.Condition{
			{ID: "c1", Kind: model.KindPhrase, Joiner: model.JoinerAnd, Value: "Contoso Brand"},
		},
	})
	if err != nil {
		t.Fatalf("EditQuery: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("Version = %d, want 2", updated.Version)
	}
	if updated.Query != `"Contoso Brand"` {
		t.Errorf("Query = %q, want quoted phrase", updated.Query)
	}

	// A failed edit leaves the stored tracker untouched.
	_, err = uc.EditQuery(ctx, sc, tracker.EditQueryInput{ID: tr.ID, Conditions: nil})
	if err == nil {
		t.Fatal("EditQuery with no conditions succeeded")
	}
	got, err := uc.Detail(ctx, sc, tr.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got.Version != 2 || got.Query != `"Contoso Brand"` {
		t.Errorf("tracker mutated by failed edit: version %d query %q", got.Version, got.Query)
	}
}

func TestSetFilters(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	sc := model.Scope{OrgID: "org1"}
	ctx := context.Background()

	tr, err := uc.Create(ctx, sc, tracker.CreateInput{Name: "Contoso", Conditions: contosoConditions()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := uc.SetFilters(ctx, sc, tracker.SetFiltersInput{
		ID: tr.ID,
		Filters: model.TrackerFilters{
			SourceTypes: []string{"news", "social"},
			Countries:   []string{"ID"},
			Sentiment:   model.SentimentNegative,
		},
		NegativeKeywords: []string{"boycott", "recall"},
	})
	if err != nil {
		t.Fatalf("SetFilters: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("Version = %d, want 2", updated.Version)
	}
	if len(updated.NegativeKeywords) != 2 {
		t.Errorf("NegativeKeywords = %v, want two entries", updated.NegativeKeywords)
	}

	_, err = uc.SetFilters(ctx, sc, tracker.SetFiltersInput{
		ID:      tr.ID,
		Filters: model.TrackerFilters{Sentiment: "angry"},
	})
	if err != tracker.ErrInvalidFilters {
		t.Errorf("SetFilters with bad sentiment = %v, want ErrInvalidFilters", err)
	}
}

func TestScopeIsolation(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	ctx := context.Background()

	tr, err := uc.Create(ctx, model.Scope{OrgID: "org1"}, tracker.CreateInput{
		Name: "Contoso", Conditions: contosoConditions(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uc.Detail(ctx, model.Scope{OrgID: "org2"}, tr.ID); err != tracker.ErrTrackerNotFound {
		t.Errorf("cross-org Detail = %v, want ErrTrackerNotFound", err)
	}
	if err := uc.Delete(ctx, model.Scope{OrgID: "org2"}, tr.ID); err != tracker.ErrTrackerNotFound {
		t.Errorf("cross-org Delete = %v, want ErrTrackerNotFound", err)
	}
}

func TestListActive(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	ctx := context.Background()
	sc := model.Scope{OrgID: "org1"}

	a, err := uc.Create(ctx, sc, tracker.CreateInput{Name: "A", Conditions: contosoConditions()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Create(ctx, model.Scope{OrgID: "org2"}, tracker.CreateInput{Name: "B", Conditions: contosoConditions()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uc.Toggle(ctx, sc, a.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	active, err := uc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].Name != "B" {
		t.Errorf("ListActive = %d trackers, want only the enabled one across orgs", len(active))
	}
}
