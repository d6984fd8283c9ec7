package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/mention/repository/inmem"
	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
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

func seed(t *testing.T, uc mention.UseCase) {
	t.Helper()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mentions := []model.Mention{
		{
			ID: "m1", TrackerID: "tr1", SourceType: "news", Domain: "news.example.com",
			URL: "https://news.example.com/a", Author: "Jakarta Desk", Title: "Contoso opens plant",
			PostedAt: base, Language: "id", Sentiment: model.SentimentPositive,
		},
		{
			ID: "m2", TrackerID: "tr1", SourceType: "social", Author: "@upset",
			Title: "Contoso recall rumors", Snippet: "calls for a recall grow",
			PostedAt: base.Add(time.Hour), Language: "en", Sentiment: model.SentimentNegative,
		},
		{
			ID: "m3", TrackerID: "tr2", SourceType: "news", Title: "Fabrikam earnings",
			PostedAt: base.Add(2 * time.Hour), Language: "en", Sentiment: model.SentimentNeutral,
		},
	}
	for _, m := range mentions {
		if _, err := uc.Append(context.Background(), m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
}

func TestGet_FiltersAndPagination(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	seed(t, uc)
	ctx := context.Background()
	sc := model.Scope{OrgID: "org1"}

	out, err := uc.Get(ctx, sc, mention.GetInput{
		Filter:        mention.Filter{TrackerID: "tr1"},
		PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Paginator.Total != 2 || len(out.Mentions) != 2 {
		t.Fatalf("tr1 total = %d with %d rows, want 2", out.Paginator.Total, len(out.Mentions))
	}
	// Newest first.
	if out.Mentions[0].ID != "m2" {
		t.Errorf("first mention = %s, want m2", out.Mentions[0].ID)
	}

	out, err = uc.Get(ctx, sc, mention.GetInput{
		Filter: mention.Filter{TrackerID: "tr1", Sentiment: model.SentimentNegative, Search: "recall"},
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out.Mentions) != 1 || out.Mentions[0].ID != "m2" {
		t.Fatalf("filtered mentions = %+v, want only m2", out.Mentions)
	}

	if _, err := uc.Get(ctx, sc, mention.GetInput{
		Filter: mention.Filter{Sentiment: "angry"},
	}); err != mention.ErrInvalidFilter {
		t.Errorf("Get with bad sentiment = %v, want ErrInvalidFilter", err)
	}
}

func TestExportCSV(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	seed(t, uc)

	var buf bytes.Buffer
	err := uc.ExportCSV(context.Background(), model.Scope{}, mention.ExportInput{
		Filter: mention.Filter{TrackerID: "tr1"},
	}, &buf)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("export has %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "id,source_type,domain,url,author,title,posted_at,language,sentiment" {
		t.Errorf("header = %q", lines[0])
	}
	// Oldest first in exports.
	if !strings.HasPrefix(lines[1], "m1,") || !strings.HasPrefix(lines[2], "m2,") {
		t.Errorf("rows out of order: %q, %q", lines[1], lines[2])
	}
	if !strings.Contains(lines[1], "2025-06-01T10:00:00Z") {
		t.Errorf("posted_at not RFC3339: %q", lines[1])
	}
}

func TestExportJSON(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))
	seed(t, uc)

	var buf bytes.Buffer
	err := uc.ExportJSON(context.Background(), model.Scope{}, mention.ExportInput{
		Filter: mention.Filter{TrackerID: "tr2"},
	}, &buf)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded []model.Mention
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != "m3" {
		t.Fatalf("decoded = %+v, want only m3", decoded)
	}
}

func TestExport_RequiresTracker(t *testing.T) {
	uc := New(mockLogger{}, inmem.New(mockLogger{}))

	var buf bytes.Buffer
	err := uc.ExportCSV(context.Background(), model.Scope{}, mention.ExportInput{}, &buf)
	if err != mention.ErrTrackerRequired {
		t.Errorf("ExportCSV without tracker = %v, want ErrTrackerRequired", err)
	}
}
