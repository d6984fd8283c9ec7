package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	crisisPkg "monitoring-srv/internal/crisis"
	crisisinmem "monitoring-srv/internal/crisis/repository/inmem"
	crisisusecase "monitoring-srv/internal/crisis/usecase"
	mentioninmem "monitoring-srv/internal/mention/repository/inmem"
	mentionusecase "monitoring-srv/internal/mention/usecase"
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/middleware"
	ruleinmem "monitoring-srv/internal/rule/repository/inmem"
	ruleusecase "monitoring-srv/internal/rule/usecase"
	trackerinmem "monitoring-srv/internal/tracker/repository/inmem"
	trackerusecase "monitoring-srv/internal/tracker/usecase"
	"monitoring-srv/pkg/notify"

	ingestPkg "monitoring-srv/internal/ingest"

	"github.com/gin-gonic/gin"
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

func newRouter(t *testing.T, key string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := mockLogger{}

	agg := metrics.New(l)
	trackerUC := trackerusecase.New(l, trackerinmem.New(l))
	mentionUC := mentionusecase.New(l, mentioninmem.New(l))
	ruleUC := ruleusecase.New(l, ruleinmem.New(l), agg, &notify.Noop{})
	crisisUC := crisisusecase.New(l, crisisPkg.DefaultConfig(), crisisinmem.New(l), agg, &notify.Noop{})

	engine := ingestPkg.New(l, ingestPkg.Config{}, trackerUC, mentionUC, ruleUC, crisisUC, agg)
	engine.Start()
	t.Cleanup(func() { engine.Shutdown(context.Background()) })

	r := gin.New()
	New(l, engine).RegisterRoutes(r.Group("/api/v1"), middleware.New(l, key))
	return r
}

func post(r *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.InternalAuthHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itemBody(id string) string {
	return fmt.Sprintf(`{"id": %q, "source_type": "social", "title": "hello", "posted_at": %q}`,
		id, time.Now().Format(time.RFC3339))
}

func TestIngest_RequiresInternalKey(t *testing.T) {
	r := newRouter(t, "secret")

	if w := post(r, "", itemBody("i1")); w.Code != http.StatusUnauthorized {
		t.Errorf("missing key status = %d, want 401", w.Code)
	}
	if w := post(r, "wrong", itemBody("i1")); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key status = %d, want 401", w.Code)
	}
	if w := post(r, "secret", itemBody("i1")); w.Code != http.StatusOK {
		t.Errorf("valid key status = %d, want 200", w.Code)
	}
}

func TestIngest_EmptyConfiguredKeyRejectsAll(t *testing.T) {
	r := newRouter(t, "")

	if w := post(r, "", itemBody("i1")); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestIngest_Validation(t *testing.T) {
	r := newRouter(t, "secret")

	if w := post(r, "secret", "{not json"); w.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", w.Code)
	}
	if w := post(r, "secret", `{"title": "no id", "posted_at": "2026-01-02T15:04:05Z"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing id status = %d, want 400", w.Code)
	}
	if w := post(r, "secret", `{"id": "i1"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing posted_at status = %d, want 400", w.Code)
	}
}

func TestIngest_Accepted(t *testing.T) {
	r := newRouter(t, "secret")

	w := post(r, "secret", itemBody("i9"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var env struct {
		Data struct {
			Accepted bool   `json:"accepted"`
			ItemID   string `json:"item_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Data.Accepted || env.Data.ItemID != "i9" {
		t.Errorf("data = %+v", env.Data)
	}
}
