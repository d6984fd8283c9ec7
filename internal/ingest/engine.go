// Package ingest is the content-item pipeline: rate limiting, tracker
// matching, and per-tracker ordered processing of matched mentions.
package ingest

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
	"monitoring-srv/internal/query"
	"monitoring-srv/internal/rule"
	"monitoring-srv/internal/tracker"
	pkgLog "monitoring-srv/pkg/log"
)

// Engine fans content items out to per-tracker workers. Items flow
// through one shared intake queue into one ordered queue per tracker,
// so cross-tracker work is parallel while each tracker's mentions stay
// chronological.
type Engine struct {
	l   pkgLog.Logger
	cfg Config

	trackerUC tracker.UseCase
	mentionUC mention.UseCase
	ruleUC    rule.UseCase
	crisisUC  crisis.UseCase
	agg       *metrics.Aggregator

	limiter *rate.Limiter
	intake  chan model.ContentItem
	sweepCh chan struct{}

	mu      sync.Mutex
	workers map[string]*trackerWorker
	queries map[string]compiledQuery
	stopped bool

	debMu     sync.Mutex
	debounced map[string]*time.Timer

	wg sync.WaitGroup
}

// compiledQuery caches one tracker's compiled query, invalidated by the
// tracker's version counter.
type compiledQuery struct {
	version int
	q       *query.Query
}

type trackerWorker struct {
	ch chan workItem
}

// workItem pairs a mention with the tracker revision that matched it,
// so the worker never reads shared tracker state.
type workItem struct {
	mention model.Mention
	tracker model.Tracker
}

// New builds the engine. Start must be called before Process.
func New(
	l pkgLog.Logger,
	cfg Config,
	trackerUC tracker.UseCase,
	mentionUC mention.UseCase,
	ruleUC rule.UseCase,
	crisisUC crisis.UseCase,
	agg *metrics.Aggregator,
) *Engine {
	cfg.adjust()

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	return &Engine{
		l:         l,
		cfg:       cfg,
		trackerUC: trackerUC,
		mentionUC: mentionUC,
		ruleUC:    ruleUC,
		crisisUC:  crisisUC,
		agg:       agg,
		limiter:   rate.NewLimiter(limit, cfg.RateBurst),
		intake:    make(chan model.ContentItem, cfg.IntakeBuffer),
		sweepCh:   make(chan struct{}),
		workers:   make(map[string]*trackerWorker),
		queries:   make(map[string]compiledQuery),
		debounced: make(map[string]*time.Timer),
	}
}

// Start launches the dispatcher and the periodic sweeper.
func (e *Engine) Start() {
	e.wg.Add(2)
	go e.dispatch()
	go e.sweep()
}

// Process accepts one content item for matching. It never blocks: over
// the rate limit or with a full intake queue the item is rejected and
// the collaborator retries later.
func (e *Engine) Process(ctx context.Context, item model.ContentItem) error {
	if !e.limiter.Allow() {
		return ErrRateLimited
	}

	// The lock pairs the stopped check with the send, so intake is never
	// written after Shutdown closed it. The send itself never blocks.
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}

	select {
	case e.intake <- item:
		return nil
	default:
		e.l.Warnf(ctx, "internal.ingest.Process: intake queue full, rejecting item %s", item.ID)
		return ErrQueueFull
	}
}

// Shutdown stops intake, drains every queue and waits for the workers,
// bounded by ctx.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return nil
	}
	e.stopped = true
	close(e.intake)
	close(e.sweepCh)
	e.mu.Unlock()

	e.debMu.Lock()
	for id, t := range e.debounced {
		t.Stop()
		delete(e.debounced, id)
	}
	e.debMu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dispatch matches each intake item against every active tracker and
// routes the resulting mentions onto the per-tracker queues.
func (e *Engine) dispatch() {
	defer e.wg.Done()
	ctx := context.Background()

	for item := range e.intake {
		trackers, err := e.trackerUC.ListActive(ctx)
		if err != nil {
			e.l.Errorf(ctx, "internal.ingest.dispatch.ListActive: %v", err)
			continue
		}

		for _, tr := range trackers {
			if !e.matches(ctx, tr, item) {
				continue
			}

			m := model.NewMention(mentionID(tr.ID, item.ID), tr.ID, item)
			w := e.worker(tr.ID)
			// Blocking send keeps per-tracker order; backpressure
			// surfaces upstream as a full intake queue.
			w.ch <- workItem{mention: m, tracker: tr}
		}
	}

	// Intake closed: close every tracker queue so workers drain and exit.
	e.mu.Lock()
	for _, w := range e.workers {
		close(w.ch)
	}
	e.mu.Unlock()
}

// sweep periodically advances every active tracker so windows expire,
// rule conditions clear, and quiet crises can auto-resolve even when no
// mentions arrive.
func (e *Engine) sweep() {
	defer e.wg.Done()
	ctx := context.Background()

	ticker := time.NewTicker(e.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.sweepCh:
			return
		case <-ticker.C:
			e.sweepOnce(ctx)
		}
	}
}

func (e *Engine) sweepOnce(ctx context.Context) {
	trackers, err := e.trackerUC.ListActive(ctx)
	if err != nil {
		e.l.Errorf(ctx, "internal.ingest.sweepOnce.ListActive: %v", err)
		return
	}

	for _, tr := range trackers {
		e.agg.Evict(tr.ID, time.Now())
		if _, err := e.ruleUC.EvaluateTracker(ctx, tr.ID, nil); err != nil {
			e.l.Errorf(ctx, "internal.ingest.sweepOnce.EvaluateTracker: %v", err)
		}
		if _, _, err := e.crisisUC.Rescore(ctx, tr); err != nil {
			e.l.Errorf(ctx, "internal.ingest.sweepOnce.Rescore: %v", err)
		}
	}
}

// matches runs the tracker's compiled query and filters over the item.
func (e *Engine) matches(ctx context.Context, tr model.Tracker, item model.ContentItem) bool {
	q := e.compiled(ctx, tr)
	if q == nil {
		return false
	}
	return q.Matches(item) && query.MatchesFilters(item, tr.Filters)
}

// compiled returns the tracker's cached query, recompiling when the
// tracker version moved.
func (e *Engine) compiled(ctx context.Context, tr model.Tracker) *query.Query {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cq, ok := e.queries[tr.ID]; ok && cq.version == tr.Version {
		return cq.q
	}

	q, err := query.Compile(tr.Conditions)
	if err != nil {
		// Trackers are validated at edit time; a compile failure here
		// means a corrupted record. Skip it rather than dropping the item
		// for everyone.
		e.l.Errorf(ctx, "internal.ingest.compiled: tracker %s version %d: %v", tr.ID, tr.Version, err)
		return nil
	}
	e.queries[tr.ID] = compiledQuery{version: tr.Version, q: q}
	return q
}

// worker returns the tracker's worker, starting one on first use.
func (e *Engine) worker(trackerID string) *trackerWorker {
	e.mu.Lock()
	defer e.mu.Unlock()

	if w, ok := e.workers[trackerID]; ok {
		return w
	}

	w := &trackerWorker{
		ch: make(chan workItem, e.cfg.TrackerBuffer),
	}
	e.workers[trackerID] = w

	e.wg.Add(1)
	go e.run(w)
	return w
}

// run serializes one tracker's mention processing: store, record,
// evict, evaluate rules, then a debounced crisis rescore.
func (e *Engine) run(w *trackerWorker) {
	defer e.wg.Done()
	ctx := context.Background()

	for wi := range w.ch {
		m := wi.mention
		if _, err := e.mentionUC.Append(ctx, m); err != nil {
			e.l.Errorf(ctx, "internal.ingest.run.Append: %v", err)
			continue
		}

		e.agg.Record(m)
		e.agg.Evict(m.TrackerID, time.Now())

		if _, err := e.ruleUC.EvaluateTracker(ctx, m.TrackerID, &m); err != nil {
			e.l.Errorf(ctx, "internal.ingest.run.EvaluateTracker: %v", err)
		}

		e.scheduleRescore(wi.tracker)
	}
}

// scheduleRescore debounces the crisis rescore so a mention burst costs
// one recompute instead of one per mention.
func (e *Engine) scheduleRescore(tr model.Tracker) {
	e.debMu.Lock()
	defer e.debMu.Unlock()

	if t, ok := e.debounced[tr.ID]; ok {
		t.Reset(e.cfg.CrisisDebounce)
		return
	}
	e.debounced[tr.ID] = time.AfterFunc(e.cfg.CrisisDebounce, func() {
		e.debMu.Lock()
		delete(e.debounced, tr.ID)
		e.debMu.Unlock()

		ctx := context.Background()
		if _, _, err := e.crisisUC.Rescore(ctx, tr); err != nil {
			e.l.Errorf(ctx, "internal.ingest.scheduleRescore: %v", err)
		}
	})
}
