// Package metrics maintains rolling mention counts and sentiment means
// per tracker over the fixed timeframes, plus the hour-of-day baseline
// used for spike detection.
package metrics

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/log"
)

const (
	// longWindow is the comparison window for sentiment-drop detection.
	longWindow = 72 * time.Hour

	// baselineHorizon is how far back hourly buckets are kept for the
	// same-hour spike baseline.
	baselineHorizon = 7 * 24 * time.Hour

	// pruneThreshold is how many fully evicted points may pile up at the
	// head of the buffer before it is compacted.
	pruneThreshold = 1024
)

// Aggregator owns all per-tracker window state. Each tracker's state is
// guarded by its own mutex; the pipeline's per-tracker worker is the
// single writer, concurrent readers take the same lock briefly.
type Aggregator struct {
	l log.Logger

	mu       sync.RWMutex
	trackers map[string]*trackerState
}

type trackerState struct {
	mu        sync.Mutex
	points    []point
	ids       map[string]struct{}
	spans     []*span
	hours     []hourBucket
	lastEvict time.Time
}

// New returns an empty aggregator.
func New(l log.Logger) *Aggregator {
	return &Aggregator{
		l:        l,
		trackers: make(map[string]*trackerState),
	}
}

// trackedSpans returns the rolling durations maintained per tracker: each
// exported timeframe, its doubled span for trend growth, and the long
// sentiment comparison window.
func trackedSpans() []*span {
	seen := map[time.Duration]bool{}
	var spans []*span
	add := func(d time.Duration) {
		if !seen[d] {
			seen[d] = true
			spans = append(spans, &span{d: d})
		}
	}
	for _, tf := range model.Timeframes {
		add(tf.Duration())
		add(2 * tf.Duration())
	}
	add(longWindow)
	sort.Slice(spans, func(i, j int) bool { return spans[i].d < spans[j].d })
	return spans
}

func (a *Aggregator) state(trackerID string) *trackerState {
	a.mu.RLock()
	st, ok := a.trackers[trackerID]
	a.mu.RUnlock()
	if ok {
		return st
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if st, ok = a.trackers[trackerID]; ok {
		return st
	}
	st = &trackerState{
		ids:   make(map[string]struct{}),
		spans: trackedSpans(),
	}
	a.trackers[trackerID] = st
	return st
}

// Record folds one mention into the tracker's windows. Recording the same
// mention ID twice within the retained horizon is a no-op, which keeps
// the operation idempotent under redelivery.
func (a *Aggregator) Record(m model.Mention) {
	st := a.state(m.TrackerID)

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, dup := st.ids[m.ID]; dup {
		return
	}

	// Points older than the longest retained span can never enter a
	// window again; drop them instead of corrupting the cursors.
	if !st.lastEvict.IsZero() && m.PostedAt.Before(st.lastEvict.Add(-longWindow)) {
		a.l.Debugf(context.Background(), "internal.metrics.Record: dropping stale mention %s for tracker %s", m.ID, m.TrackerID)
		return
	}

	p := point{
		id:        m.ID,
		at:        m.PostedAt,
		sentiment: m.SentimentValue(),
		text:      strings.ToLower(m.Title + " " + m.Snippet),
		country:   m.Country,
		reach:     m.Reach(),
	}

	// The per-tracker queue delivers mentions in order, so this is an
	// append in the common case; mild disorder falls back to a short
	// walk from the tail.
	pos := len(st.points)
	for pos > 0 && st.points[pos-1].at.After(p.at) {
		pos--
	}
	if pos == len(st.points) {
		st.points = append(st.points, p)
	} else {
		st.points = append(st.points, point{})
		copy(st.points[pos+1:], st.points[pos:])
		st.points[pos] = p
	}
	st.ids[m.ID] = struct{}{}

	for _, sp := range st.spans {
		if pos < sp.start {
			// Inserted before the window region; shift the cursor.
			sp.start++
			continue
		}
		sp.sum += p.sentiment
	}

	st.recordHour(p.at)
}

// Evict advances the tracker's windows to now, expiring points that fell
// out. A now earlier than the last eviction is tolerated as a no-op; the
// aggregator never un-evicts.
func (a *Aggregator) Evict(trackerID string, now time.Time) {
	st := a.state(trackerID)

	st.mu.Lock()
	defer st.mu.Unlock()

	if now.Before(st.lastEvict) {
		return
	}
	st.lastEvict = now

	for _, sp := range st.spans {
		cutoff := now.Add(-sp.d)
		for sp.start < len(st.points) && st.points[sp.start].at.Before(cutoff) {
			sp.sum -= st.points[sp.start].sentiment
			sp.start++
		}
	}

	st.pruneHours(now)
	st.compact()
}

// Snapshot returns the tracker's current window metrics as of its last
// eviction. Unknown trackers yield an empty snapshot (zero counts), per
// the rule evaluator's missing-metrics contract.
func (a *Aggregator) Snapshot(trackerID string) Snapshot {
	st := a.state(trackerID)

	st.mu.Lock()
	defer st.mu.Unlock()

	snap := Snapshot{
		TrackerID:  trackerID,
		At:         st.lastEvict,
		Windows:    make(map[model.Timeframe]Window, len(model.Timeframes)),
		PrevCounts: make(map[model.Timeframe]int, len(model.Timeframes)),
	}

	for _, tf := range model.Timeframes {
		cur := st.span(tf.Duration())
		wide := st.span(2 * tf.Duration())
		snap.Windows[tf] = Window{
			Count:         cur.count(len(st.points)),
			MeanSentiment: cur.mean(len(st.points)),
		}
		snap.PrevCounts[tf] = wide.count(len(st.points)) - cur.count(len(st.points))
	}

	long := st.span(longWindow)
	snap.LongMeanSentiment = long.mean(len(st.points))
	snap.Baseline = st.baseline()

	return snap
}

// KeywordCounts returns how many mentions containing the keyword fall in
// the current window and in the preceding window of equal length. The
// scan is bounded by the doubled timeframe, not by history.
func (a *Aggregator) KeywordCounts(trackerID, keyword string, tf model.Timeframe) (current, previous int) {
	st := a.state(trackerID)

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.lastEvict.IsZero() {
		return 0, 0
	}

	kw := strings.ToLower(keyword)
	midCutoff := st.lastEvict.Add(-tf.Duration())
	wide := st.span(2 * tf.Duration())

	for i := wide.start; i < len(st.points); i++ {
		p := st.points[i]
		if !strings.Contains(p.text, kw) {
			continue
		}
		if p.at.Before(midCutoff) {
			previous++
		} else {
			current++
		}
	}
	return current, previous
}

// Observe summarizes the mention stream within the given duration for
// the crisis scorer: distinct regions, peak author reach, and hits on
// the tracker's negative keywords.
func (a *Aggregator) Observe(trackerID string, within time.Duration, negativeKeywords []string) Observation {
	st := a.state(trackerID)

	st.mu.Lock()
	defer st.mu.Unlock()

	var obs Observation
	if st.lastEvict.IsZero() {
		return obs
	}

	lowered := make([]string, len(negativeKeywords))
	for i, kw := range negativeKeywords {
		lowered[i] = strings.ToLower(kw)
	}

	cutoff := st.lastEvict.Add(-within)
	regions := map[string]struct{}{}
	for i := len(st.points) - 1; i >= 0; i-- {
		p := st.points[i]
		if p.at.Before(cutoff) {
			break
		}
		if p.country != "" {
			regions[p.country] = struct{}{}
		}
		if p.reach > obs.MaxReach {
			obs.MaxReach = p.reach
		}
		for _, kw := range lowered {
			if kw != "" && strings.Contains(p.text, kw) {
				obs.NegativeKeywordHits++
				break
			}
		}
	}
	obs.Regions = len(regions)
	return obs
}

// ShareOfVoice returns the tracker's mention count in the timeframe as a
// percentage of the total across all trackers. Zero when nothing was
// recorded anywhere.
func (a *Aggregator) ShareOfVoice(trackerID string, tf model.Timeframe) float64 {
	a.mu.RLock()
	ids := make([]string, 0, len(a.trackers))
	for id := range a.trackers {
		ids = append(ids, id)
	}
	a.mu.RUnlock()

	var own, total int
	for _, id := range ids {
		st := a.state(id)
		st.mu.Lock()
		c := st.span(tf.Duration()).count(len(st.points))
		st.mu.Unlock()
		total += c
		if id == trackerID {
			own = c
		}
	}
	if total == 0 {
		return 0
	}
	return float64(own) / float64(total) * 100
}

func (st *trackerState) span(d time.Duration) *span {
	for _, sp := range st.spans {
		if sp.d == d {
			return sp
		}
	}
	// Spans are fixed at construction; a miss is a programming error,
	// answered with an empty window rather than a panic.
	return &span{d: d, start: 0}
}

func (sp *span) count(total int) int {
	if sp.start >= total {
		return 0
	}
	return total - sp.start
}

func (sp *span) mean(total int) float64 {
	c := sp.count(total)
	if c == 0 {
		return 0
	}
	return sp.sum / float64(c)
}

func (st *trackerState) recordHour(at time.Time) {
	if !st.lastEvict.IsZero() && at.Before(st.lastEvict.Add(-baselineHorizon)) {
		return
	}
	hour := at.Truncate(time.Hour)
	for i := len(st.hours) - 1; i >= 0; i-- {
		if st.hours[i].start.Equal(hour) {
			st.hours[i].count++
			return
		}
		if st.hours[i].start.Before(hour) {
			break
		}
	}
	st.hours = append(st.hours, hourBucket{start: hour, count: 1})
	// Keep buckets ordered under mild disorder.
	for i := len(st.hours) - 1; i > 0 && st.hours[i].start.Before(st.hours[i-1].start); i-- {
		st.hours[i], st.hours[i-1] = st.hours[i-1], st.hours[i]
	}
}

func (st *trackerState) pruneHours(now time.Time) {
	cutoff := now.Add(-baselineHorizon)
	keep := 0
	for keep < len(st.hours) && st.hours[keep].start.Before(cutoff) {
		keep++
	}
	if keep > 0 {
		st.hours = append(st.hours[:0], st.hours[keep:]...)
	}
}

// baseline averages the counts of the same hour of day over the trailing
// seven days, treating hours with no bucket as zero. The current,
// still-filling hour is excluded.
func (st *trackerState) baseline() float64 {
	if st.lastEvict.IsZero() {
		return 0
	}
	currentHour := st.lastEvict.Truncate(time.Hour)
	sum := 0
	for _, b := range st.hours {
		if b.start.Hour() == currentHour.Hour() && b.start.Before(currentHour) {
			sum += b.count
		}
	}
	return float64(sum) / 7
}

// compact drops fully evicted points from the head of the buffer once
// enough have accumulated, rebasing every span cursor.
func (st *trackerState) compact() {
	min := len(st.points)
	for _, sp := range st.spans {
		if sp.start < min {
			min = sp.start
		}
	}
	if min < pruneThreshold {
		return
	}
	for i := 0; i < min; i++ {
		delete(st.ids, st.points[i].id)
	}
	st.points = append(st.points[:0], st.points[min:]...)
	for _, sp := range st.spans {
		sp.start -= min
	}
}
