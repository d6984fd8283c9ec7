package metrics

import (
	"time"

	"monitoring-srv/internal/model"
)

// Window is the rolling count and running sentiment mean for one
// timeframe of one tracker.
type Window struct {
	Count         int     `json:"count"`
	MeanSentiment float64 `json:"mean_sentiment"`
}

// Snapshot is the read-only view of a tracker's window metrics handed to
// the rule evaluator, the crisis scorer and the API.
type Snapshot struct {
	TrackerID string    `json:"tracker_id"`
	At        time.Time `json:"at"`

	Windows map[model.Timeframe]Window `json:"windows"`

	// PrevCounts holds the mention count in the window immediately
	// preceding each timeframe ([at-2T, at-T)), used for trend growth.
	PrevCounts map[model.Timeframe]int `json:"prev_counts"`

	// Baseline is the mean mention count of the same hour of day over the
	// trailing seven days, used by spike detection.
	Baseline float64 `json:"baseline"`

	// LongMeanSentiment is the sentiment mean over the long comparison
	// window, used by sentiment-drop detection.
	LongMeanSentiment float64 `json:"long_mean_sentiment"`
}

// Observation summarizes the recent mention stream of a tracker for the
// crisis scorer's auxiliary triggers.
type Observation struct {
	Regions             int
	MaxReach            int
	NegativeKeywordHits int
}

// point is one recorded mention reduced to what the windows need.
type point struct {
	id        string
	at        time.Time
	sentiment float64
	text      string
	country   string
	reach     int
}

// span is one tracked rolling duration over the shared point buffer.
// start indexes the first point still inside the window; the count is
// len(points)-start and sum tracks the sentiment total incrementally, so
// record and evict stay O(1) amortized.
type span struct {
	d     time.Duration
	start int
	sum   float64
}

// hourBucket is one hour of mention counts for the spike baseline.
type hourBucket struct {
	start time.Time // truncated to the hour
	count int
}
