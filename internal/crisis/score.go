package crisis

import (
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
)

// Trigger weights. They sum to 100 so a full trigger set maxes the score.
const (
	weightVolumeSpike      = 30
	weightSentimentDrop    = 25
	weightInfluencer       = 20
	weightNegativeKeywords = 15
	weightGeographicSpread = 10
)

// Score folds the trigger set into the 0..100 crisis score.
func Score(t model.TriggerSet) int {
	score := 0
	if t.VolumeSpike {
		score += weightVolumeSpike
	}
	if t.SentimentDrop {
		score += weightSentimentDrop
	}
	if t.InfluencerAmplification {
		score += weightInfluencer
	}
	if t.NegativeKeywords {
		score += weightNegativeKeywords
	}
	if t.GeographicSpread {
		score += weightGeographicSpread
	}
	return score
}

// DeriveTriggers reads the trigger signals off the window snapshot and
// the rolling observation.
func DeriveTriggers(cfg Config, snap metrics.Snapshot, obs metrics.Observation) model.TriggerSet {
	w1h := snap.Windows[model.Timeframe1h]

	var t model.TriggerSet
	if snap.Baseline > 0 {
		t.VolumeSpike = float64(w1h.Count) > cfg.SpikeFactor*snap.Baseline
	}
	if w1h.Count > 0 {
		t.SentimentDrop = w1h.MeanSentiment-snap.LongMeanSentiment < cfg.DropDelta
	}
	t.InfluencerAmplification = obs.MaxReach > cfg.HighReach
	t.NegativeKeywords = obs.NegativeKeywordHits >= cfg.MinNegativeHits
	t.GeographicSpread = obs.Regions >= cfg.MinRegions
	return t
}

// FreezeMetrics captures the snapshot numbers onto the event record.
func FreezeMetrics(snap metrics.Snapshot, obs metrics.Observation) model.CrisisMetrics {
	return model.CrisisMetrics{
		Mentions1h:     snap.Windows[model.Timeframe1h].Count,
		Mentions24h:    snap.Windows[model.Timeframe24h].Count,
		SentimentScore: snap.Windows[model.Timeframe1h].MeanSentiment,
		ReachEstimate:  obs.MaxReach,
		Regions:        obs.Regions,
	}
}
