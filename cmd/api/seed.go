package main

import (
	"context"
	"time"

	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/metrics"
	"monitoring-srv/internal/model"
	"monitoring-srv/internal/rule"
	"monitoring-srv/internal/tracker"
	"monitoring-srv/pkg/log"
	postgresPkg "monitoring-srv/pkg/postgre"
)

// seedDemoData loads one demo tracker, one alert rule and a handful of
// mentions so a fresh instance has something to show.
func seedDemoData(
	ctx context.Context,
	l log.Logger,
	trackerUC tracker.UseCase,
	ruleUC rule.UseCase,
	mentionUC mention.UseCase,
	agg *metrics.Aggregator,
) error {
	sc := model.Scope{OrgID: "demo"}

	tr, err := trackerUC.Create(ctx, sc, tracker.CreateInput{
		Name: "Contoso Brand",
		Conditions: []model.Condition{
			{ID: "c1", Kind: model.KindKeyword, Joiner: model.JoinerAnd, Value: "Contoso"},
			{ID: "c2", Kind: model.KindKeyword, Joiner: model.JoinerOr, Value: "Fabrikam"},
			{ID: "c3", Kind: model.KindExclude, Joiner: model.JoinerNot, Value: "lowongan"},
		},
		NegativeKeywords: []string{"recall", "lawsuit", "boycott"},
	})
	if err != nil {
		return err
	}

	if _, err := ruleUC.Create(ctx, sc, rule.CreateInput{
		Name:      "Volume spike 1h",
		TrackerID: tr.ID,
		Condition: model.ConditionVolumeSpike,
		Threshold: 100,
		Timeframe: model.Timeframe1h,
		Severity:  model.SeverityHigh,
		Channels:  []model.Channel{model.ChannelEmail, model.ChannelSlack},
	}); err != nil {
		return err
	}

	now := time.Now()
	items := []model.ContentItem{
		{
			SourceType: "news",
			Domain:     "news.example.com",
			URL:        "https://news.example.com/contoso-launch",
			Author:     "newsroom",
			Title:      "Contoso launches its new flagship product",
			Snippet:    "Contoso unveiled its latest product line today.",
			PostedAt:   now.Add(-30 * time.Minute),
			Language:   "en",
			Country:    "US",
			Sentiment:  model.SentimentPositive,
		},
		{
			SourceType: "social",
			Domain:     "social.example.com",
			URL:        "https://social.example.com/p/1",
			Author:     "techfan",
			Title:      "Trying out the new Contoso device",
			Snippet:    "First impressions of the Contoso device are mixed.",
			PostedAt:   now.Add(-2 * time.Hour),
			Language:   "en",
			Country:    "GB",
			Sentiment:  model.SentimentNeutral,
			Engagement: model.Engagement{Likes: 42, Comments: 7, Shares: 3},
		},
		{
			SourceType: "forum",
			Domain:     "forum.example.com",
			URL:        "https://forum.example.com/t/99",
			Author:     "poweruser",
			Title:      "Fabrikam vs Contoso comparison thread",
			Snippet:    "Detailed comparison between Fabrikam and Contoso offerings.",
			PostedAt:   now.Add(-5 * time.Hour),
			Language:   "en",
			Country:    "DE",
			Sentiment:  model.SentimentNeutral,
		},
	}

	for _, item := range items {
		m := model.NewMention(postgresPkg.NewUUID(), tr.ID, item)
		if _, err := mentionUC.Append(ctx, m); err != nil {
			return err
		}
		agg.Record(m)
	}
	agg.Evict(tr.ID, now)

	l.Infof(ctx, "Seeded demo tracker %s with %d mentions", tr.ID, len(items))
	return nil
}
