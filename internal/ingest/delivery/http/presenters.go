package http

import (
	"time"

	"monitoring-srv/internal/model"
)

// --- Request DTOs ---

type engagementReq struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

type contentItemReq struct {
	ID             string        `json:"id"`
	SourceType     string        `json:"source_type"`
	Domain         string        `json:"domain"`
	URL            string        `json:"url"`
	Author         string        `json:"author"`
	Title          string        `json:"title"`
	Snippet        string        `json:"content_snippet"`
	PostedAt       time.Time     `json:"posted_at"`
	Language       string        `json:"language"`
	Country        string        `json:"country"`
	Sentiment      string        `json:"sentiment"`
	SentimentScore float64       `json:"sentiment_score"`
	AuthorReach    int           `json:"author_reach"`
	Engagement     engagementReq `json:"engagement"`
}

func (r contentItemReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	if r.PostedAt.IsZero() {
		return errPostedAtRequired
	}
	return nil
}

func (r contentItemReq) toModel() model.ContentItem {
	return model.ContentItem{
		ID:             r.ID,
		SourceType:     r.SourceType,
		Domain:         r.Domain,
		URL:            r.URL,
		Author:         r.Author,
		Title:          r.Title,
		Snippet:        r.Snippet,
		PostedAt:       r.PostedAt,
		Language:       r.Language,
		Country:        r.Country,
		Sentiment:      model.Sentiment(r.Sentiment),
		SentimentScore: r.SentimentScore,
		AuthorReach:    r.AuthorReach,
		Engagement: model.Engagement{
			Likes:    r.Engagement.Likes,
			Comments: r.Engagement.Comments,
			Shares:   r.Engagement.Shares,
		},
	}
}

// --- Response DTOs ---

type ingestResp struct {
	Accepted bool   `json:"accepted"`
	ItemID   string `json:"item_id"`
}
