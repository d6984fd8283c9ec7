package model

import "time"

// Engagement is the interaction footprint of a content item at harvest time.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// Sum returns the total interaction count, used as a reach proxy when the
// author's follower count is unknown.
func (e Engagement) Sum() int {
	return e.Likes + e.Comments + e.Shares
}

// ContentItem is one harvested piece of content as delivered by the ingest
// collaborators. The sentiment label and score are inputs, not computed here.
type ContentItem struct {
	ID         string     `json:"id"`
	SourceType string     `json:"source_type"` // news, social, forum, video
	Domain     string     `json:"domain"`
	URL        string     `json:"url"`
	Author     string     `json:"author"`
	Title      string     `json:"title"`
	Snippet    string     `json:"content_snippet"`
	PostedAt   time.Time  `json:"posted_at"`
	Language   string     `json:"language"`
	Country    string     `json:"country"`
	Sentiment  Sentiment  `json:"sentiment"`
	Engagement Engagement `json:"engagement"`

	// SentimentScore is an optional continuous score in [-1, 1] from the
	// upstream classifier. When zero the discrete label is used instead.
	SentimentScore float64 `json:"sentiment_score,omitempty"`

	// AuthorReach is the author's follower count when the source exposes it.
	AuthorReach int `json:"author_reach,omitempty"`
}

// Mention is a content item matched to one tracker. Immutable once created.
type Mention struct {
	ID         string     `json:"id"`
	TrackerID  string     `json:"tracker_id"`
	SourceType string     `json:"source_type"`
	Domain     string     `json:"domain"`
	URL        string     `json:"url"`
	Author     string     `json:"author"`
	Title      string     `json:"title"`
	Snippet    string     `json:"content_snippet"`
	PostedAt   time.Time  `json:"posted_at"`
	Language   string     `json:"language"`
	Country    string     `json:"country"`
	Sentiment  Sentiment  `json:"sentiment"`
	Engagement Engagement `json:"engagement"`

	SentimentScore float64 `json:"sentiment_score,omitempty"`
	AuthorReach    int     `json:"author_reach,omitempty"`
}

// NewMention builds the immutable mention record for an item that matched
// the given tracker.
func NewMention(id string, trackerID string, item ContentItem) Mention {
	return Mention{
		ID:             id,
		TrackerID:      trackerID,
		SourceType:     item.SourceType,
		Domain:         item.Domain,
		URL:            item.URL,
		Author:         item.Author,
		Title:          item.Title,
		Snippet:        item.Snippet,
		PostedAt:       item.PostedAt,
		Language:       item.Language,
		Country:        item.Country,
		Sentiment:      item.Sentiment,
		Engagement:     item.Engagement,
		SentimentScore: item.SentimentScore,
		AuthorReach:    item.AuthorReach,
	}
}

// SentimentValue returns the numeric sentiment used by window metrics:
// the continuous score when present, otherwise the mapped label.
func (m Mention) SentimentValue() float64 {
	if m.SentimentScore != 0 {
		return m.SentimentScore
	}
	return m.Sentiment.Score()
}

// Reach returns the author reach proxy: follower count when known,
// engagement sum otherwise.
func (m Mention) Reach() int {
	if m.AuthorReach > 0 {
		return m.AuthorReach
	}
	return m.Engagement.Sum()
}
