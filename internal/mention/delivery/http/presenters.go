package http

import (
	"strings"
	"time"

	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

// --- Request DTOs ---

type listMentionsReq struct {
	TrackerID   string `form:"tracker_id"`
	SourceTypes string `form:"source_types"` // comma separated
	Sentiment   string `form:"sentiment"`
	Language    string `form:"language"`
	Search      string `form:"search"`
	From        string `form:"from"` // RFC3339
	To          string `form:"to"`   // RFC3339

	Page  int   `form:"page"`
	Limit int64 `form:"limit"`
}

func (r listMentionsReq) toFilter() (mention.Filter, error) {
	f := mention.Filter{
		TrackerID: r.TrackerID,
		Sentiment: model.Sentiment(r.Sentiment),
		Language:  r.Language,
		Search:    r.Search,
	}
	if r.SourceTypes != "" {
		for _, st := range strings.Split(r.SourceTypes, ",") {
			if st = strings.TrimSpace(st); st != "" {
				f.SourceTypes = append(f.SourceTypes, st)
			}
		}
	}
	if r.From != "" {
		from, err := time.Parse(time.RFC3339, r.From)
		if err != nil {
			return mention.Filter{}, errBadTimeRange
		}
		f.From = from
	}
	if r.To != "" {
		to, err := time.Parse(time.RFC3339, r.To)
		if err != nil {
			return mention.Filter{}, errBadTimeRange
		}
		f.To = to
	}
	return f, nil
}

func (r listMentionsReq) toInput() (mention.GetInput, error) {
	f, err := r.toFilter()
	if err != nil {
		return mention.GetInput{}, err
	}
	return mention.GetInput{
		Filter:        f,
		PaginateQuery: paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
	}, nil
}

type exportMentionsReq struct {
	listMentionsReq
	Format string `form:"format"`
}

func (r exportMentionsReq) toInput() (mention.ExportInput, error) {
	f, err := r.toFilter()
	if err != nil {
		return mention.ExportInput{}, err
	}
	return mention.ExportInput{Filter: f}, nil
}

// --- Response DTOs ---

type listMentionsResp struct {
	Mentions  []model.Mention             `json:"mentions"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}
