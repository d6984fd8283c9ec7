package inmem

import (
	"context"
	"sort"
	"strings"

	"monitoring-srv/internal/mention/repository"
	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Mention, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mentions = append(r.mentions, opts.Mention)
	return opts.Mention, nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Mention, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()

	matched := r.filtered(opts.Filter)
	// Newest first for the listing API.
	sort.Slice(matched, func(i, j int) bool { return matched[j].PostedAt.Before(matched[i].PostedAt) })

	total := int64(len(matched))
	offset := opts.PaginateQuery.Offset()
	limit := opts.PaginateQuery.Limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := matched[offset:end]

	return page, paginator.Paginator{
		Total:       total,
		Count:       int64(len(page)),
		PerPage:     limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Mention, error) {
	matched := r.filtered(opts.Filter)
	sort.Slice(matched, func(i, j int) bool { return matched[i].PostedAt.Before(matched[j].PostedAt) })
	return matched, nil
}

func (r *implRepository) filtered(f repository.Filter) []model.Mention {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(f.Search)
	var matched []model.Mention
	for _, m := range r.mentions {
		if f.TrackerID != "" && m.TrackerID != f.TrackerID {
			continue
		}
		if len(f.SourceTypes) > 0 && !contains(f.SourceTypes, m.SourceType) {
			continue
		}
		if f.Sentiment != "" && f.Sentiment != model.SentimentAll && m.Sentiment != f.Sentiment {
			continue
		}
		if f.Language != "" && m.Language != f.Language {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Title), search) &&
			!strings.Contains(strings.ToLower(m.Snippet), search) {
			continue
		}
		if !f.From.IsZero() && m.PostedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && m.PostedAt.After(f.To) {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
