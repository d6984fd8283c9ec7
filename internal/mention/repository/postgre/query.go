package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"monitoring-srv/internal/mention/repository"
	"monitoring-srv/internal/model"
)

const mentionColumns = `id, tracker_id, source_type, domain, url, author, title,
	content_snippet, posted_at, language, country, sentiment, sentiment_score,
	author_reach, likes, comments, shares`

// buildWhere renders the filter as a WHERE clause with positional args.
func buildWhere(f repository.Filter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.TrackerID != "" {
		conds = append(conds, "tracker_id = "+arg(f.TrackerID))
	}
	if len(f.SourceTypes) > 0 {
		conds = append(conds, "source_type = ANY("+arg(pq.Array(f.SourceTypes))+")")
	}
	if f.Sentiment != "" && f.Sentiment != model.SentimentAll {
		conds = append(conds, "sentiment = "+arg(string(f.Sentiment)))
	}
	if f.Language != "" {
		conds = append(conds, "language = "+arg(f.Language))
	}
	if f.Search != "" {
		p := arg("%" + strings.ToLower(f.Search) + "%")
		conds = append(conds, "(lower(title) LIKE "+p+" OR lower(content_snippet) LIKE "+p+")")
	}
	if !f.From.IsZero() {
		conds = append(conds, "posted_at >= "+arg(f.From))
	}
	if !f.To.IsZero() {
		conds = append(conds, "posted_at <= "+arg(f.To))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
