package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/friendsofgo/errors"

	"monitoring-srv/internal/mention/repository"
	"monitoring-srv/internal/model"
	"monitoring-srv/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Mention, error) {
	m := opts.Mention
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mentions (`+mentionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO NOTHING`,
		m.ID, m.TrackerID, m.SourceType, m.Domain, m.URL, m.Author, m.Title,
		m.Snippet, m.PostedAt, m.Language, m.Country, string(m.Sentiment), m.SentimentScore,
		m.AuthorReach, m.Engagement.Likes, m.Engagement.Comments, m.Engagement.Shares,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Create: %v", err)
		return model.Mention{}, errors.Wrap(err, "insert mention")
	}

	return m, nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Mention, paginator.Paginator, error) {
	opts.PaginateQuery.Adjust()
	where, args := buildWhere(opts.Filter)

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM mentions"+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count mentions")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM mentions%s ORDER BY posted_at DESC LIMIT %d OFFSET %d",
		mentionColumns, where, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset(),
	)
	mentions, err := r.query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.Get: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return mentions, paginator.Paginator{
		Total:       total,
		Count:       int64(len(mentions)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Mention, error) {
	where, args := buildWhere(opts.Filter)

	query := fmt.Sprintf("SELECT %s FROM mentions%s ORDER BY posted_at ASC", mentionColumns, where)
	mentions, err := r.query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.mention.repository.postgres.List: %v", err)
		return nil, err
	}
	return mentions, nil
}

func (r *implRepository) query(ctx context.Context, query string, args ...any) ([]model.Mention, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query mentions")
	}
	defer rows.Close()

	var mentions []model.Mention
	for rows.Next() {
		m, err := scanMention(rows)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate mentions")
	}
	return mentions, nil
}

func scanMention(rows *sql.Rows) (model.Mention, error) {
	var m model.Mention
	var sentiment string
	err := rows.Scan(
		&m.ID, &m.TrackerID, &m.SourceType, &m.Domain, &m.URL, &m.Author, &m.Title,
		&m.Snippet, &m.PostedAt, &m.Language, &m.Country, &sentiment, &m.SentimentScore,
		&m.AuthorReach, &m.Engagement.Likes, &m.Engagement.Comments, &m.Engagement.Shares,
	)
	if err != nil {
		return model.Mention{}, errors.Wrap(err, "scan mention")
	}
	m.Sentiment = model.Sentiment(sentiment)
	return m, nil
}
