package usecase

import (
	"context"

	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/mention/repository"
	"monitoring-srv/internal/model"
)

func (uc *usecase) Append(ctx context.Context, m model.Mention) (model.Mention, error) {
	created, err := uc.repo.Create(ctx, repository.CreateOptions{Mention: m})
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.Append: %v", err)
		return model.Mention{}, err
	}
	return created, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip mention.GetInput) (mention.GetOutput, error) {
	if ip.Filter.Sentiment != "" && ip.Filter.Sentiment != model.SentimentAll && !ip.Filter.Sentiment.Valid() {
		return mention.GetOutput{}, mention.ErrInvalidFilter
	}

	mentions, pag, err := uc.repo.Get(ctx, repository.GetOptions{
		Filter:        toRepoFilter(ip.Filter),
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.Get: %v", err)
		return mention.GetOutput{}, err
	}

	return mention.GetOutput{
		Mentions:  mentions,
		Paginator: pag,
	}, nil
}

func toRepoFilter(f mention.Filter) repository.Filter {
	return repository.Filter{
		TrackerID:   f.TrackerID,
		SourceTypes: f.SourceTypes,
		Sentiment:   f.Sentiment,
		Language:    f.Language,
		Search:      f.Search,
		From:        f.From,
		To:          f.To,
	}
}
