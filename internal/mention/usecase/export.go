package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"time"

	"monitoring-srv/internal/mention"
	"monitoring-srv/internal/mention/repository"
	"monitoring-srv/internal/model"
)

// exportHeader is the fixed CSV column order consumers depend on.
var exportHeader = []string{
	"id", "source_type", "domain", "url", "author", "title", "posted_at", "language", "sentiment",
}

func (uc *usecase) ExportCSV(ctx context.Context, sc model.Scope, ip mention.ExportInput, w io.Writer) error {
	mentions, err := uc.listForExport(ctx, ip)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.ExportCSV: %v", err)
		return err
	}
	for _, m := range mentions {
		record := []string{
			m.ID,
			m.SourceType,
			m.Domain,
			m.URL,
			m.Author,
			m.Title,
			m.PostedAt.Format(time.RFC3339),
			m.Language,
			string(m.Sentiment),
		}
		if err := cw.Write(record); err != nil {
			uc.l.Errorf(ctx, "internal.mention.usecase.ExportCSV: %v", err)
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.ExportCSV: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) ExportJSON(ctx context.Context, sc model.Scope, ip mention.ExportInput, w io.Writer) error {
	mentions, err := uc.listForExport(ctx, ip)
	if err != nil {
		return err
	}
	if mentions == nil {
		mentions = []model.Mention{}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(mentions); err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.ExportJSON: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) listForExport(ctx context.Context, ip mention.ExportInput) ([]model.Mention, error) {
	if ip.Filter.TrackerID == "" {
		return nil, mention.ErrTrackerRequired
	}

	mentions, err := uc.repo.List(ctx, repository.ListOptions{Filter: toRepoFilter(ip.Filter)})
	if err != nil {
		uc.l.Errorf(ctx, "internal.mention.usecase.listForExport: %v", err)
		return nil, err
	}
	return mentions, nil
}
