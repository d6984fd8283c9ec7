package mention

import (
	"context"
	"io"

	"monitoring-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Append stores one matched mention. Called by the ingest pipeline.
	Append(ctx context.Context, m model.Mention) (model.Mention, error)

	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)

	// ExportCSV writes the matching mentions as CSV, oldest first.
	ExportCSV(ctx context.Context, sc model.Scope, ip ExportInput, w io.Writer) error
	// ExportJSON writes the matching mentions as a JSON array, oldest first.
	ExportJSON(ctx context.Context, sc model.Scope, ip ExportInput, w io.Writer) error
}
