package repository

import (
	"context"

	"lungtracker-srv/internal/model"
)

//go:generate mockery --name ReportExportRepository
type ReportExportRepository interface {
	CreateExport(ctx context.Context, opts CreateExportOptions) (*model.ReportExport, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.ReportExport, error)
	MarkDownloaded(ctx context.Context, opts MarkDownloadedOptions) error
	MarkRevoked(ctx context.Context, opts MarkRevokedOptions) error
	ListByOwner(ctx context.Context, opts ListByOwnerOptions) ([]*model.ReportExport, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportExportRepository
}
