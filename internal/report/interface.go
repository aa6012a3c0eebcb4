package report

import (
	"context"

	"lungtracker-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	EmailReportLink(ctx context.Context, sc model.Scope, input EmailReportLinkInput) (EmailReportLinkOutput, error)
	ResolveReportLink(ctx context.Context, input ResolveReportLinkInput) (ResolveReportLinkOutput, error)
	RevokeReportLink(ctx context.Context, sc model.Scope, input RevokeReportLinkInput) error
	ListReportExports(ctx context.Context, sc model.Scope, input ListReportExportsInput) ([]ReportExportOutput, error)
}
