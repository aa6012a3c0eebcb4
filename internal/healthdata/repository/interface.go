package repository

import (
	"context"

	"lungtracker-srv/internal/model"
)

//go:generate mockery --name HealthRecordRepository
type HealthRecordRepository interface {
	FetchReportData(ctx context.Context, opts FetchReportDataOptions) (model.ReportData, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	HealthRecordRepository
}
