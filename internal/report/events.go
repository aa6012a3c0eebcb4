package report

import (
	"context"
	"time"
)

// Lifecycle event types published to the event stream.
const (
	EventReportIssued     = "report.issued"
	EventReportDownloaded = "report.downloaded"
	EventReportRevoked    = "report.revoked"
)

// ReportEvent is one report lifecycle transition.
type ReportEvent struct {
	Type     string    `json:"type"`
	ExportID string    `json:"export_id"`
	UserID   string    `json:"user_id,omitempty"`
	At       time.Time `json:"at"`
}

// EventPublisher emits lifecycle events. Implementations are fire-and-forget:
// publishing never fails the operation that triggered it.
//
//go:generate mockery --name EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event ReportEvent)
}
