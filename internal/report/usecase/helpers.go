package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lungtracker-srv/internal/model"
	"lungtracker-srv/internal/report"
)

// buildLink assembles the public tokenized link for a raw token.
func (uc *implUseCase) buildLink(rawToken string) string {
	return fmt.Sprintf("%s/reports/r/%s", strings.TrimRight(uc.config.BaseURL, "/"), rawToken)
}

// publishEvent emits a lifecycle event when an event stream is wired.
func (uc *implUseCase) publishEvent(ctx context.Context, eventType, exportID, userID string) {
	if uc.events == nil {
		return
	}
	uc.events.Publish(ctx, report.ReportEvent{
		Type:     eventType,
		ExportID: exportID,
		UserID:   userID,
		At:       time.Now(),
	})
}

// buildExportOutput converts a ledger row to its sanitized output form.
func buildExportOutput(export *model.ReportExport) report.ReportExportOutput {
	return report.ReportExportOutput{
		ID:             export.ID,
		RangeStart:     export.RangeStart,
		RangeEnd:       export.RangeEnd,
		RecipientEmail: export.RecipientEmail,
		Status:         export.Status,
		SentAt:         export.SentAt,
		ExpiresAt:      export.ExpiresAt,
		DownloadedAt:   export.DownloadedAt,
		RevokedAt:      export.RevokedAt,
	}
}
