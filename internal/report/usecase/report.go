package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	healthrepo "lungtracker-srv/internal/healthdata/repository"
	"lungtracker-srv/internal/model"
	"lungtracker-srv/internal/report"
	"lungtracker-srv/internal/report/repository"
	"lungtracker-srv/pkg/email"
	"lungtracker-srv/pkg/minio"
	"lungtracker-srv/pkg/paginator"
	"lungtracker-srv/pkg/render"
	"lungtracker-srv/pkg/resend"
	"lungtracker-srv/pkg/token"
	"lungtracker-srv/pkg/util"
)

// EmailReportLink issues a new report export for the caller's data window.
// Flow: validate → fetch records → render PDF → upload artifact → insert
// ledger row → email tokenized link. The raw token exists only in the email
// (and in the response when dev_return_link is on); the ledger keeps its hash.
func (uc *implUseCase) EmailReportLink(ctx context.Context, sc model.Scope, input report.EmailReportLinkInput) (report.EmailReportLinkOutput, error) {
	if input.RangeStart.IsZero() || input.RangeEnd.IsZero() {
		return report.EmailReportLinkOutput{}, report.ErrRangeRequired
	}
	if input.RangeEnd.Before(input.RangeStart) {
		return report.EmailReportLinkOutput{}, report.ErrInvalidRange
	}
	if err := util.IsEmail(input.RecipientEmail); err != nil {
		return report.EmailReportLinkOutput{}, report.ErrInvalidRecipient
	}

	data, err := uc.healthRepo.FetchReportData(ctx, healthrepo.FetchReportDataOptions{
		UserID:     sc.UserID,
		RangeStart: input.RangeStart,
		RangeEnd:   input.RangeEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EmailReportLink: Failed to fetch health records: %v", err)
		return report.EmailReportLinkOutput{}, fmt.Errorf("failed to fetch health records: %w", err)
	}

	html, err := render.RenderReportHTML(render.ReportInput{
		RangeStart: input.RangeStart,
		RangeEnd:   input.RangeEnd,
		Data:       data,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EmailReportLink: Failed to render report: %v", err)
		return report.EmailReportLinkOutput{}, fmt.Errorf("failed to render report: %w", err)
	}

	pdf, err := uc.pdf.HTMLToPDF(ctx, html)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EmailReportLink: Failed to convert report to pdf: %v", err)
		return report.EmailReportLinkOutput{}, fmt.Errorf("failed to generate report pdf: %w", err)
	}

	reportID := uuid.New().String()
	rawToken := token.Generate(token.DefaultByteLength)
	tokenHash := token.HashSHA256Hex(rawToken)
	objectName := fmt.Sprintf("%s/%s.pdf", sc.UserID, reportID)

	// Upload before the ledger insert. An upload failure aborts the whole
	// operation; an insert failure after upload leaves an orphan artifact.
	if _, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.Bucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(pdf),
		Size:        int64(len(pdf)),
		ContentType: "application/pdf",
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.EmailReportLink: Failed to upload report artifact: %v", err)
		return report.EmailReportLinkOutput{}, fmt.Errorf("failed to store report artifact: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(uc.config.LinkTTL)
	export, err := uc.repo.CreateExport(ctx, repository.CreateExportOptions{
		ID:             reportID,
		UserID:         sc.UserID,
		RangeStart:     input.RangeStart,
		RangeEnd:       input.RangeEnd,
		StorageBucket:  uc.config.Bucket,
		StoragePath:    objectName,
		RecipientEmail: input.RecipientEmail,
		TokenHash:      tokenHash,
		ExpiresAt:      expiresAt,
		SentAt:         now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.EmailReportLink: Failed to create export record: %v", err)
		return report.EmailReportLinkOutput{}, fmt.Errorf("failed to record report export: %w", err)
	}

	link := uc.buildLink(rawToken)
	if err := uc.sendReportLinkEmail(ctx, input.RecipientEmail, link, expiresAt); err != nil {
		// The export row exists and the link is live; delivery failure is
		// reported but does not fail the operation.
		uc.l.Warnf(ctx, "report.usecase.EmailReportLink: Failed to email report link for export %s: %v", export.ID, err)
	}

	uc.publishEvent(ctx, report.EventReportIssued, export.ID, sc.UserID)

	output := report.EmailReportLinkOutput{ExpiresAt: expiresAt}
	if uc.config.DevReturnLink {
		output.DevLink = link
	}
	return output, nil
}

// ResolveReportLink turns a raw access token into a short-lived signed URL.
// Revocation wins over expiry when both hold. Every successful resolve
// refreshes the download marker.
func (uc *implUseCase) ResolveReportLink(ctx context.Context, input report.ResolveReportLinkInput) (report.ResolveReportLinkOutput, error) {
	if strings.TrimSpace(input.Token) == "" {
		return report.ResolveReportLinkOutput{}, report.ErrTokenRequired
	}

	export, err := uc.repo.FindByTokenHash(ctx, token.HashSHA256Hex(input.Token))
	if errors.Is(err, repository.ErrExportNotFound) {
		return report.ResolveReportLinkOutput{}, report.ErrLinkNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ResolveReportLink: Failed to look up token: %v", err)
		return report.ResolveReportLinkOutput{}, report.ErrResolveFailed
	}

	if export.Revoked() {
		return report.ResolveReportLinkOutput{}, report.ErrLinkRevoked
	}
	if export.Expired(time.Now()) {
		return report.ResolveReportLinkOutput{}, report.ErrLinkExpired
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: export.StorageBucket,
		ObjectName: export.StoragePath,
		Method:     minio.MethodGET,
		Expiry:     uc.config.SignedURLTTL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ResolveReportLink: Failed to presign artifact URL: %v", err)
		return report.ResolveReportLinkOutput{}, report.ErrResolveFailed
	}

	if err := uc.repo.MarkDownloaded(ctx, repository.MarkDownloadedOptions{
		ID:           export.ID,
		DownloadedAt: time.Now(),
	}); err != nil {
		// The download is already authorized; losing the marker is not worth
		// failing the request over.
		uc.l.Warnf(ctx, "report.usecase.ResolveReportLink: Failed to mark export %s downloaded: %v", export.ID, err)
	}

	uc.publishEvent(ctx, report.EventReportDownloaded, export.ID, export.UserID)

	return report.ResolveReportLinkOutput{SignedURL: presigned.URL}, nil
}

// RevokeReportLink permanently closes a link. Ownership-scoped: revoking
// someone else's export reports not found.
func (uc *implUseCase) RevokeReportLink(ctx context.Context, sc model.Scope, input report.RevokeReportLinkInput) error {
	if input.ReportID == "" {
		return report.ErrExportNotFound
	}

	err := uc.repo.MarkRevoked(ctx, repository.MarkRevokedOptions{
		ID:        input.ReportID,
		UserID:    sc.UserID,
		RevokedAt: time.Now(),
	})
	if errors.Is(err, repository.ErrExportNotFound) {
		return report.ErrExportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.RevokeReportLink: Failed to revoke export %s: %v", input.ReportID, err)
		return fmt.Errorf("failed to revoke report link: %w", err)
	}

	uc.publishEvent(ctx, report.EventReportRevoked, input.ReportID, sc.UserID)
	return nil
}

// ListReportExports returns the caller's export history, most recent first.
func (uc *implUseCase) ListReportExports(ctx context.Context, sc model.Scope, input report.ListReportExportsInput) ([]report.ReportExportOutput, error) {
	limit := paginator.ClampLimit(input.Limit)

	exports, err := uc.repo.ListByOwner(ctx, repository.ListByOwnerOptions{
		UserID: sc.UserID,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReportExports: Failed to list exports: %v", err)
		return nil, report.ErrListFailed
	}

	outputs := make([]report.ReportExportOutput, 0, len(exports))
	for _, export := range exports {
		outputs = append(outputs, buildExportOutput(export))
	}
	return outputs, nil
}

// ----------- Private helpers -----------

func (uc *implUseCase) sendReportLinkEmail(ctx context.Context, recipient, link string, expiresAt time.Time) error {
	msg, err := email.NewEmail(email.EmailMeta{
		Recipient:    recipient,
		TemplateType: email.ReportLinkTemplate,
	}, email.ReportLink{
		Link:      link,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return uc.mailer.Send(ctx, resend.SendRequest{
		To:      []string{msg.Recipient},
		Subject: msg.Subject,
		HTML:    msg.Body,
	})
}
