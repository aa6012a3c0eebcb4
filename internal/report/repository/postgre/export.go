package postgre

import (
	"context"
	"database/sql"

	"lungtracker-srv/internal/model"
	"lungtracker-srv/internal/report/repository"
)

const createExportQuery = `
	INSERT INTO report_exports
		(id, user_id, range_start, range_end,
		 storage_bucket, storage_path, recipient_email, token_hash,
		 expires_at, status, sent_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const findByTokenHashQuery = `
	SELECT id, user_id, range_start, range_end,
	       storage_bucket, storage_path, recipient_email, token_hash,
	       expires_at, revoked_at, downloaded_at, status, sent_at
	FROM report_exports
	WHERE token_hash = $1`

const markDownloadedQuery = `
	UPDATE report_exports
	SET downloaded_at = $2, status = $3
	WHERE id = $1`

const markRevokedQuery = `
	UPDATE report_exports
	SET revoked_at = $3, status = $4
	WHERE id = $1 AND user_id = $2`

const listByOwnerQuery = `
	SELECT id, user_id, range_start, range_end,
	       storage_bucket, storage_path, recipient_email, token_hash,
	       expires_at, revoked_at, downloaded_at, status, sent_at
	FROM report_exports
	WHERE user_id = $1
	ORDER BY sent_at DESC
	LIMIT $2`

// CreateExport - Insert a new report export ledger row with status sent.
func (r *implRepository) CreateExport(ctx context.Context, opts repository.CreateExportOptions) (*model.ReportExport, error) {
	export := &model.ReportExport{
		ID:             opts.ID,
		UserID:         opts.UserID,
		RangeStart:     opts.RangeStart,
		RangeEnd:       opts.RangeEnd,
		StorageBucket:  opts.StorageBucket,
		StoragePath:    opts.StoragePath,
		RecipientEmail: opts.RecipientEmail,
		TokenHash:      opts.TokenHash,
		ExpiresAt:      opts.ExpiresAt,
		Status:         model.ExportStatusSent,
		SentAt:         opts.SentAt,
	}

	_, err := r.db.ExecContext(ctx, createExportQuery,
		export.ID, export.UserID, export.RangeStart, export.RangeEnd,
		export.StorageBucket, export.StoragePath, export.RecipientEmail, export.TokenHash,
		export.ExpiresAt, export.Status, export.SentAt)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateExport: Failed to insert export: %v", err)
		return nil, repository.ErrExportCreateFailed
	}

	return export, nil
}

// FindByTokenHash - Look up the ledger row for a hashed access token.
func (r *implRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.ReportExport, error) {
	row := r.db.QueryRowContext(ctx, findByTokenHashQuery, tokenHash)

	export, err := scanExport(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrExportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FindByTokenHash: Failed to find export: %v", err)
		return nil, err
	}

	return export, nil
}

// MarkDownloaded - Record a successful download. Safe to repeat: every
// successful resolve refreshes downloaded_at.
func (r *implRepository) MarkDownloaded(ctx context.Context, opts repository.MarkDownloadedOptions) error {
	_, err := r.db.ExecContext(ctx, markDownloadedQuery,
		opts.ID, opts.DownloadedAt, model.ExportStatusDownloaded)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.MarkDownloaded: Failed to update export: %v", err)
		return repository.ErrExportUpdateFailed
	}
	return nil
}

// MarkRevoked - Revoke an export owned by the given user. Returns
// ErrExportNotFound when no row matches id and owner.
func (r *implRepository) MarkRevoked(ctx context.Context, opts repository.MarkRevokedOptions) error {
	res, err := r.db.ExecContext(ctx, markRevokedQuery,
		opts.ID, opts.UserID, opts.RevokedAt, model.ExportStatusRevoked)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.MarkRevoked: Failed to update export: %v", err)
		return repository.ErrExportUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.MarkRevoked: Failed to read affected rows: %v", err)
		return repository.ErrExportUpdateFailed
	}
	if affected == 0 {
		return repository.ErrExportNotFound
	}
	return nil
}

// ListByOwner - List a user's exports, most recently sent first.
func (r *implRepository) ListByOwner(ctx context.Context, opts repository.ListByOwnerOptions) ([]*model.ReportExport, error) {
	rows, err := r.db.QueryContext(ctx, listByOwnerQuery, opts.UserID, opts.Limit)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListByOwner: Failed to list exports: %v", err)
		return nil, err
	}
	defer rows.Close()

	var exports []*model.ReportExport
	for rows.Next() {
		export, err := scanExport(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListByOwner: Failed to scan export: %v", err)
			return nil, err
		}
		exports = append(exports, export)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListByOwner: Row iteration failed: %v", err)
		return nil, err
	}

	return exports, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExport(s scanner) (*model.ReportExport, error) {
	var export model.ReportExport
	var revokedAt, downloadedAt sql.NullTime

	if err := s.Scan(
		&export.ID, &export.UserID, &export.RangeStart, &export.RangeEnd,
		&export.StorageBucket, &export.StoragePath, &export.RecipientEmail, &export.TokenHash,
		&export.ExpiresAt, &revokedAt, &downloadedAt, &export.Status, &export.SentAt,
	); err != nil {
		return nil, err
	}

	if revokedAt.Valid {
		t := revokedAt.Time
		export.RevokedAt = &t
	}
	if downloadedAt.Valid {
		t := downloadedAt.Time
		export.DownloadedAt = &t
	}
	return &export, nil
}
