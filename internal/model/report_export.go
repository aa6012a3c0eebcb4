package model

import "time"

// Report export status values. Status is a redundant cache of the timestamp
// fields and is always written in the same statement as the timestamp that
// drives it.
const (
	ExportStatusSent       = "sent"
	ExportStatusDownloaded = "downloaded"
	ExportStatusRevoked    = "revoked"
)

// ReportExport is one generated PDF report plus its link metadata. The raw
// access token is never stored; only its SHA-256 hash.
type ReportExport struct {
	ID     string
	UserID string

	// Data window the report covers.
	RangeStart time.Time
	RangeEnd   time.Time

	// Artifact location.
	StorageBucket string
	StoragePath   string

	RecipientEmail string
	TokenHash      string

	ExpiresAt    time.Time
	RevokedAt    *time.Time
	DownloadedAt *time.Time

	Status string
	SentAt time.Time
}

// Closed reports whether the link no longer serves downloads.
func (e *ReportExport) Closed(now time.Time) bool {
	return e.Revoked() || e.Expired(now)
}

// Revoked reports whether the owner revoked the link. Terminal.
func (e *ReportExport) Revoked() bool {
	return e.RevokedAt != nil
}

// Expired reports whether the link passed its expiry at the given instant.
func (e *ReportExport) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
