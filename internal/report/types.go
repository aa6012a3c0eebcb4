package report

import "time"

type EmailReportLinkInput struct {
	RangeStart     time.Time
	RangeEnd       time.Time
	RecipientEmail string
}

type EmailReportLinkOutput struct {
	ExpiresAt time.Time
	// DevLink carries the raw tokenized link. Only populated when the
	// dev_return_link flag is on; the link is otherwise delivered by email only.
	DevLink string
}

type ResolveReportLinkInput struct {
	Token string
}

type ResolveReportLinkOutput struct {
	SignedURL string
}

type RevokeReportLinkInput struct {
	ReportID string
}

type ListReportExportsInput struct {
	Limit int
}

// ReportExportOutput is the sanitized ledger row exposed to the owner.
// Token hash and storage coordinates are never included.
type ReportExportOutput struct {
	ID             string
	RangeStart     time.Time
	RangeEnd       time.Time
	RecipientEmail string
	Status         string
	SentAt         time.Time
	ExpiresAt      time.Time
	DownloadedAt   *time.Time
	RevokedAt      *time.Time
}
