package repository

import "time"

type CreateExportOptions struct {
	ID             string
	UserID         string
	RangeStart     time.Time
	RangeEnd       time.Time
	StorageBucket  string
	StoragePath    string
	RecipientEmail string
	TokenHash      string
	ExpiresAt      time.Time
	SentAt         time.Time
}

type MarkDownloadedOptions struct {
	ID           string
	DownloadedAt time.Time
}

type MarkRevokedOptions struct {
	ID        string
	UserID    string
	RevokedAt time.Time
}

type ListByOwnerOptions struct {
	UserID string
	Limit  int
}
