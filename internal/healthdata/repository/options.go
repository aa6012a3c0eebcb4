package repository

import "time"

type FetchReportDataOptions struct {
	UserID     string
	RangeStart time.Time
	RangeEnd   time.Time
}
