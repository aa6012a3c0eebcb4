package model

import "time"

// VitalsEntry is a single vitals measurement. Numeric fields are pointers:
// entries commonly carry only a subset of the measurements.
type VitalsEntry struct {
	ID               string
	UserID           string
	MeasuredAt       time.Time
	PulseBpm         *float64
	Systolic         *float64
	Diastolic        *float64
	FEV1L            *float64
	FEV1PredictedL   *float64
	FEV1Percent      *float64
	PEFLMin          *float64
	PEFPredictedLMin *float64
	PEFPercent       *float64
	Notes            string
}

// Activity is a logged physical activity.
type Activity struct {
	ID              string
	UserID          string
	PerformedAt     time.Time
	ActivityType    string
	DurationMinutes *float64
	DistanceKm      *float64
	Floors          *float64
	SymptomScore    *float64
	Notes           string
}

// Event is a logged health event.
type Event struct {
	ID                string
	UserID            string
	EventAt           time.Time
	Title             string
	NoticeableTurn    *bool
	MajorHealthUpdate *bool
	Notes             string
}

// ReportData bundles everything a report covers for one user and window.
type ReportData struct {
	Vitals     []VitalsEntry
	Activities []Activity
	Events     []Event
}
