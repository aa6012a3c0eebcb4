package postgre

import (
	"context"
	"database/sql"

	"lungtracker-srv/internal/healthdata/repository"
	"lungtracker-srv/internal/model"
)

const fetchVitalsQuery = `
	SELECT id, user_id, measured_at,
	       pulse_bpm, systolic, diastolic,
	       fev1_l, fev1_predicted_l, fev1_percent,
	       pef_l_min, pef_predicted_l_min, pef_percent,
	       notes
	FROM vitals_entries
	WHERE user_id = $1 AND measured_at >= $2 AND measured_at <= $3
	ORDER BY measured_at ASC`

const fetchActivitiesQuery = `
	SELECT id, user_id, performed_at, activity_type,
	       duration_minutes, distance_km, floors, symptom_score,
	       notes
	FROM activities
	WHERE user_id = $1 AND performed_at >= $2 AND performed_at <= $3
	ORDER BY performed_at ASC`

const fetchEventsQuery = `
	SELECT id, user_id, event_at, title,
	       noticeable_turn, major_health_update,
	       notes
	FROM events
	WHERE user_id = $1 AND event_at >= $2 AND event_at <= $3
	ORDER BY event_at ASC`

// FetchReportData - Load all health records for a user inside a time window,
// each kind ordered ascending by its timestamp.
func (r *implRepository) FetchReportData(ctx context.Context, opts repository.FetchReportDataOptions) (model.ReportData, error) {
	var data model.ReportData

	vitals, err := r.fetchVitals(ctx, opts)
	if err != nil {
		r.l.Errorf(ctx, "healthdata.repository.postgre.FetchReportData: Failed to fetch vitals: %v", err)
		return data, repository.ErrFetchFailed
	}
	activities, err := r.fetchActivities(ctx, opts)
	if err != nil {
		r.l.Errorf(ctx, "healthdata.repository.postgre.FetchReportData: Failed to fetch activities: %v", err)
		return data, repository.ErrFetchFailed
	}
	events, err := r.fetchEvents(ctx, opts)
	if err != nil {
		r.l.Errorf(ctx, "healthdata.repository.postgre.FetchReportData: Failed to fetch events: %v", err)
		return data, repository.ErrFetchFailed
	}

	data.Vitals = vitals
	data.Activities = activities
	data.Events = events
	return data, nil
}

func (r *implRepository) fetchVitals(ctx context.Context, opts repository.FetchReportDataOptions) ([]model.VitalsEntry, error) {
	rows, err := r.db.QueryContext(ctx, fetchVitalsQuery, opts.UserID, opts.RangeStart, opts.RangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vitals []model.VitalsEntry
	for rows.Next() {
		var v model.VitalsEntry
		var pulse, systolic, diastolic sql.NullFloat64
		var fev1, fev1Pred, fev1Pct sql.NullFloat64
		var pef, pefPred, pefPct sql.NullFloat64
		var notes sql.NullString

		if err := rows.Scan(&v.ID, &v.UserID, &v.MeasuredAt,
			&pulse, &systolic, &diastolic,
			&fev1, &fev1Pred, &fev1Pct,
			&pef, &pefPred, &pefPct,
			&notes); err != nil {
			return nil, err
		}

		v.PulseBpm = nullFloat(pulse)
		v.Systolic = nullFloat(systolic)
		v.Diastolic = nullFloat(diastolic)
		v.FEV1L = nullFloat(fev1)
		v.FEV1PredictedL = nullFloat(fev1Pred)
		v.FEV1Percent = nullFloat(fev1Pct)
		v.PEFLMin = nullFloat(pef)
		v.PEFPredictedLMin = nullFloat(pefPred)
		v.PEFPercent = nullFloat(pefPct)
		v.Notes = notes.String
		vitals = append(vitals, v)
	}
	return vitals, rows.Err()
}

func (r *implRepository) fetchActivities(ctx context.Context, opts repository.FetchReportDataOptions) ([]model.Activity, error) {
	rows, err := r.db.QueryContext(ctx, fetchActivitiesQuery, opts.UserID, opts.RangeStart, opts.RangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		var duration, distance, floors, symptomScore sql.NullFloat64
		var notes sql.NullString

		if err := rows.Scan(&a.ID, &a.UserID, &a.PerformedAt, &a.ActivityType,
			&duration, &distance, &floors, &symptomScore,
			&notes); err != nil {
			return nil, err
		}

		a.DurationMinutes = nullFloat(duration)
		a.DistanceKm = nullFloat(distance)
		a.Floors = nullFloat(floors)
		a.SymptomScore = nullFloat(symptomScore)
		a.Notes = notes.String
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *implRepository) fetchEvents(ctx context.Context, opts repository.FetchReportDataOptions) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, fetchEventsQuery, opts.UserID, opts.RangeStart, opts.RangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var noticeableTurn, majorUpdate sql.NullBool
		var notes sql.NullString

		if err := rows.Scan(&e.ID, &e.UserID, &e.EventAt, &e.Title,
			&noticeableTurn, &majorUpdate,
			&notes); err != nil {
			return nil, err
		}

		e.NoticeableTurn = nullBool(noticeableTurn)
		e.MajorHealthUpdate = nullBool(majorUpdate)
		e.Notes = notes.String
		events = append(events, e)
	}
	return events, rows.Err()
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}
