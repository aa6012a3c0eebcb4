package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"lungtracker-srv/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const reportTemplateFile = "templates/report.html.tmpl"

// ReportInput is everything the report template needs.
type ReportInput struct {
	RangeStart  time.Time
	RangeEnd    time.Time
	GeneratedAt time.Time
	Data        model.ReportData
}

// view types passed to the template. All values are preformatted strings so
// missing measurements render as empty cells.
type reportView struct {
	RangeStart  string
	RangeEnd    string
	GeneratedAt string
	Summary     []summaryRow
	Counts      RecordCounts
	Vitals      []vitalsRow
	Activities  []activityRow
	Events      []eventRow
}

type summaryRow struct {
	Name        string
	Avg         string
	Best        string
	Worst       string
	Trend       string
	SlopePerDay string
}

type vitalsRow struct {
	MeasuredAt       string
	PulseBpm         string
	Systolic         string
	Diastolic        string
	FEV1L            string
	FEV1PredictedL   string
	FEV1Percent      string
	PEFLMin          string
	PEFPredictedLMin string
	PEFPercent       string
	Notes            string
}

type activityRow struct {
	PerformedAt     string
	ActivityType    string
	DurationMinutes string
	DistanceKm      string
	Floors          string
	SymptomScore    string
	Notes           string
}

type eventRow struct {
	EventAt           string
	Title             string
	NoticeableTurn    string
	MajorHealthUpdate string
	Notes             string
}

// RenderReportHTML renders the health report HTML for a user's records in a
// time window, including the computed metric summary.
func RenderReportHTML(in ReportInput) (string, error) {
	tmpl, err := template.ParseFS(templateFS, reportTemplateFile)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	generatedAt := in.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	summary := ComputeReportSummary(in.Data)
	view := reportView{
		RangeStart:  in.RangeStart.UTC().Format(time.RFC3339),
		RangeEnd:    in.RangeEnd.UTC().Format(time.RFC3339),
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Summary: []summaryRow{
			newSummaryRow("FEV1 (L)", summary.FEV1L),
			newSummaryRow("PEF (L/min)", summary.PEFMin),
		},
		Counts: summary.Counts,
	}

	for _, v := range in.Data.Vitals {
		view.Vitals = append(view.Vitals, vitalsRow{
			MeasuredAt:       v.MeasuredAt.UTC().Format(time.RFC3339),
			PulseBpm:         fmtFloat(v.PulseBpm),
			Systolic:         fmtFloat(v.Systolic),
			Diastolic:        fmtFloat(v.Diastolic),
			FEV1L:            fmtFloat(v.FEV1L),
			FEV1PredictedL:   fmtFloat(v.FEV1PredictedL),
			FEV1Percent:      fmtFloat(v.FEV1Percent),
			PEFLMin:          fmtFloat(v.PEFLMin),
			PEFPredictedLMin: fmtFloat(v.PEFPredictedLMin),
			PEFPercent:       fmtFloat(v.PEFPercent),
			Notes:            v.Notes,
		})
	}
	for _, a := range in.Data.Activities {
		view.Activities = append(view.Activities, activityRow{
			PerformedAt:     a.PerformedAt.UTC().Format(time.RFC3339),
			ActivityType:    a.ActivityType,
			DurationMinutes: fmtFloat(a.DurationMinutes),
			DistanceKm:      fmtFloat(a.DistanceKm),
			Floors:          fmtFloat(a.Floors),
			SymptomScore:    fmtFloat(a.SymptomScore),
			Notes:           a.Notes,
		})
	}
	for _, e := range in.Data.Events {
		view.Events = append(view.Events, eventRow{
			EventAt:           e.EventAt.UTC().Format(time.RFC3339),
			Title:             e.Title,
			NoticeableTurn:    fmtBool(e.NoticeableTurn),
			MajorHealthUpdate: fmtBool(e.MajorHealthUpdate),
			Notes:             e.Notes,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

func newSummaryRow(name string, s MetricSummary) summaryRow {
	row := summaryRow{Name: name, Trend: s.Trend}
	if s.Avg != nil {
		row.Avg = fmtFloat(s.Avg)
	}
	if s.Best != nil {
		row.Best = fmt.Sprintf("%s (%s)", strconv.FormatFloat(s.Best.Value, 'f', -1, 64), s.Best.At.UTC().Format(time.RFC3339))
	}
	if s.Worst != nil {
		row.Worst = fmt.Sprintf("%s (%s)", strconv.FormatFloat(s.Worst.Value, 'f', -1, 64), s.Worst.At.UTC().Format(time.RFC3339))
	}
	if s.SlopePerDay != nil {
		row.SlopePerDay = fmtFloat(s.SlopePerDay)
	}
	return row
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtBool(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "yes"
	}
	return "no"
}
