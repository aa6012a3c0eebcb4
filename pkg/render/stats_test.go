package render

import (
	"math"
	"testing"
	"time"

	"lungtracker-srv/internal/model"
)

func fptr(v float64) *float64 { return &v }

func vitalsAt(day int, fev1 *float64, pef *float64) model.VitalsEntry {
	return model.VitalsEntry{
		MeasuredAt: time.Date(2024, 1, day, 8, 0, 0, 0, time.UTC),
		FEV1L:      fev1,
		PEFLMin:    pef,
	}
}

func TestComputeReportSummary(t *testing.T) {
	t.Run("empty input yields n/a", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{})
		if s.FEV1L.Trend != TrendNA {
			t.Errorf("trend: got %s, want %s", s.FEV1L.Trend, TrendNA)
		}
		if s.FEV1L.Avg != nil || s.FEV1L.Best != nil || s.FEV1L.Worst != nil || s.FEV1L.SlopePerDay != nil {
			t.Error("empty metric should have nil aggregates")
		}
		if s.Counts.Vitals != 0 || s.Counts.Activities != 0 || s.Counts.Events != 0 {
			t.Error("counts should be zero")
		}
	})

	t.Run("single point has no trend", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{
			Vitals: []model.VitalsEntry{vitalsAt(1, fptr(2.5), nil)},
		})
		if s.FEV1L.Avg == nil || *s.FEV1L.Avg != 2.5 {
			t.Errorf("avg: got %v, want 2.5", s.FEV1L.Avg)
		}
		if s.FEV1L.Trend != TrendNA {
			t.Errorf("trend: got %s, want %s", s.FEV1L.Trend, TrendNA)
		}
		if s.FEV1L.SlopePerDay != nil {
			t.Error("slope should be nil for a single point")
		}
		// PEF has no values at all
		if s.PEFMin.Trend != TrendNA {
			t.Errorf("pef trend: got %s, want %s", s.PEFMin.Trend, TrendNA)
		}
	})

	t.Run("rising series trends up with unit slope", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{
			Vitals: []model.VitalsEntry{
				vitalsAt(1, fptr(1.0), nil),
				vitalsAt(2, fptr(2.0), nil),
				vitalsAt(3, fptr(3.0), nil),
			},
		})
		if s.FEV1L.Trend != TrendUp {
			t.Errorf("trend: got %s, want %s", s.FEV1L.Trend, TrendUp)
		}
		if s.FEV1L.SlopePerDay == nil || math.Abs(*s.FEV1L.SlopePerDay-1.0) > 1e-9 {
			t.Errorf("slope: got %v, want 1.0", s.FEV1L.SlopePerDay)
		}
		if s.FEV1L.Avg == nil || *s.FEV1L.Avg != 2.0 {
			t.Errorf("avg: got %v, want 2.0", s.FEV1L.Avg)
		}
		if s.FEV1L.Best == nil || s.FEV1L.Best.Value != 3.0 {
			t.Errorf("best: got %v, want 3.0", s.FEV1L.Best)
		}
		if s.FEV1L.Worst == nil || s.FEV1L.Worst.Value != 1.0 {
			t.Errorf("worst: got %v, want 1.0", s.FEV1L.Worst)
		}
	})

	t.Run("falling series trends down", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{
			Vitals: []model.VitalsEntry{
				vitalsAt(1, nil, fptr(450)),
				vitalsAt(2, nil, fptr(430)),
				vitalsAt(3, nil, fptr(410)),
			},
		})
		if s.PEFMin.Trend != TrendDown {
			t.Errorf("trend: got %s, want %s", s.PEFMin.Trend, TrendDown)
		}
	})

	t.Run("constant series is flat", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{
			Vitals: []model.VitalsEntry{
				vitalsAt(1, fptr(2.0), nil),
				vitalsAt(2, fptr(2.0), nil),
			},
		})
		if s.FEV1L.Trend != TrendFlat {
			t.Errorf("trend: got %s, want %s", s.FEV1L.Trend, TrendFlat)
		}
	})

	t.Run("points sorted by time regardless of input order", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{
			Vitals: []model.VitalsEntry{
				vitalsAt(3, fptr(3.0), nil),
				vitalsAt(1, fptr(1.0), nil),
				vitalsAt(2, fptr(2.0), nil),
			},
		})
		pts := s.FEV1L.Points
		if len(pts) != 3 {
			t.Fatalf("points: got %d, want 3", len(pts))
		}
		for i := 1; i < len(pts); i++ {
			if pts[i].At.Before(pts[i-1].At) {
				t.Error("points should be sorted ascending by time")
			}
		}
		if s.FEV1L.Trend != TrendUp {
			t.Errorf("trend: got %s, want %s", s.FEV1L.Trend, TrendUp)
		}
	})

	t.Run("entries without the metric are skipped", func(t *testing.T) {
		s := ComputeReportSummary(model.ReportData{
			Vitals: []model.VitalsEntry{
				vitalsAt(1, fptr(2.0), nil),
				vitalsAt(2, nil, fptr(400)),
			},
		})
		if len(s.FEV1L.Points) != 1 {
			t.Errorf("fev1 points: got %d, want 1", len(s.FEV1L.Points))
		}
		if len(s.PEFMin.Points) != 1 {
			t.Errorf("pef points: got %d, want 1", len(s.PEFMin.Points))
		}
		if s.Counts.Vitals != 2 {
			t.Errorf("counts.vitals: got %d, want 2", s.Counts.Vitals)
		}
	})
}
