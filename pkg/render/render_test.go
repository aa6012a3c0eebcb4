package render

import (
	"strings"
	"testing"
	"time"

	"lungtracker-srv/internal/model"
)

func TestRenderReportHTML(t *testing.T) {
	rangeStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("renders all sections", func(t *testing.T) {
		notes := "after morning <walk>"
		html, err := RenderReportHTML(ReportInput{
			RangeStart:  rangeStart,
			RangeEnd:    rangeEnd,
			GeneratedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			Data: model.ReportData{
				Vitals: []model.VitalsEntry{{
					MeasuredAt: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
					PulseBpm:   fptr(72),
					FEV1L:      fptr(2.8),
					Notes:      notes,
				}},
				Activities: []model.Activity{{
					PerformedAt:     time.Date(2024, 1, 6, 17, 0, 0, 0, time.UTC),
					ActivityType:    "walking",
					DurationMinutes: fptr(30),
				}},
				Events: []model.Event{{
					EventAt: time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC),
					Title:   "shortness of breath",
				}},
			},
		})
		if err != nil {
			t.Fatalf("RenderReportHTML: %v", err)
		}
		for _, want := range []string{
			"2024-01-01T00:00:00Z",
			"2024-01-31T00:00:00Z",
			"Vitals", "Activities", "Events", "Summary",
			"walking", "shortness of breath",
			"2.8", "72",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("html missing %q", want)
			}
		}
	})

	t.Run("escapes html in notes", func(t *testing.T) {
		html, err := RenderReportHTML(ReportInput{
			RangeStart: rangeStart,
			RangeEnd:   rangeEnd,
			Data: model.ReportData{
				Vitals: []model.VitalsEntry{{
					MeasuredAt: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
					Notes:      `<script>alert("x")</script>`,
				}},
			},
		})
		if err != nil {
			t.Fatalf("RenderReportHTML: %v", err)
		}
		if strings.Contains(html, "<script>") {
			t.Error("notes should be escaped")
		}
	})

	t.Run("empty data still renders", func(t *testing.T) {
		html, err := RenderReportHTML(ReportInput{RangeStart: rangeStart, RangeEnd: rangeEnd})
		if err != nil {
			t.Fatalf("RenderReportHTML: %v", err)
		}
		if !strings.Contains(html, "0 vitals, 0 activities, 0 events") {
			t.Error("summary counts should show zeros")
		}
		if !strings.Contains(html, TrendNA) {
			t.Error("summary trend should be n/a for empty data")
		}
	})
}
