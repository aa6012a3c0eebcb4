package render

import (
	"math"
	"sort"
	"time"

	"lungtracker-srv/internal/model"
)

// Trend classification values.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
	TrendNA   = "n/a"
)

// trendEps is the slope threshold below which a trend counts as flat.
const trendEps = 0.001

// MetricPoint is a single observation of a metric over time.
type MetricPoint struct {
	At    time.Time
	Value float64
}

// MetricValue is a metric observation singled out as best or worst.
type MetricValue struct {
	Value float64
	At    time.Time
}

// MetricSummary aggregates one metric across the report window.
type MetricSummary struct {
	Avg         *float64
	Best        *MetricValue
	Worst       *MetricValue
	Trend       string
	SlopePerDay *float64
	Points      []MetricPoint
}

// ReportSummary aggregates the lung-function metrics and record counts.
type ReportSummary struct {
	FEV1L  MetricSummary
	PEFMin MetricSummary
	Counts RecordCounts
}

// RecordCounts holds the number of records of each kind in the window.
type RecordCounts struct {
	Vitals     int
	Activities int
	Events     int
}

// ComputeReportSummary builds the summary section of a report from typed
// health records. Entries missing a metric value are skipped for that metric.
func ComputeReportSummary(data model.ReportData) ReportSummary {
	return ReportSummary{
		FEV1L:  buildMetricSummary(data.Vitals, func(v model.VitalsEntry) *float64 { return v.FEV1L }),
		PEFMin: buildMetricSummary(data.Vitals, func(v model.VitalsEntry) *float64 { return v.PEFLMin }),
		Counts: RecordCounts{
			Vitals:     len(data.Vitals),
			Activities: len(data.Activities),
			Events:     len(data.Events),
		},
	}
}

func buildMetricSummary(vitals []model.VitalsEntry, value func(model.VitalsEntry) *float64) MetricSummary {
	var points []MetricPoint
	for _, v := range vitals {
		val := value(v)
		if val == nil || v.MeasuredAt.IsZero() {
			continue
		}
		points = append(points, MetricPoint{At: v.MeasuredAt, Value: *val})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].At.Before(points[j].At) })

	if len(points) == 0 {
		return MetricSummary{Trend: TrendNA}
	}

	sum := 0.0
	best, worst := points[0], points[0]
	for _, p := range points {
		sum += p.Value
		if p.Value > best.Value {
			best = p
		}
		if p.Value < worst.Value {
			worst = p
		}
	}
	avg := round(sum/float64(len(points)), 2)

	summary := MetricSummary{
		Avg:    &avg,
		Best:   &MetricValue{Value: round(best.Value, 2), At: best.At},
		Worst:  &MetricValue{Value: round(worst.Value, 2), At: worst.At},
		Trend:  TrendNA,
		Points: points,
	}

	if len(points) >= 2 {
		slope := round(linearSlopePerDay(points), 4)
		summary.SlopePerDay = &slope
		summary.Trend = classifyTrend(slope)
	}
	return summary
}

func classifyTrend(slopePerDay float64) string {
	if slopePerDay > trendEps {
		return TrendUp
	}
	if slopePerDay < -trendEps {
		return TrendDown
	}
	return TrendFlat
}

// linearSlopePerDay fits y = a + b*x by least squares and returns b in
// metric units per day.
func linearSlopePerDay(points []MetricPoint) float64 {
	n := float64(len(points))
	var xBar, yBar float64
	for _, p := range points {
		xBar += float64(p.At.UnixMilli())
		yBar += p.Value
	}
	xBar /= n
	yBar /= n

	var num, den float64
	for _, p := range points {
		dx := float64(p.At.UnixMilli()) - xBar
		num += dx * (p.Value - yBar)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}

	const msPerDay = 24 * 60 * 60 * 1000
	return (num / den) * msPerDay
}

func round(n float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(n*p) / p
}
