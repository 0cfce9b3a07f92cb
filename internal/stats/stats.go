// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/courtline/internal/model"
)

// Metric names accepted by MetricSeries, TopMatchesByMetric, and the plot
// command.
const (
	MetricFirstServePct        = "first_serve_pct"
	MetricFirstServePtsWonPct  = "first_serve_pts_won_pct"
	MetricSecondServePtsWonPct = "second_serve_pts_won_pct"
	MetricBreakPointsSavedPct  = "break_points_saved_pct"
)

var metricNames = []string{
	MetricFirstServePct,
	MetricFirstServePtsWonPct,
	MetricSecondServePtsWonPct,
	MetricBreakPointsSavedPct,
}

// MetricNames returns the recognized metric names in canonical order.
func MetricNames() []string {
	return append([]string(nil), metricNames...)
}

// SafeDiv divides num by den, returning 0 when the denominator is zero.
// A zero denominator of either sign counts as zero.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ComputeMatchMetrics derives the four serve and break-point rates from a
// single match's raw counters.
func ComputeMatchMetrics(rec model.MatchRecord) model.MatchMetrics {
	return model.MatchMetrics{
		FirstServePct:        SafeDiv(float64(rec.FirstServeIn), float64(rec.FirstServeTotal)),
		FirstServePtsWonPct:  SafeDiv(float64(rec.FirstServePointsWon), float64(rec.FirstServePointsTotal)),
		SecondServePtsWonPct: SafeDiv(float64(rec.SecondServePointsWon), float64(rec.SecondServePointsTotal)),
		BreakPointsSavedPct:  SafeDiv(float64(rec.BreakPointsSaved), float64(rec.BreakPointsFaced)),
	}
}

// ComputeSummary computes season-wide counts, averages, and rates across the
// full history. The season rates divide summed numerators by summed
// denominators, so a long match weighs more than a short one; averaging the
// per-match rates instead would weigh every match equally and give a
// different answer.
func ComputeSummary(history model.History) model.Summary {
	var s model.Summary
	s.Matches = len(history)
	if s.Matches == 0 {
		return s
	}

	var aces, doubleFaults int
	var firstIn, firstTotal int
	var firstWon, firstPts int
	var secondWon, secondPts int
	var bpSaved, bpFaced int
	for _, rec := range history {
		switch rec.Result {
		case model.Win:
			s.Wins++
		case model.Loss:
			s.Losses++
		}
		aces += rec.Aces
		doubleFaults += rec.DoubleFaults
		firstIn += rec.FirstServeIn
		firstTotal += rec.FirstServeTotal
		firstWon += rec.FirstServePointsWon
		firstPts += rec.FirstServePointsTotal
		secondWon += rec.SecondServePointsWon
		secondPts += rec.SecondServePointsTotal
		bpSaved += rec.BreakPointsSaved
		bpFaced += rec.BreakPointsFaced
	}

	s.WinRate = SafeDiv(float64(s.Wins), float64(s.Matches))
	s.AvgAces = float64(aces) / float64(s.Matches)
	s.AvgDoubleFaults = float64(doubleFaults) / float64(s.Matches)
	s.FirstServePct = SafeDiv(float64(firstIn), float64(firstTotal))
	s.FirstServePtsWonPct = SafeDiv(float64(firstWon), float64(firstPts))
	s.SecondServePtsWonPct = SafeDiv(float64(secondWon), float64(secondPts))
	s.BreakPointsSavedPct = SafeDiv(float64(bpSaved), float64(bpFaced))
	return s
}

// FindByDate returns the record played on the given calendar date. When
// several records share the date, the first stored one wins. The second
// return value is false when no record matches; absence is for the caller
// to judge.
func FindByDate(history model.History, date time.Time) (model.MatchRecord, bool) {
	for _, rec := range history {
		if rec.Date.Equal(date) {
			return rec, true
		}
	}
	return model.MatchRecord{}, false
}

// MetricSeries extracts the ordered (date, value) pairs of one metric
// across the history.
func MetricSeries(history model.History, metric string) ([]model.MetricPoint, error) {
	if !validMetric(metric) {
		return nil, unknownMetricError(metric)
	}
	points := make([]model.MetricPoint, 0, len(history))
	for _, rec := range history {
		v, _ := metricValue(ComputeMatchMetrics(rec), metric)
		points = append(points, model.MetricPoint{Date: rec.Date, Value: v})
	}
	return points, nil
}

func validMetric(metric string) bool {
	for _, name := range metricNames {
		if name == metric {
			return true
		}
	}
	return false
}

func unknownMetricError(metric string) error {
	return fmt.Errorf("unknown metric %q (available: %s)", metric, strings.Join(metricNames, ", "))
}

func metricValue(m model.MatchMetrics, metric string) (float64, bool) {
	switch metric {
	case MetricFirstServePct:
		return m.FirstServePct, true
	case MetricFirstServePtsWonPct:
		return m.FirstServePtsWonPct, true
	case MetricSecondServePtsWonPct:
		return m.SecondServePtsWonPct, true
	case MetricBreakPointsSavedPct:
		return m.BreakPointsSavedPct, true
	default:
		return 0, false
	}
}

// MetricLabel returns a human-readable label for a metric name.
func MetricLabel(metric string) string {
	switch metric {
	case MetricFirstServePct:
		return "1st serve in"
	case MetricFirstServePtsWonPct:
		return "1st serve points won"
	case MetricSecondServePtsWonPct:
		return "2nd serve points won"
	case MetricBreakPointsSavedPct:
		return "break points saved"
	default:
		return metric
	}
}
