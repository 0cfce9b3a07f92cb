// Package stats contains statistics calculations and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/courtline/internal/model"
)

// TopMatchesByMetric returns the n best matches ranked by a metric,
// highest value first. Ties go to the earlier date.
func TopMatchesByMetric(history model.History, metric string, n int) ([]model.MatchRecord, error) {
	if !validMetric(metric) {
		return nil, unknownMetricError(metric)
	}
	if n <= 0 || len(history) == 0 {
		return nil, nil
	}
	type item struct {
		rec   model.MatchRecord
		value float64
	}
	items := make([]item, 0, len(history))
	for _, rec := range history {
		v, _ := metricValue(ComputeMatchMetrics(rec), metric)
		items = append(items, item{rec: rec, value: v})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].value == items[j].value {
			return items[i].rec.Date.Before(items[j].rec.Date)
		}
		return items[i].value > items[j].value
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]model.MatchRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[i].rec)
	}
	return out, nil
}
