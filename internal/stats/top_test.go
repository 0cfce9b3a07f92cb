package stats

import (
	"testing"
	"time"

	"github.com/verte-zerg/courtline/internal/model"
)

func TestTopMatchesByMetric(t *testing.T) {
	history := model.History{
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), FirstServeIn: 30, FirstServeTotal: 60},
		{Date: time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC), FirstServeIn: 45, FirstServeTotal: 50},
		{Date: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), FirstServeIn: 40, FirstServeTotal: 50},
	}
	top, err := TopMatchesByMetric(history, MetricFirstServePct, 2)
	if err != nil {
		t.Fatalf("TopMatchesByMetric failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(top))
	}
	if !top[0].Date.Equal(history[1].Date) {
		t.Fatalf("unexpected best match date: %v", top[0].Date)
	}
	if !top[1].Date.Equal(history[2].Date) {
		t.Fatalf("unexpected second match date: %v", top[1].Date)
	}
}

func TestTopMatchesByMetricTieBreaksOnDate(t *testing.T) {
	history := model.History{
		{Date: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), FirstServeIn: 40, FirstServeTotal: 50},
		{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), FirstServeIn: 8, FirstServeTotal: 10},
	}
	top, err := TopMatchesByMetric(history, MetricFirstServePct, 1)
	if err != nil {
		t.Fatalf("TopMatchesByMetric failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 match, got %d", len(top))
	}
	if !top[0].Date.Equal(history[1].Date) {
		t.Fatalf("expected earlier date to win the tie, got %v", top[0].Date)
	}
}

func TestTopMatchesByMetricUnknownMetric(t *testing.T) {
	if _, err := TopMatchesByMetric(nil, "serve_speed", 1); err == nil {
		t.Fatalf("expected error for unknown metric")
	}
}
