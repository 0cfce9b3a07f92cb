package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPlotRates(t *testing.T) {
	var buf bytes.Buffer
	start := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	err := PlotRates(&buf, "Test Plot", []Series{
		{Name: "1st serve in", Values: []float64{0.6, 0.7, 0.8, 0.7, 0.6}},
		{Name: "break points saved", Values: []float64{0.2, 0.3, 0.5, 0.7, 0.9}},
	}, start, end, 30, 4)
	if err != nil {
		t.Fatalf("PlotRates failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "100%") || !strings.Contains(out, "0%") {
		t.Fatalf("expected percent axis labels in output")
	}
	if !strings.Contains(out, "2025-01-04") || !strings.Contains(out, "2025-06-20") {
		t.Fatalf("expected date range in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expectedMin := 1 + 4 + 1 + 1
	if len(lines) < expectedMin {
		t.Fatalf("expected at least %d lines of output, got %d", expectedMin, len(lines))
	}
}

func TestPlotRatesEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotRates(&buf, "Empty", nil, time.Time{}, time.Time{}, 20, 4)
	if err != nil {
		t.Fatalf("PlotRates failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series, got %q", buf.String())
	}
}
