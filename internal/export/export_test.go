package export

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/courtline/internal/model"
)

func TestWriteSummaryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "summary.json")
	summary := model.Summary{
		Matches:              2,
		Wins:                 1,
		Losses:               1,
		WinRate:              0.5,
		AvgAces:              3,
		AvgDoubleFaults:      2,
		FirstServePct:        70.0 / 110.0,
		FirstServePtsWonPct:  48.0 / 70.0,
		SecondServePtsWonPct: 22.0 / 50.0,
		BreakPointsSavedPct:  8.0 / 14.0,
	}
	if err := WriteSummaryJSON(path, summary); err != nil {
		t.Fatalf("WriteSummaryJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var got map[string]float64
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}

	want := map[string]float64{
		"matches":                  2,
		"wins":                     1,
		"losses":                   1,
		"win_rate":                 0.5,
		"avg_aces":                 3,
		"avg_double_faults":        2,
		"first_serve_pct":          70.0 / 110.0,
		"first_serve_pts_won_pct":  48.0 / 70.0,
		"second_serve_pts_won_pct": 22.0 / 50.0,
		"break_points_saved_pct":   8.0 / 14.0,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(got), got)
	}
	for key, wantValue := range want {
		gotValue, ok := got[key]
		if !ok {
			t.Fatalf("missing key %q in summary JSON", key)
		}
		if math.Abs(gotValue-wantValue) > 1e-9 {
			t.Fatalf("%s = %v, want %v", key, gotValue, wantValue)
		}
	}
}

func TestWriteSummaryJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := WriteSummaryJSON(path, model.Summary{Matches: 1, Wins: 1}); err != nil {
		t.Fatalf("WriteSummaryJSON failed: %v", err)
	}
	if err := WriteSummaryJSON(path, model.Summary{Matches: 3, Wins: 2, Losses: 1}); err != nil {
		t.Fatalf("WriteSummaryJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var got map[string]float64
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if got["matches"] != 3 {
		t.Fatalf("expected overwritten matches = 3, got %v", got["matches"])
	}
}
