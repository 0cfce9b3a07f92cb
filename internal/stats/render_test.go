package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/courtline/internal/model"
)

func TestRenderSummary(t *testing.T) {
	history := model.History{
		{
			Date: date(2025, 3, 1), Opponent: "Sinner", Result: model.Win, Aces: 5, DoubleFaults: 1,
			FirstServeIn: 40, FirstServeTotal: 50,
			FirstServePointsWon: 30, FirstServePointsTotal: 40,
			SecondServePointsWon: 10, SecondServePointsTotal: 20,
			BreakPointsSaved: 6, BreakPointsFaced: 8,
		},
		{
			Date: date(2025, 3, 8), Opponent: "Ruud", Result: model.Loss, Aces: 1, DoubleFaults: 3,
			FirstServeIn: 30, FirstServeTotal: 60,
			FirstServePointsWon: 18, FirstServePointsTotal: 30,
			SecondServePointsWon: 12, SecondServePointsTotal: 30,
			BreakPointsSaved: 2, BreakPointsFaced: 6,
		},
	}
	s := ComputeSummary(history)
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s, history); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Matches: 2  Wins: 1  Losses: 1  Win rate: 50.0%") {
		t.Fatalf("unexpected counts line in output:\n%s", out)
	}
	if !strings.Contains(out, "Avg aces: 3.00") {
		t.Fatalf("expected avg aces in output:\n%s", out)
	}
	if !strings.Contains(out, "1st serve in: 63.6%") {
		t.Fatalf("expected volume-weighted first serve rate in output:\n%s", out)
	}
	if !strings.Contains(out, "Best serving day: 2025-03-01 vs Sinner") {
		t.Fatalf("expected best serving day in output:\n%s", out)
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, ComputeSummary(nil), nil); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No matches found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderMatch(t *testing.T) {
	rec := model.MatchRecord{
		Date: date(2025, 10, 8), Opponent: "Alcaraz", Surface: "Hard",
		Result: model.Win, Score: "6-4 3-6 7-6", Aces: 7, DoubleFaults: 2,
		FirstServeIn: 40, FirstServeTotal: 50,
		FirstServePointsWon: 30, FirstServePointsTotal: 40,
		SecondServePointsWon: 10, SecondServePointsTotal: 20,
		BreakPointsSaved: 6, BreakPointsFaced: 8,
	}
	var buf bytes.Buffer
	if err := RenderMatch(&buf, rec, ComputeMatchMetrics(rec)); err != nil {
		t.Fatalf("RenderMatch failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Date: 2025-10-08  Opponent: Alcaraz  Surface: Hard") {
		t.Fatalf("unexpected match line in output:\n%s", out)
	}
	if !strings.Contains(out, "Result: W  Score: 6-4 3-6 7-6") {
		t.Fatalf("expected result line in output:\n%s", out)
	}
	if !strings.Contains(out, "1st serve in: 80.0%") {
		t.Fatalf("expected first serve rate in output:\n%s", out)
	}
	if !strings.Contains(out, "Break points saved: 75.0%") {
		t.Fatalf("expected break point rate in output:\n%s", out)
	}
}

func TestRenderMatchTable(t *testing.T) {
	history := model.History{
		{Date: date(2025, 5, 1), Opponent: "Sinner", Surface: "Clay", Result: model.Win, Score: "6-4 6-4",
			FirstServeIn: 40, FirstServeTotal: 50},
	}
	var buf bytes.Buffer
	if err := RenderMatchTable(&buf, history); err != nil {
		t.Fatalf("RenderMatchTable failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Date") || !strings.Contains(out, "Opponent") {
		t.Fatalf("expected headers in output:\n%s", out)
	}
	if !strings.Contains(out, "2025-05-01") || !strings.Contains(out, "Sinner") {
		t.Fatalf("expected match row in output:\n%s", out)
	}
	if !strings.Contains(out, "80.0%") {
		t.Fatalf("expected first serve rate in output:\n%s", out)
	}
}

func TestRenderMatchTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMatchTable(&buf, nil); err != nil {
		t.Fatalf("RenderMatchTable failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No matches found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
