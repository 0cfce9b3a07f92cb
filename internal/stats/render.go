// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/courtline/internal/model"
)

const dateLayout = "2006-01-02"

// RenderSummary prints the season summary for a history.
func RenderSummary(w io.Writer, s model.Summary, history model.History) error {
	if s.Matches == 0 {
		_, err := fmt.Fprintln(w, "No matches found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Season Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Matches: %d  Wins: %d  Losses: %d  Win rate: %.1f%%\n", s.Matches, s.Wins, s.Losses, s.WinRate*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg aces: %.2f  Avg double faults: %.2f\n", s.AvgAces, s.AvgDoubleFaults); err != nil {
		return err
	}
	rates := []struct {
		label string
		value float64
	}{
		{MetricLabel(MetricFirstServePct), s.FirstServePct},
		{MetricLabel(MetricFirstServePtsWonPct), s.FirstServePtsWonPct},
		{MetricLabel(MetricSecondServePtsWonPct), s.SecondServePtsWonPct},
		{MetricLabel(MetricBreakPointsSavedPct), s.BreakPointsSavedPct},
	}
	for _, r := range rates {
		if _, err := fmt.Fprintf(w, "%s: %.1f%%\n", capitalize(r.label), r.value*100); err != nil {
			return err
		}
	}
	if best, err := TopMatchesByMetric(history, MetricFirstServePct, 1); err == nil && len(best) > 0 {
		m := ComputeMatchMetrics(best[0])
		if _, err := fmt.Fprintf(w, "Best serving day: %s vs %s (%.1f%% first serves in)\n",
			best[0].Date.Format(dateLayout), best[0].Opponent, m.FirstServePct*100); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderMatch prints one match record together with its derived rates.
func RenderMatch(w io.Writer, rec model.MatchRecord, m model.MatchMetrics) error {
	if _, err := fmt.Fprintln(w, "Match"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Date: %s  Opponent: %s  Surface: %s\n", rec.Date.Format(dateLayout), rec.Opponent, rec.Surface); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Result: %s  Score: %s\n", rec.Result, rec.Score); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Aces: %d  Double faults: %d\n", rec.Aces, rec.DoubleFaults); err != nil {
		return err
	}
	rates := []struct {
		label string
		value float64
	}{
		{MetricLabel(MetricFirstServePct), m.FirstServePct},
		{MetricLabel(MetricFirstServePtsWonPct), m.FirstServePtsWonPct},
		{MetricLabel(MetricSecondServePtsWonPct), m.SecondServePtsWonPct},
		{MetricLabel(MetricBreakPointsSavedPct), m.BreakPointsSavedPct},
	}
	for _, r := range rates {
		if _, err := fmt.Fprintf(w, "%s: %.1f%%\n", capitalize(r.label), r.value*100); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderMatchTable prints an aligned table of all matches with per-match
// rates.
func RenderMatchTable(w io.Writer, history model.History) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No matches found.")
		return err
	}
	headers := []string{"Date", "Opponent", "Surface", "Result", "Score", "Aces", "DF", "1st Srv", "1st Won", "2nd Won", "BP Saved"}
	rows := make([][]string, 0, len(history))
	for _, rec := range history {
		m := ComputeMatchMetrics(rec)
		rows = append(rows, []string{
			rec.Date.Format(dateLayout),
			rec.Opponent,
			rec.Surface,
			string(rec.Result),
			rec.Score,
			fmt.Sprintf("%d", rec.Aces),
			fmt.Sprintf("%d", rec.DoubleFaults),
			fmt.Sprintf("%.1f%%", m.FirstServePct*100),
			fmt.Sprintf("%.1f%%", m.FirstServePtsWonPct*100),
			fmt.Sprintf("%.1f%%", m.SecondServePtsWonPct*100),
			fmt.Sprintf("%.1f%%", m.BreakPointsSavedPct*100),
		})
	}
	rightAlign := map[int]bool{5: true, 6: true, 7: true, 8: true, 9: true, 10: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
