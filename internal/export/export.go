// Package export writes derived results to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/courtline/internal/model"
)

type summaryJSON struct {
	Matches              int     `json:"matches"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	WinRate              float64 `json:"win_rate"`
	AvgAces              float64 `json:"avg_aces"`
	AvgDoubleFaults      float64 `json:"avg_double_faults"`
	FirstServePct        float64 `json:"first_serve_pct"`
	FirstServePtsWonPct  float64 `json:"first_serve_pts_won_pct"`
	SecondServePtsWonPct float64 `json:"second_serve_pts_won_pct"`
	BreakPointsSavedPct  float64 `json:"break_points_saved_pct"`
}

// WriteSummaryJSON writes the season summary as a flat JSON object. The
// file is written via a temp file and rename so a failed write never leaves
// a truncated summary behind.
func WriteSummaryJSON(path string, s model.Summary) error {
	data, err := json.MarshalIndent(summaryJSON{
		Matches:              s.Matches,
		Wins:                 s.Wins,
		Losses:               s.Losses,
		WinRate:              s.WinRate,
		AvgAces:              s.AvgAces,
		AvgDoubleFaults:      s.AvgDoubleFaults,
		FirstServePct:        s.FirstServePct,
		FirstServePtsWonPct:  s.FirstServePtsWonPct,
		SecondServePtsWonPct: s.SecondServePtsWonPct,
		BreakPointsSavedPct:  s.BreakPointsSavedPct,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create results dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "summary-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp summary: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close summary: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
