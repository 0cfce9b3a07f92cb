// Package loader parses match records from CSV files.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/courtline/internal/model"
)

// DateLayout is the calendar date format used by inputs and lookups.
const DateLayout = "2006-01-02"

var requiredColumns = []string{
	"date",
	"result",
	"opponent",
	"surface",
	"score",
	"aces",
	"double_faults",
	"first_serve_in",
	"first_serve_total",
	"first_serve_points_won",
	"first_serve_points_total",
	"second_serve_points_won",
	"second_serve_points_total",
	"break_points_saved",
	"break_points_faced",
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// LoadCSV reads a CSV file of match records and returns them sorted
// ascending by date. Equal dates keep their input order.
func LoadCSV(path string) (model.History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open matches file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of a read-only file.
			_ = cerr
		}
	}()
	history, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return history, nil
}

// Read parses match records from CSV data.
func Read(r io.Reader) (model.History, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var history model.History
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line++
		rec, err := parseRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		history = append(history, rec)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

func parseRecord(row []string, cols map[string]int) (model.MatchRecord, error) {
	var rec model.MatchRecord

	field := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	date, err := ParseDate(field("date"))
	if err != nil {
		return rec, err
	}
	rec.Date = date

	result, err := parseResult(field("result"))
	if err != nil {
		return rec, err
	}
	rec.Result = result

	rec.Opponent = strings.TrimSpace(field("opponent"))
	rec.Surface = strings.TrimSpace(field("surface"))
	rec.Score = strings.TrimSpace(field("score"))

	counters := []struct {
		name   string
		target *int
	}{
		{"aces", &rec.Aces},
		{"double_faults", &rec.DoubleFaults},
		{"first_serve_in", &rec.FirstServeIn},
		{"first_serve_total", &rec.FirstServeTotal},
		{"first_serve_points_won", &rec.FirstServePointsWon},
		{"first_serve_points_total", &rec.FirstServePointsTotal},
		{"second_serve_points_won", &rec.SecondServePointsWon},
		{"second_serve_points_total", &rec.SecondServePointsTotal},
		{"break_points_saved", &rec.BreakPointsSaved},
		{"break_points_faced", &rec.BreakPointsFaced},
	}
	for _, c := range counters {
		v, err := parseCounter(c.name, field(c.name))
		if err != nil {
			return rec, err
		}
		*c.target = v
	}
	return rec, nil
}

func parseResult(raw string) (model.Result, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	switch model.Result(normalized) {
	case model.Win, model.Loss:
		return model.Result(normalized), nil
	}
	return "", fmt.Errorf("invalid result %q (expected W or L)", raw)
}

func parseCounter(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (expected integer)", name, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s %d (must be >= 0)", name, v)
	}
	return v, nil
}
