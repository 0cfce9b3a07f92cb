// Package model defines shared data structures.
package model

import "time"

// Result is the outcome of a match.
type Result string

// Canonical result codes.
const (
	Win  Result = "W"
	Loss Result = "L"
)

// MatchRecord is one played match with its raw serve counters.
// Records are built once at load time and never mutated.
type MatchRecord struct {
	Date     time.Time
	Opponent string
	Surface  string
	Result   Result
	Score    string

	Aces                   int
	DoubleFaults           int
	FirstServeIn           int
	FirstServeTotal        int
	FirstServePointsWon    int
	FirstServePointsTotal  int
	SecondServePointsWon   int
	SecondServePointsTotal int
	BreakPointsSaved       int
	BreakPointsFaced       int
}

// History is the full match history, ascending by date.
// Equal dates keep their original input order.
type History []MatchRecord

// MatchMetrics holds derived per-match rates, each in [0, 1].
type MatchMetrics struct {
	FirstServePct        float64
	FirstServePtsWonPct  float64
	SecondServePtsWonPct float64
	BreakPointsSavedPct  float64
}

// Summary holds season-wide counts and rates. The four rate fields are
// computed from summed numerators and denominators across all matches,
// not from averaged per-match rates.
type Summary struct {
	Matches              int
	Wins                 int
	Losses               int
	WinRate              float64
	AvgAces              float64
	AvgDoubleFaults      float64
	FirstServePct        float64
	FirstServePtsWonPct  float64
	SecondServePtsWonPct float64
	BreakPointsSavedPct  float64
}

// MetricPoint is one (date, value) sample of a metric over time.
type MetricPoint struct {
	Date  time.Time
	Value float64
}
