package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/courtline/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInsertAndListMatches(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "matches.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	history := model.History{
		{
			Date: date(2025, 5, 1), Opponent: "Ruud", Surface: "Clay",
			Result: model.Loss, Score: "4-6 4-6", Aces: 1, DoubleFaults: 3,
			FirstServeIn: 30, FirstServeTotal: 60,
			FirstServePointsWon: 18, FirstServePointsTotal: 30,
			SecondServePointsWon: 12, SecondServePointsTotal: 30,
			BreakPointsSaved: 2, BreakPointsFaced: 6,
		},
		{
			Date: date(2025, 5, 8), Opponent: "Sinner", Surface: "Clay",
			Result: model.Win, Score: "6-4 6-4", Aces: 5, DoubleFaults: 1,
			FirstServeIn: 40, FirstServeTotal: 50,
			FirstServePointsWon: 30, FirstServePointsTotal: 40,
			SecondServePointsWon: 10, SecondServePointsTotal: 20,
			BreakPointsSaved: 6, BreakPointsFaced: 8,
		},
	}
	if err := st.InsertMatches(ctx, history); err != nil {
		t.Fatalf("insert matches: %v", err)
	}

	got, err := st.ListMatches(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for i := range history {
		if !got[i].Date.Equal(history[i].Date) {
			t.Fatalf("match %d date = %v, want %v", i, got[i].Date, history[i].Date)
		}
		want := history[i]
		want.Date = got[i].Date
		if got[i] != want {
			t.Fatalf("match %d = %+v, want %+v", i, got[i], history[i])
		}
	}
}

func TestListMatchesOrdersByDate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "matches.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	history := model.History{
		{Date: date(2025, 6, 8), Opponent: "Later", Result: model.Win},
		{Date: date(2025, 6, 1), Opponent: "Earlier", Result: model.Loss},
		{Date: date(2025, 6, 8), Opponent: "LaterDup", Result: model.Loss},
	}
	if err := st.InsertMatches(ctx, history); err != nil {
		t.Fatalf("insert matches: %v", err)
	}

	got, err := st.ListMatches(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	if got[0].Opponent != "Earlier" {
		t.Fatalf("expected earliest match first, got %q", got[0].Opponent)
	}
	if got[1].Opponent != "Later" || got[2].Opponent != "LaterDup" {
		t.Fatalf("equal dates must keep insertion order, got %q then %q", got[1].Opponent, got[2].Opponent)
	}
}

func TestListMatchesEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "matches.db")
	st, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	got, err := st.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
