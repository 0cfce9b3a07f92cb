// Package store handles SQLite persistence of match records.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/courtline/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const dateLayout = "2006-01-02"

// Store wraps SQLite access for match data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY,
			date TEXT NOT NULL,
			opponent TEXT NOT NULL,
			surface TEXT NOT NULL,
			result TEXT NOT NULL,
			score TEXT NOT NULL,
			aces INTEGER NOT NULL,
			double_faults INTEGER NOT NULL,
			first_serve_in INTEGER NOT NULL,
			first_serve_total INTEGER NOT NULL,
			first_serve_points_won INTEGER NOT NULL,
			first_serve_points_total INTEGER NOT NULL,
			second_serve_points_won INTEGER NOT NULL,
			second_serve_points_total INTEGER NOT NULL,
			break_points_saved INTEGER NOT NULL,
			break_points_faced INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertMatches stores a full history in one transaction.
func (s *Store) InsertMatches(ctx context.Context, history model.History) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matches (date, opponent, surface, result, score, aces, double_faults,
			first_serve_in, first_serve_total, first_serve_points_won, first_serve_points_total,
			second_serve_points_won, second_serve_points_total, break_points_saved, break_points_faced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, rec := range history {
		if _, err = stmt.ExecContext(ctx,
			rec.Date.Format(dateLayout),
			rec.Opponent,
			rec.Surface,
			string(rec.Result),
			rec.Score,
			rec.Aces,
			rec.DoubleFaults,
			rec.FirstServeIn,
			rec.FirstServeTotal,
			rec.FirstServePointsWon,
			rec.FirstServePointsTotal,
			rec.SecondServePointsWon,
			rec.SecondServePointsTotal,
			rec.BreakPointsSaved,
			rec.BreakPointsFaced,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListMatches returns all stored matches ascending by date. Equal dates keep
// their insertion order.
func (s *Store) ListMatches(ctx context.Context) (model.History, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, opponent, surface, result, score, aces, double_faults,
			first_serve_in, first_serve_total, first_serve_points_won, first_serve_points_total,
			second_serve_points_won, second_serve_points_total, break_points_saved, break_points_faced
		 FROM matches
		 ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var history model.History
	for rows.Next() {
		var rec model.MatchRecord
		var date, result string
		if err := rows.Scan(&date, &rec.Opponent, &rec.Surface, &result, &rec.Score,
			&rec.Aces, &rec.DoubleFaults,
			&rec.FirstServeIn, &rec.FirstServeTotal,
			&rec.FirstServePointsWon, &rec.FirstServePointsTotal,
			&rec.SecondServePointsWon, &rec.SecondServePointsTotal,
			&rec.BreakPointsSaved, &rec.BreakPointsFaced); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
		}
		rec.Date = parsed
		switch model.Result(result) {
		case model.Win, model.Loss:
			rec.Result = model.Result(result)
		default:
			return nil, fmt.Errorf("invalid stored result %q (expected W or L)", result)
		}
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}
