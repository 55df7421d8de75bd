package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements HistoryStore on a local sqlite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS session_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			world TEXT NOT NULL,
			raw_score INTEGER NOT NULL DEFAULT 0,
			percent INTEGER NOT NULL DEFAULT 0,
			xp_awarded INTEGER NOT NULL DEFAULT 0,
			boss INTEGER NOT NULL DEFAULT 0,
			played_ts TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS world_progress (
			world TEXT PRIMARY KEY,
			sessions INTEGER NOT NULL DEFAULT 0,
			best_percent INTEGER NOT NULL DEFAULT 0,
			last_played_ts TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS daily_challenge (
			day TEXT PRIMARY KEY,
			world TEXT NOT NULL,
			reference TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,
			updated_ts TEXT NOT NULL DEFAULT (datetime('now'))
		);`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// RecordSession appends the run and folds it into the per-world
// aggregate. Best percent is monotonic: a worse run never lowers it.
func (s *SQLiteStore) RecordSession(ctx context.Context, run SessionRun) error {
	world := strings.TrimSpace(run.World)
	if world == "" {
		return nil
	}
	playedTS := run.PlayedTS
	if playedTS.IsZero() {
		playedTS = time.Now().UTC()
	}
	ts := playedTS.UTC().Format(timeLayout)

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO session_runs(session_id, world, raw_score, percent, xp_awarded, boss, played_ts) VALUES(?,?,?,?,?,?,?)`,
		run.SessionID,
		world,
		max(0, run.RawScore),
		max(0, run.Percent),
		max(0, run.XPAwarded),
		ifThen(run.Boss, 1, 0),
		ts,
	); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO world_progress(world, sessions, best_percent, last_played_ts)
		VALUES(?, 1, ?, ?)
		ON CONFLICT(world) DO UPDATE SET
			sessions = world_progress.sessions + 1,
			best_percent = CASE
				WHEN excluded.best_percent > world_progress.best_percent THEN excluded.best_percent
				ELSE world_progress.best_percent
			END,
			last_played_ts = excluded.last_played_ts
	`, world, max(0, run.Percent), ts)
	return err
}

func (s *SQLiteStore) GetWorldProgressMap(ctx context.Context) (map[string]WorldProgress, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT world, sessions, best_percent, last_played_ts
		FROM world_progress
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]WorldProgress{}
	for rows.Next() {
		var (
			wp         WorldProgress
			lastPlayed string
		)
		if err := rows.Scan(&wp.World, &wp.Sessions, &wp.BestPercent, &lastPlayed); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timeLayout, lastPlayed); err == nil {
			wp.LastPlayedTS = t
		}
		out[wp.World] = wp
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertDailyChallenge records the day's challenge. Completion only ever
// moves from pending to done.
func (s *SQLiteStore) UpsertDailyChallenge(ctx context.Context, challenge DailyChallenge) error {
	day := strings.TrimSpace(challenge.Day)
	if day == "" {
		return nil
	}
	updated := challenge.UpdatedTS
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_challenge(day, world, reference, completed, updated_ts)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			world = excluded.world,
			reference = excluded.reference,
			completed = CASE
				WHEN excluded.completed > daily_challenge.completed THEN excluded.completed
				ELSE daily_challenge.completed
			END,
			updated_ts = excluded.updated_ts
	`, day, challenge.World, challenge.Reference, ifThen(challenge.Completed, 1, 0), updated.UTC().Format(timeLayout))
	return err
}

func (s *SQLiteStore) GetDailyChallenge(ctx context.Context, day string) (*DailyChallenge, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return nil, nil
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT day, world, reference, completed, updated_ts
		FROM daily_challenge
		WHERE day = ?
	`, day)
	var (
		out          DailyChallenge
		completedInt int
		updatedRaw   string
	)
	if err := row.Scan(&out.Day, &out.World, &out.Reference, &completedInt, &updatedRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	out.Completed = completedInt == 1
	if t, err := time.Parse(timeLayout, updatedRaw); err == nil {
		out.UpdatedTS = t
	}
	return &out, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	for key, value := range values {
		k := strings.TrimSpace(key)
		if k == "" {
			continue
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO app_settings(key, value) VALUES(?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, value); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) LoadSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM app_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) GetSummary(ctx context.Context) (Summary, error) {
	var out Summary
	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) as sessions,
			COALESCE(SUM(boss),0) as boss_runs,
			COALESCE(SUM(xp_awarded),0) as total_xp
		FROM session_runs
	`)
	if err := row.Scan(&out.Sessions, &out.BossRuns, &out.TotalXP); err != nil {
		return Summary{}, err
	}
	last := s.db.QueryRowContext(ctx, `SELECT world FROM session_runs ORDER BY id DESC LIMIT 1`)
	if err := last.Scan(&out.LastWorld); err != nil && err != sql.ErrNoRows {
		return Summary{}, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func ifThen(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
