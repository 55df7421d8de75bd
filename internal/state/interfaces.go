package state

import (
	"context"
	"errors"
	"time"

	"neuroquest/internal/player"
)

// ErrNotFound is returned by Load when no record exists for the player.
// Callers construct and persist a default record in response.
var ErrNotFound = errors.New("player record not found")

// RecordStore is the persistence contract for the player record. Saves
// are whole-record overwrites, last write wins.
type RecordStore interface {
	Load(ctx context.Context, playerID string) (*player.Record, error)
	Save(ctx context.Context, playerID string, rec *player.Record) error
}

// HistoryStore keeps session history, daily challenge state and app
// settings. It never owns the player record.
type HistoryStore interface {
	EnsureSchema(ctx context.Context) error
	RecordSession(ctx context.Context, run SessionRun) error
	GetWorldProgressMap(ctx context.Context) (map[string]WorldProgress, error)
	UpsertDailyChallenge(ctx context.Context, challenge DailyChallenge) error
	GetDailyChallenge(ctx context.Context, day string) (*DailyChallenge, error)
	SaveSettings(ctx context.Context, values map[string]string) error
	LoadSettings(ctx context.Context) (map[string]string, error)
	GetSummary(ctx context.Context) (Summary, error)
	Close() error
}

// SessionRun is one completed exercise session.
type SessionRun struct {
	SessionID string
	World     string
	RawScore  int
	Percent   int
	XPAwarded int
	Boss      bool
	PlayedTS  time.Time
}

// WorldProgress is the per-world aggregate mirrored from session runs.
type WorldProgress struct {
	World        string
	Sessions     int
	BestPercent  int
	LastPlayedTS time.Time
}

// DailyChallenge tracks whether the date-seeded challenge was played.
type DailyChallenge struct {
	Day       string
	World     string
	Reference string
	Completed bool
	UpdatedTS time.Time
}

// Summary aggregates lifetime history for the stats screen.
type Summary struct {
	Sessions  int
	BossRuns  int
	TotalXP   int
	LastWorld string
}
