package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"neuroquest/internal/content"
	"neuroquest/internal/player"
	"neuroquest/internal/state"
)

// App wires the configuration, content pack and both stores together.
// One App serves one player for the lifetime of the process.
type App struct {
	cfg  Config
	log  *log.Logger
	pack content.Pack

	records *state.JSONStore
	history *state.SQLiteStore

	sessionID string
	session   *Session
}

func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "neuroquest",
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	pack, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	records, err := state.NewJSONStore(filepath.Join(cfg.DataDir, "records"))
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	history, err := state.NewSQLite(filepath.Join(cfg.DataDir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	if err := history.EnsureSchema(context.Background()); err != nil {
		_ = history.Close()
		return nil, fmt.Errorf("migrate history store: %w", err)
	}

	return &App{
		cfg:       cfg,
		log:       logger,
		pack:      pack,
		records:   records,
		history:   history,
		sessionID: uuid.NewString(),
	}, nil
}

func (a *App) Close() error {
	return a.history.Close()
}

func (a *App) Config() Config { return a.cfg }

func (a *App) Pack() content.Pack { return a.pack }

func (a *App) Logger() *log.Logger { return a.log }

// Session returns the active session, nil before StartSession.
func (a *App) Session() *Session { return a.session }

// Stats bundles everything the stats view shows in one call.
type Stats struct {
	Record   *player.Record
	Summary  state.Summary
	Progress map[string]state.WorldProgress
	Daily    *state.DailyChallenge
}

func (a *App) Stats(ctx context.Context, day string) (Stats, error) {
	rec, err := a.records.Load(ctx, a.cfg.PlayerName)
	if err != nil {
		if ctx.Err() != nil {
			return Stats{}, ctx.Err()
		}
		rec = player.NewRecord(a.cfg.PlayerName)
	}
	summary, err := a.history.GetSummary(ctx)
	if err != nil {
		return Stats{}, err
	}
	progress, err := a.history.GetWorldProgressMap(ctx)
	if err != nil {
		return Stats{}, err
	}
	daily, err := a.history.GetDailyChallenge(ctx, day)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Record: rec, Summary: summary, Progress: progress, Daily: daily}, nil
}

// ExportRecord writes the player record file to dst verbatim.
func (a *App) ExportRecord(dst string) error {
	return a.records.Export(a.cfg.PlayerName, dst)
}

// ImportRecord replaces the player record with the file at src.
func (a *App) ImportRecord(src string) (*player.Record, error) {
	return a.records.Import(a.cfg.PlayerName, src)
}

// ResetRecord overwrites the save with a fresh default record. History
// rows are kept; only progression resets.
func (a *App) ResetRecord(ctx context.Context) (*player.Record, error) {
	rec := player.NewRecord(a.cfg.PlayerName)
	if err := a.records.Save(ctx, a.cfg.PlayerName, rec); err != nil {
		return nil, err
	}
	if a.session != nil {
		a.session.Record = rec
	}
	return rec, nil
}
