package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"neuroquest/internal/player"
)

// Config controls runtime behavior for the app.
type Config struct {
	DataDir    string
	ContentDir string
	PlayerName string
	LogLevel   string
	Theme      string
	ASCIIOnly  bool
	Gameplay   GameplayConfig
}

type GameplayConfig struct {
	NBackLevel   int
	MemoryTrials int
	Perspectives int
}

func DefaultConfig() Config {
	return Config{
		PlayerName: player.DefaultName,
		LogLevel:   "warn",
		Theme:      "arcade",
		Gameplay: GameplayConfig{
			NBackLevel:   2,
			MemoryTrials: 15,
			Perspectives: 2,
		},
	}
}

func (c *Config) Validate() error {
	if c.PlayerName == "" {
		c.PlayerName = player.DefaultName
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	switch c.Theme {
	case "", "arcade", "cozy", "retro":
	default:
		return fmt.Errorf("invalid theme %q", c.Theme)
	}
	if c.Theme == "" {
		c.Theme = "arcade"
	}
	if c.Gameplay.NBackLevel <= 0 {
		c.Gameplay.NBackLevel = 2
	}
	if c.Gameplay.NBackLevel > 4 {
		return fmt.Errorf("n-back level %d too high (max 4)", c.Gameplay.NBackLevel)
	}
	if c.Gameplay.MemoryTrials <= 0 {
		c.Gameplay.MemoryTrials = 15
	}
	if c.Gameplay.Perspectives <= 0 {
		c.Gameplay.Perspectives = 2
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "neuroquest")
	}
	return nil
}
