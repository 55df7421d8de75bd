package app

import "testing"

func TestConfigValidateFillsDefaults(t *testing.T) {
	cfg := Config{DataDir: t.TempDir()}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.PlayerName == "" || cfg.Theme != "arcade" || cfg.LogLevel != "warn" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Gameplay.NBackLevel != 2 || cfg.Gameplay.MemoryTrials != 15 {
		t.Fatalf("gameplay defaults not applied: %+v", cfg.Gameplay)
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Theme = "vaporwave"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown theme")
	}

	cfg = DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Gameplay.NBackLevel = 9
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for n-back level out of range")
	}
}
