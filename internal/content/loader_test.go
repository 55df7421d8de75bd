package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPackValidates(t *testing.T) {
	pack, err := Default()
	if err != nil {
		t.Fatalf("builtin pack must validate: %v", err)
	}
	if pack.Name == "" {
		t.Fatalf("expected pack name")
	}
	if len(pack.Positions) != 9 {
		t.Fatalf("expected a 3x3 grid, got %d positions", len(pack.Positions))
	}
	if _, ok := pack.Mode("recursive"); !ok {
		t.Fatalf("expected recursive thinking mode")
	}
	if _, ok := pack.RiddleByID("surgeon"); !ok {
		t.Fatalf("expected surgeon riddle")
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	pack, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected builtin fallback, got %v", err)
	}
	if pack.Path != "builtin" {
		t.Fatalf("expected builtin path marker, got %q", pack.Path)
	}
}

func TestLoadCustomPack(t *testing.T) {
	dir := t.TempDir()
	custom := strings.Replace(string(defaultPackYAML), "name: NeuroQuest Core", "name: Custom Pack", 1)
	if err := os.WriteFile(filepath.Join(dir, "pack.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	pack, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if pack.Name != "Custom Pack" {
		t.Fatalf("expected custom pack, got %q", pack.Name)
	}
}

func TestLoadRejectsInvalidPack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pack.yaml"), []byte("kind: content_pack\nschema_version: 1\nname: broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected validation error for incomplete pack")
	}
}

func TestValidateCatchesDuplicateRiddleIDs(t *testing.T) {
	pack, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	pack.Riddles = append(pack.Riddles, pack.Riddles[0])
	if err := pack.Validate(); err == nil {
		t.Fatalf("expected duplicate riddle id error")
	}
}
