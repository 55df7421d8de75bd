package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"neuroquest/internal/player"
)

// JSONStore persists the player record as one flat JSON file per player
// under its root directory. The format round-trips losslessly; fields
// missing from older files are filled with defaults on load.
type JSONStore struct {
	root string
}

func NewJSONStore(root string) (*JSONStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &JSONStore{root: root}, nil
}

func (s *JSONStore) Load(_ context.Context, playerID string) (*player.Record, error) {
	b, err := os.ReadFile(s.recordPath(playerID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec := &player.Record{}
	if err := json.Unmarshal(b, rec); err != nil {
		// A corrupt save is treated like a missing one; the caller keeps
		// or creates a default record rather than failing the session.
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	rec.Normalize()
	return rec, nil
}

func (s *JSONStore) Save(_ context.Context, playerID string, rec *player.Record) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	path := s.recordPath(playerID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Export copies the record file verbatim to dst; this is the only
// cross-device transfer mechanism.
func (s *JSONStore) Export(playerID, dst string) error {
	b, err := os.ReadFile(s.recordPath(playerID))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

// Import replaces the current record with the file at src. The payload
// must parse as a record; it is then stored verbatim, no merging.
func (s *JSONStore) Import(playerID, src string) (*player.Record, error) {
	b, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	rec := &player.Record{}
	if err := json.Unmarshal(b, rec); err != nil {
		return nil, fmt.Errorf("import %s: %w", src, err)
	}
	rec.Normalize()
	if err := os.WriteFile(s.recordPath(playerID), b, 0o644); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *JSONStore) recordPath(playerID string) string {
	name := strings.TrimSpace(strings.ToLower(playerID))
	if name == "" {
		name = "player"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	return filepath.Join(s.root, name+".json")
}
