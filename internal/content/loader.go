package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPackYAML []byte

// Default returns the built-in content pack.
func Default() (Pack, error) {
	pack, err := parsePack(defaultPackYAML)
	if err != nil {
		return Pack{}, fmt.Errorf("builtin content pack: %w", err)
	}
	pack.Path = "builtin"
	return pack, nil
}

// Load reads a content pack from dir/pack.yaml, falling back to the
// built-in pack when dir is empty or holds no pack file.
func Load(dir string) (Pack, error) {
	if dir == "" {
		return Default()
	}
	path := filepath.Join(dir, "pack.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return Pack{}, err
	}
	pack, err := parsePack(b)
	if err != nil {
		return Pack{}, fmt.Errorf("load content pack %s: %w", path, err)
	}
	pack.Path = path
	return pack, nil
}

func parsePack(b []byte) (Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return pack, err
	}
	if err := pack.Validate(); err != nil {
		return pack, err
	}
	return pack, nil
}

// Mode returns the thinking mode with the given id, if present.
func (p Pack) Mode(id string) (ThinkingMode, bool) {
	for _, m := range p.ThinkingModes {
		if m.ID == id {
			return m, true
		}
	}
	return ThinkingMode{}, false
}

// RiddleByID returns the riddle with the given id, if present.
func (p Pack) RiddleByID(id string) (Riddle, bool) {
	for _, r := range p.Riddles {
		if r.ID == id {
			return r, true
		}
	}
	return Riddle{}, false
}
