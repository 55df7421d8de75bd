package content

import (
	"fmt"
	"regexp"
)

const (
	PackKind               = "content_pack"
	SupportedSchemaVersion = 1

	minThinkingModes = 4
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,63}$`)

// Pack is the exercise material for all worlds: stimuli for the memory
// drill, scenario/role pairs for perspective work, riddles with their
// expected reasoning keywords, prompt targets, and the thinking modes
// used by the meta-cognition reflection.
type Pack struct {
	Kind          string `yaml:"kind"`
	SchemaVersion int    `yaml:"schema_version"`
	Name          string `yaml:"name"`

	Letters       []string       `yaml:"letters"`
	Positions     []string       `yaml:"positions"`
	Scenarios     []string       `yaml:"scenarios"`
	Perspectives  []string       `yaml:"perspectives"`
	PromptTargets []string       `yaml:"prompt_targets"`
	Riddles       []Riddle       `yaml:"riddles"`
	ThinkingModes []ThinkingMode `yaml:"thinking_modes"`

	Path string `yaml:"-"`
}

// Riddle is a step-logic exercise: the question plus the keyword phrases
// a good breakdown is expected to touch.
type Riddle struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Steps    int      `yaml:"steps"`
	Keywords []string `yaml:"keywords"`
}

// ThinkingMode is one meta-cognition stance with its own vocabulary.
type ThinkingMode struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	Hint     string   `yaml:"hint"`
	Keywords []string `yaml:"keywords"`
}

func (p Pack) Validate() error {
	if p.Kind != PackKind {
		return fmt.Errorf("kind must be %q", PackKind)
	}
	if p.SchemaVersion == 0 {
		return fmt.Errorf("schema_version is required")
	}
	if p.SchemaVersion > SupportedSchemaVersion {
		return fmt.Errorf("unsupported schema_version %d (max supported %d)", p.SchemaVersion, SupportedSchemaVersion)
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.Letters) < 2 {
		return fmt.Errorf("letters needs at least 2 entries")
	}
	if len(p.Positions) != 9 {
		return fmt.Errorf("positions must describe the 3x3 grid (9 entries), got %d", len(p.Positions))
	}
	if len(p.Scenarios) == 0 || len(p.Perspectives) == 0 {
		return fmt.Errorf("scenarios and perspectives are required")
	}
	if len(p.PromptTargets) == 0 {
		return fmt.Errorf("prompt_targets are required")
	}
	if len(p.Riddles) == 0 {
		return fmt.Errorf("at least one riddle is required")
	}
	seen := map[string]struct{}{}
	for _, r := range p.Riddles {
		if !idPattern.MatchString(r.ID) {
			return fmt.Errorf("invalid riddle id %q", r.ID)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("duplicate riddle id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.Question == "" {
			return fmt.Errorf("riddle %s: question is required", r.ID)
		}
		if r.Steps < 1 || r.Steps > 10 {
			return fmt.Errorf("riddle %s: steps must be 1..10", r.ID)
		}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("riddle %s: keywords are required", r.ID)
		}
	}
	if len(p.ThinkingModes) < minThinkingModes {
		return fmt.Errorf("at least %d thinking modes are required, got %d", minThinkingModes, len(p.ThinkingModes))
	}
	seenModes := map[string]struct{}{}
	for _, m := range p.ThinkingModes {
		if !idPattern.MatchString(m.ID) {
			return fmt.Errorf("invalid thinking mode id %q", m.ID)
		}
		if _, ok := seenModes[m.ID]; ok {
			return fmt.Errorf("duplicate thinking mode id %q", m.ID)
		}
		seenModes[m.ID] = struct{}{}
		if m.Label == "" {
			return fmt.Errorf("thinking mode %s: label is required", m.ID)
		}
		if len(m.Keywords) == 0 {
			return fmt.Errorf("thinking mode %s: keywords are required", m.ID)
		}
	}
	return nil
}
