package player

// NumWorlds is the number of training worlds tracked per record
// (memory, perspective, logic, prompt).
const NumWorlds = 4

const DefaultName = "Apprentice"

// Record is the single persisted progress entity. It serializes to a flat
// JSON object and must round-trip losslessly; older save files may omit
// fields, which Normalize fills with defaults.
type Record struct {
	Name          string   `json:"name"`
	XP            int      `json:"xp"`
	Level         int      `json:"level"`
	Streak        int      `json:"streak"`
	LastPlay      string   `json:"last_play"`
	HighScores    []int    `json:"high_scores"`
	Badges        []string `json:"badges"`
	WorldUnlocks  []int    `json:"world_unlocks"`
	TotalSessions int      `json:"total_sessions"`
}

// NewRecord returns a fresh record for a first run.
func NewRecord(name string) *Record {
	if name == "" {
		name = DefaultName
	}
	return &Record{
		Name:         name,
		Level:        1,
		HighScores:   make([]int, NumWorlds),
		WorldUnlocks: make([]int, NumWorlds),
	}
}

// Normalize repairs a record loaded from an older or partial save file:
// missing slices are sized, out-of-range counters clamped, duplicate
// badges dropped. It never discards data that is still representable.
func (r *Record) Normalize() {
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.Level < 1 {
		r.Level = 1
	}
	if r.XP < 0 {
		r.XP = 0
	}
	if r.Streak < 0 {
		r.Streak = 0
	}
	if r.TotalSessions < 0 {
		r.TotalSessions = 0
	}
	r.HighScores = fitWorldSlice(r.HighScores)
	r.WorldUnlocks = fitWorldSlice(r.WorldUnlocks)
	r.Badges = dedupeBadges(r.Badges)
}

// HasBadge reports whether the badge is already held.
func (r *Record) HasBadge(name string) bool {
	for _, b := range r.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// XPIntoLevel returns progress within the current level and the XP needed
// to reach the next one.
func (r *Record) XPIntoLevel() (have, need int) {
	need = r.Level * LevelStep
	prev := (r.Level - 1) * LevelStep
	have = r.XP - prev
	if have < 0 {
		have = 0
	}
	return have, need - prev
}

func fitWorldSlice(s []int) []int {
	out := make([]int, NumWorlds)
	for i := 0; i < NumWorlds && i < len(s); i++ {
		if s[i] > 0 {
			out[i] = s[i]
		}
	}
	return out
}

func dedupeBadges(badges []string) []string {
	seen := map[string]struct{}{}
	out := badges[:0]
	for _, b := range badges {
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
