// Package worlds maps session outcomes to world advancement. It is thin
// sequencing logic on top of the player record: unlock thresholds, boss
// scheduling, and daily challenge selection.
package worlds

import "neuroquest/internal/player"

// World identifies one of the four training worlds. The integer value
// indexes the record's high_scores and world_unlocks slices.
type World int

const (
	Memory World = iota
	Perspective
	Logic
	Prompt
)

// All lists the worlds in menu order.
var All = []World{Memory, Perspective, Logic, Prompt}

func (w World) String() string {
	switch w {
	case Memory:
		return "memory"
	case Perspective:
		return "perspective"
	case Logic:
		return "logic"
	case Prompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// Title is the display name shown in the menu.
func (w World) Title() string {
	switch w {
	case Memory:
		return "Memory Boost"
	case Perspective:
		return "Perspective Switch"
	case Logic:
		return "Step Logic"
	case Prompt:
		return "Prompt Forge"
	default:
		return "Unknown"
	}
}

// Valid reports whether w indexes a real world.
func (w World) Valid() bool {
	return w >= 0 && int(w) < player.NumWorlds
}

// Normalized session percentage a run must exceed to advance the world's
// unlock tier.
var unlockThresholds = [player.NumWorlds]int{
	Memory:      70,
	Perspective: 65,
	Logic:       80,
	Prompt:      70,
}

// UnlockThreshold returns the percent a session must exceed to advance.
func UnlockThreshold(w World) int {
	if !w.Valid() {
		return 100
	}
	return unlockThresholds[w]
}

// ApplyUnlock advances the world's unlock tier when the session percent
// exceeds the world threshold. Tiers only ever move forward.
func ApplyUnlock(r *player.Record, w World, percent int) bool {
	if !w.Valid() || percent <= unlockThresholds[w] {
		return false
	}
	r.WorldUnlocks[w]++
	return true
}

// BossDue reports whether the given unlock tier lands on a boss round:
// every third unlocked tier is a composite challenge.
func BossDue(tier int) bool {
	return tier > 0 && tier%3 == 0
}
