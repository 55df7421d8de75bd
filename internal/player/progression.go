package player

import "fmt"

const (
	// StreakBonusPerDay is the XP bonus granted per consecutive play day.
	StreakBonusPerDay = 10

	// LevelStep is the XP width of one level: level N is cleared once
	// xp >= N*100.
	LevelStep = 100

	// BadgeBonusXP is granted the first time any badge is awarded.
	BadgeBonusXP = 50

	// A "Level N Master" badge lands on every fifth level.
	masteryLevelEvery = 5
)

// NoWorld marks an XP gain that should not be compared against any
// per-world high score (boss rounds, lifetime badge bonuses).
const NoWorld = -1

// XPResult describes what a single GainXP call changed.
type XPResult struct {
	// Awarded is the XP credited by this call: base points plus streak
	// bonus. Badge bonuses triggered by level-ups are excluded.
	Awarded     int
	StreakBonus int
	LeveledUp   bool
	NewLevel    int
	NewBadges   []string
}

// Message renders the result the way the session log shows it.
func (x XPResult) Message() string {
	msg := fmt.Sprintf("+%d XP (+%d streak bonus)", x.Awarded-x.StreakBonus, x.StreakBonus)
	if x.LeveledUp {
		msg += fmt.Sprintf(" | LEVEL UP! You are Level %d!", x.NewLevel)
	}
	return msg
}

// GainXP credits basePoints plus the streak bonus, updates the per-world
// high score when worldIndex is a valid world, and runs the level-up loop.
// The high-score comparison uses the raw basePoints only; bonuses never
// inflate it. High scores are monotonic.
//
// Leveling can cascade: a badge awarded at a milestone level adds XP,
// and that XP is checked against the next threshold in the same loop, so
// a record can never end a call sitting above its own level threshold.
func GainXP(r *Record, basePoints, worldIndex int) XPResult {
	res := XPResult{StreakBonus: r.Streak * StreakBonusPerDay}
	res.Awarded = basePoints + res.StreakBonus
	r.XP += res.Awarded

	if worldIndex >= 0 && worldIndex < NumWorlds && basePoints > r.HighScores[worldIndex] {
		r.HighScores[worldIndex] = basePoints
	}

	oldLevel := r.Level
	res.NewBadges = append(res.NewBadges, runLevelLoop(r)...)
	res.LeveledUp = r.Level > oldLevel
	res.NewLevel = r.Level
	return res
}

// runLevelLoop raises the level while the XP total clears the next
// threshold, awarding mastery badges along the way. Badge XP lands inside
// the loop, so it is re-checked against subsequent thresholds.
func runLevelLoop(r *Record) []string {
	var earned []string
	for r.XP >= r.Level*LevelStep {
		r.Level++
		if r.Level%masteryLevelEvery == 0 {
			name := fmt.Sprintf("Level %d Master", r.Level)
			if AwardBadge(r, name) {
				earned = append(earned, name)
			}
		}
	}
	return earned
}
