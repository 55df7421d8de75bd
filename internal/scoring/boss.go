package scoring

// BossMax caps a composite boss round.
const BossMax = 200

// bossCompletionBonus is the flat bonus for finishing all three phases.
const bossCompletionBonus = 50

// ScoreBoss combines one round each of memory, perspective and
// meta-cognition scoring into a boss total. Each sub-score contributes at
// most 50, finishing grants the flat bonus, and the result is capped.
func ScoreBoss(memoryPercent, perspectiveScore, metaScore int) int {
	total := clamp(memoryPercent, 0, 50) +
		clamp(perspectiveScore, 0, 50) +
		clamp(metaScore, 0, 50) +
		bossCompletionBonus
	return clamp(total, 0, BossMax)
}
