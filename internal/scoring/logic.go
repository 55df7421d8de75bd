package scoring

import "strings"

// RiddleMax caps a riddle breakdown score.
const RiddleMax = 150

var sequencingWords = []string{"then", "next", "after", "first", "second"}

// ScoreRiddle scores an ordered breakdown of a riddle into reasoning
// steps against the riddle's expected keyword phrases.
//
// Per step: +10 for a substantive step (more than 5 chars), +5 for every
// expected phrase found in it (case-insensitive), +3 for sequencing
// language. A key-coverage bonus of up to 50 scales with how many
// distinct expected phrases appear anywhere in the breakdown.
func ScoreRiddle(steps []string, expectedKeys []string) int {
	base := 0
	hit := make([]bool, len(expectedKeys))
	for _, step := range steps {
		lower := strings.ToLower(step)
		if len(strings.TrimSpace(step)) > 5 {
			base += 10
		}
		for i, key := range expectedKeys {
			if strings.Contains(lower, strings.ToLower(key)) {
				base += 5
				hit[i] = true
			}
		}
		if containsAny(lower, sequencingWords) {
			base += 3
		}
	}

	keyBonus := 0
	if len(expectedKeys) > 0 {
		distinct := 0
		for _, h := range hit {
			if h {
				distinct++
			}
		}
		keyBonus = distinct * 50 / len(expectedKeys)
	}

	return clamp(base+keyBonus, 0, RiddleMax)
}
