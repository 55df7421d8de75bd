package scoring

import "strings"

// MetaModeMax caps the reflection score for one thinking mode.
const MetaModeMax = 35

// ModesPerSession is how many thinking modes one reflection session covers.
const ModesPerSession = 3

// ScoreReflection scores one free-text reflection written in a specific
// thinking mode. Short notes earn the base 10, substantive ones 25, and
// matching the mode's own vocabulary adds 10.
func ScoreReflection(text string, modeKeywords []string) int {
	score := 10
	if len(strings.TrimSpace(text)) > 15 {
		score = 25
	}
	lowered := make([]string, len(modeKeywords))
	for i, k := range modeKeywords {
		lowered[i] = strings.ToLower(k)
	}
	if containsAny(strings.ToLower(text), lowered) {
		score += 10
	}
	return score
}

// MetaPercent normalizes a reflection session (one score per mode) to 0-100.
func MetaPercent(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return clamp(sum*100/(len(scores)*MetaModeMax), 0, 100)
}
