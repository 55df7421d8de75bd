package scoring

import "strings"

// PerspectiveMax caps the score of a single perspective analysis.
const PerspectiveMax = 20

var causalKeywords = []string{
	"because", "cost", "risk", "benefit", "therefore", "however", "opportunity",
}

// ScorePerspective scores one free-text analysis written from an assigned
// viewpoint. Base 10 for an accepted answer, +5 for more than 15 words,
// +5 for using causal or evaluative language.
func ScorePerspective(text string) (int, error) {
	if len(strings.TrimSpace(text)) < MinTextLen {
		return 0, ErrTooShort
	}
	score := 10
	if wordCount(text) > 15 {
		score += 5
	}
	if containsAny(strings.ToLower(text), causalKeywords) {
		score += 5
	}
	return score, nil
}

// PerspectivePercent normalizes a session of perspective scores to 0-100.
func PerspectivePercent(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return clamp(sum*100/(len(scores)*PerspectiveMax), 0, 100)
}
