// Package scoring holds the pure per-exercise scorers. Scorers map typed
// exercise input to an integer score in a fixed range and never touch
// player state; progression happens after a scorer returns.
package scoring

import (
	"errors"
	"strings"
)

// ErrTooShort rejects free-text input below the minimum length. Callers
// surface it to the user and must not mutate state or award XP.
var ErrTooShort = errors.New("response too short")

// MinTextLen is the minimum free-text length accepted by the text scorers.
const MinTextLen = 10

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
