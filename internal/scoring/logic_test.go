package scoring

import "testing"

func TestScoreRiddleCountsStepsKeysAndSequencing(t *testing.T) {
	steps := []string{
		"First, note that the surgeon statement rules out the father.",
		"Then the surgeon must be the mother.",
	}
	keys := []string{"surgeon", "mother"}

	// Step 1: 10 (len) + 5 (surgeon) + 3 (first) = 18
	// Step 2: 10 (len) + 5 (surgeon) + 5 (mother) + 3 (then) = 23
	// Key bonus: 2/2 distinct * 50 = 50
	if got := ScoreRiddle(steps, keys); got != 91 {
		t.Fatalf("expected 91, got %d", got)
	}
}

func TestScoreRiddlePartialKeyCoverage(t *testing.T) {
	steps := []string{"I think it involves the surgeon somehow and nothing else at all."}
	keys := []string{"surgeon", "mother", "assumption", "gender"}

	// 10 + 5 + key bonus 1/4*50 = 12 -> 27
	if got := ScoreRiddle(steps, keys); got != 27 {
		t.Fatalf("expected 27, got %d", got)
	}
}

func TestScoreRiddleCapped(t *testing.T) {
	step := "first then next after we check the surgeon mother assumption gender"
	steps := []string{step, step, step, step, step, step, step, step, step, step}
	keys := []string{"surgeon", "mother", "assumption", "gender"}
	if got := ScoreRiddle(steps, keys); got != RiddleMax {
		t.Fatalf("expected cap %d, got %d", RiddleMax, got)
	}
}

func TestScoreRiddleNoKeys(t *testing.T) {
	if got := ScoreRiddle([]string{"a thoughtful step here"}, nil); got != 10 {
		t.Fatalf("expected 10 with no expected keys, got %d", got)
	}
}
