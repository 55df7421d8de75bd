package scoring

import "testing"

func TestScoreReflectionLengthTiers(t *testing.T) {
	if got := ScoreReflection("brief note", nil); got != 10 {
		t.Fatalf("short reflection: expected 10, got %d", got)
	}
	if got := ScoreReflection("a reflection with real substance to it", nil); got != 25 {
		t.Fatalf("substantive reflection: expected 25, got %d", got)
	}
}

func TestScoreReflectionModeKeywordBonus(t *testing.T) {
	keys := []string{"sub-problem", "decompose", "smaller"}
	got := ScoreReflection("I tried to decompose the task into smaller pieces first.", keys)
	if got != MetaModeMax {
		t.Fatalf("expected %d, got %d", MetaModeMax, got)
	}
	// Keyword bonus applies to short notes too.
	if got := ScoreReflection("decompose it", keys); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}

func TestMetaPercent(t *testing.T) {
	if got := MetaPercent([]int{35, 35, 35}); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := MetaPercent([]int{10, 25, 35}); got != 66 {
		t.Fatalf("expected 66, got %d", got)
	}
}
