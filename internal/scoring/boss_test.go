package scoring

import "testing"

func TestScoreBossCapsSubScores(t *testing.T) {
	// 100% memory, 20/20 perspective and 35 meta all clamp or pass through.
	if got := ScoreBoss(100, 20, 35); got != 50+20+35+50 {
		t.Fatalf("expected 155, got %d", got)
	}
}

func TestScoreBossFloorAndCeiling(t *testing.T) {
	if got := ScoreBoss(0, 0, 0); got != 50 {
		t.Fatalf("completion bonus alone: expected 50, got %d", got)
	}
	if got := ScoreBoss(500, 500, 500); got != BossMax {
		t.Fatalf("expected cap %d, got %d", BossMax, got)
	}
}
