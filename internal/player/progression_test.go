package player

import "testing"

func TestGainXPLevelUpAtThreshold(t *testing.T) {
	r := NewRecord("")
	r.XP = 95
	r.Level = 1
	r.Streak = 0

	res := GainXP(r, 10, 0)
	if res.StreakBonus != 0 {
		t.Fatalf("expected no streak bonus, got %d", res.StreakBonus)
	}
	if r.XP != 105 {
		t.Fatalf("expected xp 105, got %d", r.XP)
	}
	if r.Level != 2 || !res.LeveledUp {
		t.Fatalf("expected level 2 (leveled=%v), got %d", res.LeveledUp, r.Level)
	}
	if r.HighScores[0] != 10 {
		t.Fatalf("expected high score 10, got %d", r.HighScores[0])
	}
}

func TestGainXPStreakBonus(t *testing.T) {
	r := NewRecord("")
	r.Streak = 3

	res := GainXP(r, 20, NoWorld)
	if res.StreakBonus != 30 {
		t.Fatalf("expected bonus 30, got %d", res.StreakBonus)
	}
	if res.Awarded != 50 {
		t.Fatalf("expected total awarded 50, got %d", res.Awarded)
	}
}

func TestGainXPHighScoreMonotonicAndExcludesBonus(t *testing.T) {
	r := NewRecord("")
	r.Streak = 10
	r.HighScores[2] = 80

	// 50 raw + 100 bonus: high score must compare against the raw 50 only.
	GainXP(r, 50, 2)
	if r.HighScores[2] != 80 {
		t.Fatalf("high score decreased: got %d", r.HighScores[2])
	}
	GainXP(r, 90, 2)
	if r.HighScores[2] != 90 {
		t.Fatalf("expected high score 90, got %d", r.HighScores[2])
	}
}

func TestGainXPMultiLevelJump(t *testing.T) {
	r := NewRecord("")
	r.XP = 0
	r.Level = 1

	// 0 -> 350 clears level 1 (100), 2 (200), and 3 (300).
	GainXP(r, 350, NoWorld)
	if r.Level != 4 {
		t.Fatalf("expected level 4 after one large gain, got %d", r.Level)
	}
}

func TestGainXPMasteryBadgeCascades(t *testing.T) {
	r := NewRecord("")
	r.Level = 4
	r.XP = 390

	// Crossing into level 5 awards "Level 5 Master" (+50 XP). The bonus is
	// re-checked against the level-5 threshold (500) in the same call.
	res := GainXP(r, 70, NoWorld)
	if !r.HasBadge("Level 5 Master") {
		t.Fatalf("expected mastery badge, got %v", r.Badges)
	}
	if len(res.NewBadges) != 1 || res.NewBadges[0] != "Level 5 Master" {
		t.Fatalf("unexpected new badges: %v", res.NewBadges)
	}
	if r.XP != 510 {
		t.Fatalf("expected xp 510 (390+70+50), got %d", r.XP)
	}
	if r.Level != 6 {
		t.Fatalf("expected badge XP to cascade into level 6, got %d", r.Level)
	}
}

func TestLevelMonotonicAcrossCalls(t *testing.T) {
	r := NewRecord("")
	prev := r.Level
	for _, pts := range []int{5, 0, 200, 1, 999, 0, 3} {
		GainXP(r, pts, NoWorld)
		if r.Level < prev {
			t.Fatalf("level decreased from %d to %d", prev, r.Level)
		}
		prev = r.Level
	}
}

func TestAwardBadgeIdempotent(t *testing.T) {
	r := NewRecord("")
	if !AwardBadge(r, "Veteran") {
		t.Fatalf("expected first award to succeed")
	}
	if AwardBadge(r, "Veteran") {
		t.Fatalf("expected duplicate award to be a no-op")
	}
	if r.XP != BadgeBonusXP {
		t.Fatalf("expected XP %d after single award, got %d", BadgeBonusXP, r.XP)
	}
	if len(r.Badges) != 1 {
		t.Fatalf("expected 1 badge, got %v", r.Badges)
	}
}

func TestEvaluateLifetimeBadges(t *testing.T) {
	r := NewRecord("")
	r.Streak = 7
	r.TotalSessions = 10

	earned := EvaluateLifetimeBadges(r)
	if len(earned) != 2 {
		t.Fatalf("expected 2 badges, got %v", earned)
	}
	if !r.HasBadge("Week Warrior") || !r.HasBadge("Dedicated Trainee") {
		t.Fatalf("missing expected badges: %v", r.Badges)
	}
	// The two bonuses cleared level 1: xp 100 >= 100.
	if r.Level != 2 {
		t.Fatalf("expected badge XP to run the level loop, got level %d", r.Level)
	}
	if again := EvaluateLifetimeBadges(r); len(again) != 0 {
		t.Fatalf("expected second evaluation to award nothing, got %v", again)
	}
}
