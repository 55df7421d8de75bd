package player

import "testing"

func TestNewRecordDefaults(t *testing.T) {
	r := NewRecord("")
	if r.Name != DefaultName {
		t.Fatalf("expected default name, got %q", r.Name)
	}
	if r.Level != 1 || r.XP != 0 || r.Streak != 0 {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if len(r.HighScores) != NumWorlds || len(r.WorldUnlocks) != NumWorlds {
		t.Fatalf("expected %d-world slices, got %d/%d", NumWorlds, len(r.HighScores), len(r.WorldUnlocks))
	}
}

func TestNormalizeRepairsPartialRecord(t *testing.T) {
	r := &Record{
		Name:       "Nova",
		Level:      0,
		XP:         -5,
		Streak:     -1,
		HighScores: []int{40, 55},
		Badges:     []string{"Veteran", "", "Veteran", "Week Warrior"},
	}
	r.Normalize()

	if r.Level != 1 || r.XP != 0 || r.Streak != 0 {
		t.Fatalf("counters not clamped: %+v", r)
	}
	if len(r.HighScores) != NumWorlds || r.HighScores[0] != 40 || r.HighScores[1] != 55 {
		t.Fatalf("high scores not preserved/extended: %v", r.HighScores)
	}
	if len(r.WorldUnlocks) != NumWorlds {
		t.Fatalf("world unlocks not defaulted: %v", r.WorldUnlocks)
	}
	if len(r.Badges) != 2 {
		t.Fatalf("badges not deduped: %v", r.Badges)
	}
}

func TestXPIntoLevel(t *testing.T) {
	r := NewRecord("")
	r.Level = 3
	r.XP = 250

	have, need := r.XPIntoLevel()
	if have != 50 || need != 100 {
		t.Fatalf("expected 50/100 into level 3, got %d/%d", have, need)
	}
}
