package player

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpdateStreakConsecutiveDay(t *testing.T) {
	r := NewRecord("")
	r.Streak = 4
	r.LastPlay = "2024-01-01"

	if !UpdateStreak(r, day("2024-01-02")) {
		t.Fatalf("expected a counted session on a new day")
	}
	if r.Streak != 5 {
		t.Fatalf("expected streak 5, got %d", r.Streak)
	}
	if r.LastPlay != "2024-01-02" {
		t.Fatalf("expected last_play advanced, got %q", r.LastPlay)
	}
	if r.TotalSessions != 1 {
		t.Fatalf("expected total_sessions incremented, got %d", r.TotalSessions)
	}
}

func TestUpdateStreakGapResets(t *testing.T) {
	r := NewRecord("")
	r.Streak = 9
	r.LastPlay = "2024-01-01"

	UpdateStreak(r, day("2024-01-10"))
	if r.Streak != 1 {
		t.Fatalf("expected streak reset to 1 after gap, got %d", r.Streak)
	}
	if r.LastPlay != "2024-01-10" {
		t.Fatalf("expected last_play advanced, got %q", r.LastPlay)
	}
}

func TestUpdateStreakSameDayIdempotent(t *testing.T) {
	r := NewRecord("")
	r.LastPlay = "2024-03-05"
	r.Streak = 3
	r.TotalSessions = 12

	if UpdateStreak(r, day("2024-03-05")) {
		t.Fatalf("same-day update must not count a session")
	}
	if r.Streak != 3 || r.TotalSessions != 12 {
		t.Fatalf("same-day update mutated record: streak=%d sessions=%d", r.Streak, r.TotalSessions)
	}
}

func TestUpdateStreakUnparseableLastPlay(t *testing.T) {
	for _, last := range []string{"", "not-a-date", "01/02/2024"} {
		r := NewRecord("")
		r.Streak = 6
		r.LastPlay = last
		UpdateStreak(r, day("2024-06-01"))
		if r.Streak != 1 {
			t.Fatalf("last_play %q: expected reset to 1, got %d", last, r.Streak)
		}
		if r.LastPlay != "2024-06-01" {
			t.Fatalf("last_play %q: expected today, got %q", last, r.LastPlay)
		}
	}
}
