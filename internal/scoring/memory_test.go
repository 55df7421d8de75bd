package scoring

import "testing"

func TestNBackTruth(t *testing.T) {
	history := []Stimulus{
		{Position: 1, Letter: "A"},
		{Position: 4, Letter: "B"},
		{Position: 1, Letter: "C"},
	}
	truth := NBackTruth(history, Stimulus{Position: 4, Letter: "C"}, 2)
	if !truth.Position {
		t.Fatalf("expected position match against 2-back")
	}
	if truth.Letter {
		t.Fatalf("did not expect letter match against 2-back")
	}

	// Not enough history: nothing can match.
	truth = NBackTruth(history[:1], Stimulus{Position: 1, Letter: "A"}, 2)
	if truth.Position || truth.Letter {
		t.Fatalf("expected empty truth with short history, got %+v", truth)
	}
}

func TestScoreTrial(t *testing.T) {
	truth := Match{Position: true, Letter: false}
	if got := ScoreTrial(Match{Position: true, Letter: false}, truth); got != 5 {
		t.Fatalf("both correct: expected 5, got %d", got)
	}
	if got := ScoreTrial(Match{Position: true, Letter: true}, truth); got != 2 {
		t.Fatalf("one correct: expected 2, got %d", got)
	}
	if got := ScoreTrial(Match{Position: false, Letter: true}, truth); got != 0 {
		t.Fatalf("none correct: expected 0, got %d", got)
	}
}

func TestSessionPercent(t *testing.T) {
	if got := SessionPercent(75, 15); got != 100 {
		t.Fatalf("perfect session: expected 100, got %d", got)
	}
	if got := SessionPercent(30, 15); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if got := SessionPercent(10, 0); got != 0 {
		t.Fatalf("zero trials: expected 0, got %d", got)
	}
}
