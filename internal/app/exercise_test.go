package app

import (
	"testing"

	"neuroquest/internal/content"
	"neuroquest/internal/scoring"
)

func testPack(t *testing.T) content.Pack {
	t.Helper()
	pack, err := content.Default()
	if err != nil {
		t.Fatalf("builtin pack: %v", err)
	}
	return pack
}

func TestMemoryRoundRunsToCompletion(t *testing.T) {
	pack := testPack(t)
	m := NewMemoryRound(pack, 2, 5, 42)

	for !m.Done() {
		// Answering with the truth every trial scores the trial maximum.
		m.Submit(m.Truth())
	}
	if m.Score != 5*scoring.TrialMax {
		t.Fatalf("perfect play should score %d, got %d", 5*scoring.TrialMax, m.Score)
	}
	if m.Percent() != 100 {
		t.Fatalf("expected 100%%, got %d", m.Percent())
	}
	if len(m.History) != 5 {
		t.Fatalf("expected 5 stimuli in history, got %d", len(m.History))
	}
}

func TestMemoryRoundIsDeterministicPerSeed(t *testing.T) {
	pack := testPack(t)
	a := NewMemoryRound(pack, 2, 10, 7)
	b := NewMemoryRound(pack, 2, 10, 7)

	for !a.Done() {
		if a.Current != b.Current {
			t.Fatalf("stimuli diverged at step %d: %+v vs %+v", a.Step, a.Current, b.Current)
		}
		a.Submit(scoring.Match{})
		b.Submit(scoring.Match{})
	}
}

func TestPerspectiveRoundWalksRoles(t *testing.T) {
	pack := testPack(t)
	p := NewPerspectiveRound(pack, 2, 1)

	if len(p.Roles) != 2 || p.Roles[0] == p.Roles[1] {
		t.Fatalf("expected 2 distinct roles, got %v", p.Roles)
	}
	if p.Scenario == "" {
		t.Fatal("expected a scenario")
	}

	if _, err := p.Submit("too short"); err == nil {
		t.Fatal("expected rejection of a short analysis")
	}
	if p.Done() {
		t.Fatal("rejected input must not advance the round")
	}

	text := "This view matters because the cost and benefit differ for each stakeholder who is involved in the scenario."
	if _, err := p.Submit(text); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if p.CurrentRole() != p.Roles[1] {
		t.Fatalf("expected to advance to second role, got %q", p.CurrentRole())
	}
	if _, err := p.Submit(text); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !p.Done() {
		t.Fatal("round should be done after both roles")
	}
	if p.RawScore() != 2*20 {
		t.Fatalf("expected 40 raw points, got %d", p.RawScore())
	}
	if p.Percent() != 100 {
		t.Fatalf("expected 100%%, got %d", p.Percent())
	}
}

func TestLogicRoundCollectsSteps(t *testing.T) {
	pack := testPack(t)
	l := NewLogicRound(pack, 3)

	if !l.AddStep("first consider the obvious reading") {
		t.Fatal("non-empty step rejected")
	}
	if l.AddStep("") {
		t.Fatal("empty step accepted")
	}
	for !l.Done() {
		l.AddStep("then check the next assumption carefully")
	}
	if len(l.Steps) != l.Riddle.Steps {
		t.Fatalf("expected %d steps, got %d", l.Riddle.Steps, len(l.Steps))
	}
	if l.Score() <= 0 || l.Score() > scoring.RiddleMax {
		t.Fatalf("score out of range: %d", l.Score())
	}
}

func TestMetaRoundPicksThreeModes(t *testing.T) {
	pack := testPack(t)
	m := NewMetaRound(pack, 11)

	if len(m.Modes) != scoring.ModesPerSession {
		t.Fatalf("expected %d modes, got %d", scoring.ModesPerSession, len(m.Modes))
	}
	seen := map[string]bool{}
	for _, mode := range m.Modes {
		if seen[mode.ID] {
			t.Fatalf("duplicate mode %q", mode.ID)
		}
		seen[mode.ID] = true
	}

	for !m.Done() {
		m.Submit("A short note.")
	}
	// Three reflections of the short tier score 10 each.
	if m.Total() != 30 {
		t.Fatalf("expected total 30, got %d", m.Total())
	}
}

func TestBossRoundCombinesPhases(t *testing.T) {
	pack := testPack(t)
	b := NewBossRound(pack, 2, 99)

	for !b.Memory.Done() {
		b.Memory.Submit(b.Memory.Truth())
	}
	text := "Viewed from this role the tradeoff matters because the risk outweighs the short term benefit."
	if _, err := b.Perspective.Submit(text); err != nil {
		t.Fatalf("perspective phase: %v", err)
	}
	b.Meta.Submit(text)

	if !b.Done() {
		t.Fatal("boss round should be complete")
	}
	total := b.Total()
	if total < 50 || total > scoring.BossMax {
		t.Fatalf("boss total out of range: %d", total)
	}
}

func TestRoundSeedStableForDay(t *testing.T) {
	a := RoundSeed(true, "2026-03-01", 1)
	b := RoundSeed(true, "2026-03-01", 2)
	if a != b {
		t.Fatalf("daily seed must ignore the fallback: %d vs %d", a, b)
	}
	if RoundSeed(false, "2026-03-01", 7) != 7 {
		t.Fatal("non-daily seed must use the fallback")
	}
}
