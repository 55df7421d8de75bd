package app

import (
	"math/rand"

	"neuroquest/internal/content"
	"neuroquest/internal/scoring"
	"neuroquest/internal/worlds"
)

// MemoryRound runs one dual N-back session. Stimulus selection is random
// per round; only the daily challenge selection needs determinism.
type MemoryRound struct {
	N      int
	Trials int
	Step   int
	Score  int

	History []scoring.Stimulus
	Current scoring.Stimulus

	rng       *rand.Rand
	letters   []string
	positions []string
}

func NewMemoryRound(pack content.Pack, n, trials int, seed int64) *MemoryRound {
	m := &MemoryRound{
		N:         n,
		Trials:    trials,
		rng:       rand.New(rand.NewSource(seed)),
		letters:   pack.Letters,
		positions: pack.Positions,
	}
	m.Current = m.draw()
	return m
}

func (m *MemoryRound) draw() scoring.Stimulus {
	return scoring.Stimulus{
		Position: m.rng.Intn(len(m.positions)),
		Letter:   m.letters[m.rng.Intn(len(m.letters))],
	}
}

// PositionLabel names the grid cell of the current stimulus.
func (m *MemoryRound) PositionLabel() string {
	return m.positions[m.Current.Position]
}

// Truth computes the ground truth for the current trial.
func (m *MemoryRound) Truth() scoring.Match {
	return scoring.NBackTruth(m.History, m.Current, m.N)
}

// Submit scores the player's claim for the current trial and advances to
// the next stimulus. Returns the points awarded for the trial.
func (m *MemoryRound) Submit(claim scoring.Match) int {
	pts := scoring.ScoreTrial(claim, m.Truth())
	m.Score += pts
	m.History = append(m.History, m.Current)
	m.Step++
	if !m.Done() {
		m.Current = m.draw()
	}
	return pts
}

func (m *MemoryRound) Done() bool { return m.Step >= m.Trials }

func (m *MemoryRound) Percent() int { return scoring.SessionPercent(m.Score, m.Trials) }

// PerspectiveRound asks for one analysis per assigned role, all against
// the same scenario.
type PerspectiveRound struct {
	Scenario string
	Roles    []string
	Scores   []int
}

func NewPerspectiveRound(pack content.Pack, perspectives int, seed int64) *PerspectiveRound {
	rng := rand.New(rand.NewSource(seed))
	scenario := pack.Scenarios[rng.Intn(len(pack.Scenarios))]
	roles := make([]string, 0, perspectives)
	perm := rng.Perm(len(pack.Perspectives))
	for i := 0; i < perspectives && i < len(perm); i++ {
		roles = append(roles, pack.Perspectives[perm[i]])
	}
	return &PerspectiveRound{Scenario: scenario, Roles: roles}
}

// Submit scores the analysis for the current role. Rejected input leaves
// the round where it was.
func (p *PerspectiveRound) Submit(text string) (int, error) {
	score, err := scoring.ScorePerspective(text)
	if err != nil {
		return 0, err
	}
	p.Scores = append(p.Scores, score)
	return score, nil
}

func (p *PerspectiveRound) Done() bool { return len(p.Scores) >= len(p.Roles) }

func (p *PerspectiveRound) CurrentRole() string {
	if p.Done() {
		return ""
	}
	return p.Roles[len(p.Scores)]
}

func (p *PerspectiveRound) Percent() int { return scoring.PerspectivePercent(p.Scores) }

// RawScore is the summed per-perspective score fed into progression.
func (p *PerspectiveRound) RawScore() int {
	sum := 0
	for _, s := range p.Scores {
		sum += s
	}
	return sum
}

// LogicRound collects an ordered breakdown for one riddle.
type LogicRound struct {
	Riddle content.Riddle
	Steps  []string
}

func NewLogicRound(pack content.Pack, seed int64) *LogicRound {
	rng := rand.New(rand.NewSource(seed))
	return &LogicRound{Riddle: pack.Riddles[rng.Intn(len(pack.Riddles))]}
}

// AddStep records one reasoning step. Empty steps are rejected before
// they ever reach the scorer.
func (l *LogicRound) AddStep(text string) bool {
	if len(text) == 0 {
		return false
	}
	l.Steps = append(l.Steps, text)
	return true
}

func (l *LogicRound) Done() bool { return len(l.Steps) >= l.Riddle.Steps }

func (l *LogicRound) Score() int { return scoring.ScoreRiddle(l.Steps, l.Riddle.Keywords) }

// Percent normalizes the riddle score against its cap.
func (l *LogicRound) Percent() int { return l.Score() * 100 / scoring.RiddleMax }

// PromptRound is a single prompt-forging attempt against a target.
type PromptRound struct {
	Target string
}

func NewPromptRound(pack content.Pack, seed int64) *PromptRound {
	rng := rand.New(rand.NewSource(seed))
	return &PromptRound{Target: pack.PromptTargets[rng.Intn(len(pack.PromptTargets))]}
}

func (p *PromptRound) Score(text string) (scoring.PromptBreakdown, error) {
	return scoring.ScorePrompt(text)
}

// MetaRound asks for one reflection per thinking mode.
type MetaRound struct {
	Modes  []content.ThinkingMode
	Scores []int
}

func NewMetaRound(pack content.Pack, seed int64) *MetaRound {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(pack.ThinkingModes))
	modes := make([]content.ThinkingMode, 0, scoring.ModesPerSession)
	for i := 0; i < scoring.ModesPerSession && i < len(perm); i++ {
		modes = append(modes, pack.ThinkingModes[perm[i]])
	}
	return &MetaRound{Modes: modes}
}

func (m *MetaRound) CurrentMode() content.ThinkingMode {
	if m.Done() {
		return content.ThinkingMode{}
	}
	return m.Modes[len(m.Scores)]
}

func (m *MetaRound) Submit(text string) int {
	mode := m.CurrentMode()
	score := scoring.ScoreReflection(text, mode.Keywords)
	m.Scores = append(m.Scores, score)
	return score
}

func (m *MetaRound) Done() bool { return len(m.Scores) >= len(m.Modes) }

func (m *MetaRound) Total() int {
	sum := 0
	for _, s := range m.Scores {
		sum += s
	}
	return sum
}

// BossRound chains a short memory burst, one perspective analysis and
// one reflection into a composite challenge.
type BossRound struct {
	Memory      *MemoryRound
	Perspective *PerspectiveRound
	Meta        *MetaRound
}

const bossMemoryTrials = 6

func NewBossRound(pack content.Pack, nback int, seed int64) *BossRound {
	return &BossRound{
		Memory:      NewMemoryRound(pack, nback, bossMemoryTrials, seed),
		Perspective: NewPerspectiveRound(pack, 1, seed+1),
		Meta:        NewMetaRound(pack, seed+2),
	}
}

func (b *BossRound) Done() bool {
	return b.Memory.Done() && b.Perspective.Done() && len(b.Meta.Scores) >= 1
}

// Total combines the three phases under the boss scoring rule. The meta
// phase uses the first reflection only.
func (b *BossRound) Total() int {
	meta := 0
	if len(b.Meta.Scores) > 0 {
		meta = b.Meta.Scores[0]
	}
	return scoring.ScoreBoss(b.Memory.Percent(), b.Perspective.RawScore(), meta)
}

// RoundSeed derives a stable seed for daily rounds and a varied one
// otherwise.
func RoundSeed(daily bool, day string, fallback int64) int64 {
	if daily {
		return int64(worlds.DailyIndex(day, 1<<30))
	}
	return fallback
}
