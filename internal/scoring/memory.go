package scoring

// TrialMax is the score of a fully correct dual N-back trial.
const TrialMax = 5

// Stimulus is one dual N-back card: a grid cell and a letter.
type Stimulus struct {
	Position int
	Letter   string
}

// Match is a pair of yes/no judgements about the current stimulus versus
// the one N steps back. It doubles as the player's claim and the ground
// truth.
type Match struct {
	Position bool
	Letter   bool
}

// NBackTruth computes the ground truth for the current stimulus against
// the stimulus exactly n steps back in history. With fewer than n prior
// stimuli there is nothing to match.
func NBackTruth(history []Stimulus, current Stimulus, n int) Match {
	if n <= 0 || len(history) < n {
		return Match{}
	}
	ref := history[len(history)-n]
	return Match{
		Position: current.Position == ref.Position,
		Letter:   current.Letter == ref.Letter,
	}
}

// ScoreTrial awards 5 points when both judgements are right, 2 when
// exactly one is, and nothing otherwise.
func ScoreTrial(claim, truth Match) int {
	correct := 0
	if claim.Position == truth.Position {
		correct++
	}
	if claim.Letter == truth.Letter {
		correct++
	}
	switch correct {
	case 2:
		return TrialMax
	case 1:
		return 2
	default:
		return 0
	}
}

// SessionPercent normalizes summed trial scores to 0-100.
func SessionPercent(totalScore, trials int) int {
	if trials <= 0 {
		return 0
	}
	return clamp(totalScore*100/(trials*TrialMax), 0, 100)
}
