package scoring

import "strings"

// PromptMax caps a prompt quality score.
const PromptMax = 150

// Category point values. One canonical table: 30 for the structural
// categories, 15 for the softer ones, creativity up to 20.
const (
	pointsSystematicity = 30
	pointsRole          = 30
	pointsFormat        = 30
	pointsConstraints   = 15
	pointsAbstraction   = 15
	pointsCreativityHit = 10
	pointsCreativityLen = 10
)

var (
	systematicityKeywords = []string{"step by step", "step-by-step", "chain of thought", "first,", "break down", "systematic"}
	roleKeywords          = []string{"act as", "you are", "expert", "persona", "specialist"}
	formatKeywords        = []string{"table", "json", "outline", "bullet", "markdown", "format your"}
	constraintKeywords    = []string{"constraint", "limit", "boundary", "must not", "no more than", "exactly"}
	abstractionKeywords   = []string{"fundamental", "essence", "first principles", "abstract", "underlying"}
	creativityKeywords    = []string{"analogy", "metaphor", "imagine", "as if", "like a"}
)

// PromptBreakdown itemizes a prompt quality score by category.
type PromptBreakdown struct {
	Systematicity int
	Role          int
	Format        int
	Constraints   int
	Abstraction   int
	Creativity    int
	Total         int
}

// ScorePrompt rates a free-text prompt by detecting prompt-engineering
// techniques with case-insensitive phrase checks. The sum is capped at
// PromptMax.
func ScorePrompt(text string) (PromptBreakdown, error) {
	if len(strings.TrimSpace(text)) < MinTextLen {
		return PromptBreakdown{}, ErrTooShort
	}

	lower := strings.ToLower(text)
	var b PromptBreakdown
	if containsAny(lower, systematicityKeywords) || strings.Contains(lower, "step") {
		b.Systematicity = pointsSystematicity
	}
	if containsAny(lower, roleKeywords) {
		b.Role = pointsRole
	}
	if containsAny(lower, formatKeywords) {
		b.Format = pointsFormat
	}
	if containsAny(lower, constraintKeywords) {
		b.Constraints = pointsConstraints
	}
	if containsAny(lower, abstractionKeywords) {
		b.Abstraction = pointsAbstraction
	}
	if containsAny(lower, creativityKeywords) {
		b.Creativity += pointsCreativityHit
	}
	if wordCount(text) > 30 {
		b.Creativity += pointsCreativityLen
	}

	b.Total = clamp(b.Systematicity+b.Role+b.Format+b.Constraints+b.Abstraction+b.Creativity, 0, PromptMax)
	return b, nil
}

// Feedback lists the categories the prompt scored in, for display.
func (b PromptBreakdown) Feedback() []string {
	var out []string
	if b.Systematicity > 0 {
		out = append(out, "systematic structure")
	}
	if b.Role > 0 {
		out = append(out, "defined role")
	}
	if b.Format > 0 {
		out = append(out, "output format")
	}
	if b.Constraints > 0 {
		out = append(out, "clear constraints")
	}
	if b.Abstraction > 0 {
		out = append(out, "abstraction")
	}
	if b.Creativity > 0 {
		out = append(out, "creative framing")
	}
	return out
}
