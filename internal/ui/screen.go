package ui

// Screen identifies which view owns input and rendering. Transitions go
// through Root.setScreen only, so every screen change is explicit and
// the previous screen's transient state is torn down in one place.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenMemory
	ScreenPerspective
	ScreenLogic
	ScreenPrompt
	ScreenMeta
	ScreenBoss
	ScreenResult
	ScreenStats
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenMemory:
		return "memory"
	case ScreenPerspective:
		return "perspective"
	case ScreenLogic:
		return "logic"
	case ScreenPrompt:
		return "prompt"
	case ScreenMeta:
		return "meta"
	case ScreenBoss:
		return "boss"
	case ScreenResult:
		return "result"
	case ScreenStats:
		return "stats"
	default:
		return "unknown"
	}
}
