package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"neuroquest/internal/app"
	"neuroquest/internal/scoring"
	"neuroquest/internal/state"
	"neuroquest/internal/worlds"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Submit   key.Binding
	Position key.Binding
	Letter   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Submit, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Submit, k.Position, k.Letter}, {k.Back, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "submit")),
		Position: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "position match")),
		Letter:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "letter match")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

type menuItem struct {
	label string
	world worlds.World
	kind  string
}

// Root is the top-level bubbletea model. All screen transitions funnel
// through setScreen.
type Root struct {
	app   *app.App
	theme Theme
	ascii bool

	screen Screen
	width  int
	height int

	keymap keyMap
	help   help.Model

	menuItems []menuItem
	menuIndex int

	session *app.Session
	daily   *state.DailyChallenge

	bossPhase int

	mem    *app.MemoryRound
	claim  scoring.Match
	persp  *app.PerspectiveRound
	logic  *app.LogicRound
	prompt *app.PromptRound
	meta   *app.MetaRound
	boss   *app.BossRound

	text  textarea.Model
	step  textinput.Model
	flash string

	result      app.CompletionResult
	resultTitle string
	breakdown   *scoring.PromptBreakdown

	stats app.Stats
	err   error
}

func NewRoot(a *app.App) *Root {
	cfg := a.Config()
	text := textarea.New()
	text.Placeholder = "Type your answer..."
	text.SetWidth(70)
	text.SetHeight(6)
	text.CharLimit = 2000

	step := textinput.New()
	step.Placeholder = "Next step..."
	step.CharLimit = 300
	step.Width = 70

	r := &Root{
		app:    a,
		theme:  ThemeForVariant(cfg.Theme),
		ascii:  cfg.ASCIIOnly,
		screen: ScreenMenu,
		keymap: defaultKeyMap(),
		help:   help.New(),
		text:   text,
		step:   step,
		width:  100,
		height: 30,
	}
	r.menuItems = []menuItem{
		{label: "Memory Boost", world: worlds.Memory, kind: "world"},
		{label: "Perspective Switch", world: worlds.Perspective, kind: "world"},
		{label: "Step Logic", world: worlds.Logic, kind: "world"},
		{label: "Prompt Forge", world: worlds.Prompt, kind: "world"},
		{label: "Meta Mode", kind: "meta"},
		{label: "Daily Challenge", kind: "daily"},
		{label: "Boss Challenge", kind: "boss"},
		{label: "Stats", kind: "stats"},
		{label: "Quit", kind: "quit"},
	}
	return r
}

type sessionMsg struct {
	session *app.Session
	daily   *state.DailyChallenge
	err     error
}

func (r *Root) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()
		s, err := r.app.StartSession(ctx, now)
		if err != nil {
			return sessionMsg{err: err}
		}
		daily, err := r.app.Daily(ctx, now)
		if err != nil {
			r.app.Logger().Warn("daily challenge lookup failed", "err", err)
			return sessionMsg{session: s}
		}
		return sessionMsg{session: s, daily: &daily}
	}
}

func (r *Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
		r.text.SetWidth(min(70, msg.Width-8))
		return r, nil
	case sessionMsg:
		if msg.err != nil {
			r.err = msg.err
			return r, tea.Quit
		}
		r.session = msg.session
		r.daily = msg.daily
		return r, nil
	case tea.KeyMsg:
		if key.Matches(msg, r.keymap.Quit) && r.screen == ScreenMenu {
			return r, tea.Quit
		}
		if msg.Type == tea.KeyCtrlC {
			return r, tea.Quit
		}
		return r.handleKey(msg)
	}
	return r.updateInputs(msg)
}

func (r *Root) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch r.screen {
	case ScreenPerspective, ScreenPrompt, ScreenMeta:
		r.text, cmd = r.text.Update(msg)
	case ScreenLogic:
		r.step, cmd = r.step.Update(msg)
	case ScreenBoss:
		if r.bossPhase > 0 {
			r.text, cmd = r.text.Update(msg)
		}
	}
	return r, cmd
}

func (r *Root) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch r.screen {
	case ScreenMenu:
		return r.handleMenuKey(msg)
	case ScreenMemory:
		return r.handleMemoryKey(msg)
	case ScreenPerspective:
		return r.handleTextKey(msg, r.submitPerspective)
	case ScreenLogic:
		return r.handleLogicKey(msg)
	case ScreenPrompt:
		return r.handleTextKey(msg, r.submitPrompt)
	case ScreenMeta:
		return r.handleTextKey(msg, r.submitMeta)
	case ScreenBoss:
		return r.handleBossKey(msg)
	case ScreenResult, ScreenStats:
		if key.Matches(msg, r.keymap.Back) || key.Matches(msg, r.keymap.Select) {
			r.setScreen(ScreenMenu)
		}
		return r, nil
	}
	return r, nil
}

func (r *Root) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keymap.Up):
		if r.menuIndex > 0 {
			r.menuIndex--
		}
	case key.Matches(msg, r.keymap.Down):
		if r.menuIndex < len(r.menuItems)-1 {
			r.menuIndex++
		}
	case key.Matches(msg, r.keymap.Select):
		return r.selectMenuItem(r.menuItems[r.menuIndex])
	}
	return r, nil
}

func (r *Root) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item.kind {
	case "quit":
		return r, tea.Quit
	case "stats":
		return r.openStats()
	case "world":
		r.startWorld(item.world, rand.Int63())
	case "meta":
		r.startMeta(rand.Int63())
	case "daily":
		r.startDaily()
	case "boss":
		r.startBoss()
	}
	return r, nil
}

func (r *Root) openStats() (tea.Model, tea.Cmd) {
	stats, err := r.app.Stats(context.Background(), worlds.Today(time.Now()))
	if err != nil {
		r.flash = err.Error()
		return r, nil
	}
	r.stats = stats
	r.setScreen(ScreenStats)
	return r, nil
}

func (r *Root) startWorld(w worlds.World, seed int64) {
	cfg := r.app.Config()
	pack := r.app.Pack()
	switch w {
	case worlds.Memory:
		r.mem = app.NewMemoryRound(pack, cfg.Gameplay.NBackLevel, cfg.Gameplay.MemoryTrials, seed)
		r.claim = scoring.Match{}
		r.setScreen(ScreenMemory)
	case worlds.Perspective:
		r.persp = app.NewPerspectiveRound(pack, cfg.Gameplay.Perspectives, seed)
		r.setScreen(ScreenPerspective)
	case worlds.Logic:
		r.logic = app.NewLogicRound(pack, seed)
		r.setScreen(ScreenLogic)
	case worlds.Prompt:
		r.prompt = app.NewPromptRound(pack, seed)
		r.setScreen(ScreenPrompt)
	}
}

func (r *Root) startMeta(seed int64) {
	r.meta = app.NewMetaRound(r.app.Pack(), seed)
	r.setScreen(ScreenMeta)
}

func (r *Root) startDaily() {
	if r.daily == nil {
		r.flash = "Daily challenge unavailable."
		return
	}
	if r.daily.Completed {
		r.flash = "Today's challenge is already complete. Come back tomorrow!"
		return
	}
	day := r.daily.Day
	seed := app.RoundSeed(true, day, 0)
	for _, w := range worlds.All {
		if w.String() == r.daily.World {
			r.startWorld(w, seed)
			return
		}
	}
}

func (r *Root) startBoss() {
	cfg := r.app.Config()
	r.boss = app.NewBossRound(r.app.Pack(), cfg.Gameplay.NBackLevel, rand.Int63())
	r.bossPhase = 0
	r.claim = scoring.Match{}
	r.setScreen(ScreenBoss)
}

func (r *Root) handleMemoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := r.mem
	switch {
	case key.Matches(msg, r.keymap.Back):
		r.setScreen(ScreenMenu)
	case key.Matches(msg, r.keymap.Position):
		r.claim.Position = !r.claim.Position
	case key.Matches(msg, r.keymap.Letter):
		r.claim.Letter = !r.claim.Letter
	case key.Matches(msg, r.keymap.Select):
		m.Submit(r.claim)
		r.claim = scoring.Match{}
		if m.Done() {
			res := r.app.CompleteExercise(context.Background(), worlds.Memory, m.Score, m.Percent(), time.Now())
			r.showResult("Memory Boost", res)
		}
	}
	return r, nil
}

func (r *Root) handleTextKey(msg tea.KeyMsg, submit func(string)) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keymap.Back):
		r.setScreen(ScreenMenu)
		return r, nil
	case key.Matches(msg, r.keymap.Submit):
		submit(r.text.Value())
		return r, nil
	}
	return r.updateInputs(msg)
}

func (r *Root) submitPerspective(text string) {
	score, err := r.persp.Submit(text)
	if err != nil {
		r.flash = "Give it a bit more thought (at least 10 characters)."
		return
	}
	r.flash = fmt.Sprintf("Scored %d/%d for that perspective.", score, scoring.PerspectiveMax)
	r.text.Reset()
	if r.persp.Done() {
		res := r.app.CompleteExercise(context.Background(), worlds.Perspective, r.persp.RawScore(), r.persp.Percent(), time.Now())
		r.showResult("Perspective Switch", res)
	}
}

func (r *Root) submitPrompt(text string) {
	bd, err := r.prompt.Score(text)
	if err != nil {
		r.flash = "Prompts this short rarely work. Add detail."
		return
	}
	r.flash = ""
	r.text.Reset()
	r.breakdown = &bd
	percent := bd.Total * 100 / scoring.PromptMax
	res := r.app.CompleteExercise(context.Background(), worlds.Prompt, bd.Total, percent, time.Now())
	r.showResult("Prompt Forge", res)
}

func (r *Root) submitMeta(text string) {
	if strings.TrimSpace(text) == "" {
		r.flash = "Write a short reflection first."
		return
	}
	r.flash = ""
	r.meta.Submit(text)
	r.text.Reset()
	if r.meta.Done() {
		res := r.app.CompleteMeta(context.Background(), r.meta.Total(), scoring.MetaPercent(r.meta.Scores), time.Now())
		r.showResult("Meta Mode", res)
	}
}

func (r *Root) handleLogicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keymap.Back):
		r.setScreen(ScreenMenu)
		return r, nil
	case key.Matches(msg, r.keymap.Select):
		if !r.logic.AddStep(strings.TrimSpace(r.step.Value())) {
			r.flash = "Each step needs some substance."
			return r, nil
		}
		r.flash = ""
		r.step.Reset()
		if r.logic.Done() {
			res := r.app.CompleteExercise(context.Background(), worlds.Logic, r.logic.Score(), r.logic.Percent(), time.Now())
			r.showResult("Step Logic", res)
		}
		return r, nil
	}
	return r.updateInputs(msg)
}

func (r *Root) handleBossKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, r.keymap.Back) {
		r.setScreen(ScreenMenu)
		return r, nil
	}
	b := r.boss
	switch r.bossPhase {
	case 0: // memory burst
		switch {
		case key.Matches(msg, r.keymap.Position):
			r.claim.Position = !r.claim.Position
		case key.Matches(msg, r.keymap.Letter):
			r.claim.Letter = !r.claim.Letter
		case key.Matches(msg, r.keymap.Select):
			b.Memory.Submit(r.claim)
			r.claim = scoring.Match{}
			if b.Memory.Done() {
				r.bossPhase = 1
				return r, r.text.Focus()
			}
		}
		return r, nil
	case 1: // perspective
		if key.Matches(msg, r.keymap.Submit) {
			if _, err := b.Perspective.Submit(r.text.Value()); err != nil {
				r.flash = "Give it a bit more thought (at least 10 characters)."
				return r, nil
			}
			r.flash = ""
			r.text.Reset()
			r.bossPhase = 2
			return r, nil
		}
	case 2: // reflection
		if key.Matches(msg, r.keymap.Submit) {
			b.Meta.Submit(r.text.Value())
			r.text.Reset()
			res := r.app.CompleteBoss(context.Background(), b.Total(), time.Now())
			r.showResult("Boss Challenge", res)
			return r, nil
		}
	}
	return r.updateInputs(msg)
}

func (r *Root) showResult(title string, res app.CompletionResult) {
	r.result = res
	r.resultTitle = title
	if d, err := r.app.Daily(context.Background(), time.Now()); err == nil {
		r.daily = &d
	}
	r.setScreen(ScreenResult)
}

// setScreen is the single transition point. Transient input state never
// leaks from one screen into the next.
func (r *Root) setScreen(s Screen) {
	r.flash = ""
	if s != ScreenResult {
		r.breakdown = nil
	}
	switch s {
	case ScreenPerspective, ScreenPrompt, ScreenMeta:
		r.text.Reset()
		r.text.Focus()
	case ScreenLogic:
		r.step.Reset()
		r.step.Focus()
	case ScreenBoss:
		r.text.Reset()
	}
	r.screen = s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
