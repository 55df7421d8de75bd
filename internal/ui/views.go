package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"neuroquest/internal/app"
	"neuroquest/internal/scoring"
	"neuroquest/internal/worlds"
)

func (r *Root) View() string {
	if r.session == nil {
		return r.theme.Muted.Render("Loading your save...")
	}

	var body string
	switch r.screen {
	case ScreenMenu:
		body = r.viewMenu()
	case ScreenMemory:
		body = r.viewMemory(r.mem, "Memory Boost")
	case ScreenPerspective:
		body = r.viewPerspective(r.persp)
	case ScreenLogic:
		body = r.viewLogic()
	case ScreenPrompt:
		body = r.viewPrompt()
	case ScreenMeta:
		body = r.viewMeta(r.meta)
	case ScreenBoss:
		body = r.viewBoss()
	case ScreenResult:
		body = r.viewResult()
	case ScreenStats:
		body = r.viewStats()
	}

	parts := []string{r.viewHeader(), body}
	if r.flash != "" {
		parts = append(parts, r.theme.Pending.Render(r.flash))
	}
	parts = append(parts, r.help.View(r.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Root) viewHeader() string {
	rec := r.session.Record
	left := fmt.Sprintf(" NeuroQuest  %s  Lv %d", rec.Name, rec.Level)
	have, need := rec.XPIntoLevel()
	xp := fmt.Sprintf("XP %d/%d", have, need)
	streak := fmt.Sprintf("Streak %d", rec.Streak)
	if r.ascii {
		return r.theme.Header.Render(left + "  " + xp + "  " + streak)
	}
	return r.theme.Header.Render(left + "  ⚡" + xp + "  🔥" + streak)
}

func (r *Root) viewMenu() string {
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render("Choose your training") + "\n\n")
	for i, item := range r.menuItems {
		cursor := "  "
		style := r.theme.PanelBody
		if i == r.menuIndex {
			cursor = "> "
			style = r.theme.Accent
		}
		label := item.label
		if item.kind == "world" {
			tier := r.session.Record.WorldUnlocks[item.world]
			label = fmt.Sprintf("%-20s tier %d", label, tier)
			if worlds.BossDue(tier) {
				label += "  " + r.theme.Bad.Render("boss!")
			}
		}
		if item.kind == "daily" && r.daily != nil {
			if r.daily.Completed {
				label += "  " + r.theme.Good.Render("done")
			} else {
				label += fmt.Sprintf("  (%s)", r.daily.World)
			}
		}
		b.WriteString(cursor + style.Render(label) + "\n")
	}
	if len(r.session.Messages) > 0 {
		b.WriteString("\n")
		for _, m := range r.session.Messages {
			b.WriteString(r.theme.Muted.Render("· "+m) + "\n")
		}
	}
	return b.String()
}

func (r *Root) viewMemory(mem *app.MemoryRound, title string) string {
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render(title) + "\n")
	b.WriteString(r.theme.Muted.Render(fmt.Sprintf("Trial %d/%d  ·  %d-back  ·  score %d",
		mem.Step+1, mem.Trials, mem.N, mem.Score)) + "\n\n")

	b.WriteString(r.viewGrid(mem.Current.Position, mem.Current.Letter) + "\n")
	b.WriteString(r.theme.Muted.Render(fmt.Sprintf("%q at %s", mem.Current.Letter, mem.PositionLabel())) + "\n")

	claim := func(on bool, label string) string {
		if on {
			return r.theme.Good.Render("[x] " + label)
		}
		return r.theme.Muted.Render("[ ] " + label)
	}
	b.WriteString("\n" + claim(r.claim.Position, "position match (p)") + "   " +
		claim(r.claim.Letter, "letter match (l)") + "\n")
	b.WriteString(r.theme.Muted.Render("enter to lock in, esc for menu") + "\n")
	return b.String()
}

func (r *Root) viewGrid(active int, letter string) string {
	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			if idx == active {
				cells = append(cells, r.theme.GridActive.Render(letter))
			} else {
				cells = append(cells, r.theme.Grid.Render(" "))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Root) viewPerspective(persp *app.PerspectiveRound) string {
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render("Perspective Switch") + "\n")
	b.WriteString(r.theme.PanelBody.Render(persp.Scenario) + "\n\n")
	b.WriteString(r.theme.Accent.Render("Analyze as: "+persp.CurrentRole()) +
		r.theme.Muted.Render(fmt.Sprintf("  (%d/%d)", len(persp.Scores)+1, len(persp.Roles))) + "\n\n")
	b.WriteString(r.text.View() + "\n")
	b.WriteString(r.theme.Muted.Render("ctrl+d to submit, esc for menu") + "\n")
	return b.String()
}

func (r *Root) viewLogic() string {
	l := r.logic
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render("Step Logic") + "\n")
	b.WriteString(r.theme.PanelBody.Render(l.Riddle.Question) + "\n\n")
	for i, step := range l.Steps {
		b.WriteString(r.theme.Muted.Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
	}
	b.WriteString(r.theme.Accent.Render(fmt.Sprintf("Step %d of %d", len(l.Steps)+1, l.Riddle.Steps)) + "\n")
	b.WriteString(r.step.View() + "\n")
	b.WriteString(r.theme.Muted.Render("enter to add the step, esc for menu") + "\n")
	return b.String()
}

func (r *Root) viewPrompt() string {
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render("Prompt Forge") + "\n")
	b.WriteString(r.theme.PanelBody.Render("Craft a prompt that would produce: ") +
		r.theme.Accent.Render(r.prompt.Target) + "\n\n")
	b.WriteString(r.text.View() + "\n")
	b.WriteString(r.theme.Muted.Render("ctrl+d to submit, esc for menu") + "\n")
	return b.String()
}

func (r *Root) viewMeta(meta *app.MetaRound) string {
	mode := meta.CurrentMode()
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render("Meta Mode") + "\n")
	b.WriteString(r.theme.Accent.Render(mode.Label) +
		r.theme.Muted.Render(fmt.Sprintf("  (%d/%d)", len(meta.Scores)+1, len(meta.Modes))) + "\n")
	b.WriteString(r.theme.PanelBody.Render(mode.Hint) + "\n\n")
	b.WriteString(r.text.View() + "\n")
	b.WriteString(r.theme.Muted.Render("ctrl+d to submit, esc for menu") + "\n")
	return b.String()
}

func (r *Root) viewBoss() string {
	var b strings.Builder
	b.WriteString(r.theme.Bad.Render("BOSS CHALLENGE") + "\n\n")
	switch r.bossPhase {
	case 0:
		b.WriteString(r.viewMemory(r.boss.Memory, "Phase 1: Memory Burst"))
	case 1:
		b.WriteString(r.theme.PanelTitle.Render("Phase 2: Perspective") + "\n")
		b.WriteString(r.viewPerspective(r.boss.Perspective))
	case 2:
		b.WriteString(r.theme.PanelTitle.Render("Phase 3: Reflection") + "\n")
		b.WriteString(r.viewMeta(r.boss.Meta))
	}
	return b.String()
}

func (r *Root) viewResult() string {
	res := r.result
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render(r.resultTitle+" complete!") + "\n\n")
	b.WriteString(r.theme.Good.Render(fmt.Sprintf("+%d XP", res.XP.Awarded)))
	if res.XP.StreakBonus > 0 {
		b.WriteString(r.theme.Pending.Render(fmt.Sprintf("  (includes %d streak bonus)", res.XP.StreakBonus)))
	}
	b.WriteString("\n")
	if res.XP.LeveledUp {
		b.WriteString(r.theme.Accent.Render(fmt.Sprintf("Level up! You are now level %d.", res.XP.NewLevel)) + "\n")
	}
	for _, badge := range res.NewBadges {
		b.WriteString(r.theme.Pending.Render("★ "+badge) + "\n")
	}
	if res.Unlocked {
		b.WriteString(r.theme.Good.Render(fmt.Sprintf("New tier unlocked: %d", res.NewTier)) + "\n")
	}
	if res.BossDue {
		b.WriteString(r.theme.Bad.Render("A boss challenge is waiting on the menu.") + "\n")
	}
	if r.breakdown != nil {
		b.WriteString("\n" + r.theme.PanelTitle.Render(fmt.Sprintf("Prompt score: %d/%d", r.breakdown.Total, scoring.PromptMax)) + "\n")
		for _, line := range r.breakdown.Feedback() {
			b.WriteString(r.theme.Muted.Render("· "+line) + "\n")
		}
	}
	if res.SaveFailed {
		b.WriteString("\n" + r.theme.Bad.Render("Progress could not be saved to disk.") + "\n")
	}
	b.WriteString("\n" + r.theme.Muted.Render("enter or esc for menu") + "\n")
	return b.String()
}

func (r *Root) viewStats() string {
	s := r.stats
	var b strings.Builder
	b.WriteString(r.theme.PanelTitle.Render("Training Stats") + "\n\n")
	b.WriteString(fmt.Sprintf("%s  ·  level %d  ·  %d XP  ·  streak %d  ·  %d sessions\n\n",
		s.Record.Name, s.Record.Level, s.Record.XP, s.Record.Streak, s.Record.TotalSessions))

	for _, w := range worlds.All {
		tier := s.Record.WorldUnlocks[w]
		high := s.Record.HighScores[w]
		line := fmt.Sprintf("%-20s tier %d  ·  high score %d", w.Title(), tier, high)
		if p, ok := s.Progress[w.String()]; ok {
			line += fmt.Sprintf("  ·  best %d%% over %d sessions", p.BestPercent, p.Sessions)
		}
		b.WriteString(r.theme.PanelBody.Render(line) + "\n")
	}

	b.WriteString("\n" + r.theme.Muted.Render(fmt.Sprintf("Lifetime: %d sessions, %d boss runs, %d XP earned",
		s.Summary.Sessions, s.Summary.BossRuns, s.Summary.TotalXP)) + "\n")
	if s.Daily != nil {
		status := "pending"
		if s.Daily.Completed {
			status = "complete"
		}
		b.WriteString(r.theme.Muted.Render(fmt.Sprintf("Today's challenge: %s (%s)", s.Daily.World, status)) + "\n")
	}
	if len(s.Record.Badges) > 0 {
		b.WriteString("\n" + r.theme.PanelTitle.Render("Badges") + "\n")
		for _, badge := range s.Record.Badges {
			b.WriteString(r.theme.Pending.Render("★ "+badge) + "\n")
		}
	}
	b.WriteString("\n" + r.theme.Muted.Render("enter or esc for menu") + "\n")
	return b.String()
}
