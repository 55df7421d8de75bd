package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header     lipgloss.Style
	Status     lipgloss.Style
	PanelTitle lipgloss.Style
	PanelBody  lipgloss.Style
	Overlay    lipgloss.Style
	Accent     lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
	Pending    lipgloss.Style
	Muted      lipgloss.Style
	Grid       lipgloss.Style
	GridActive lipgloss.Style
}

func DefaultTheme() Theme {
	return ThemeForVariant("arcade")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "cozy":
		return cozyTheme()
	case "retro":
		return retroTheme()
	default:
		return arcadeTheme()
	}
}

func arcadeTheme() Theme {
	amber := lipgloss.Color("#FFC857")
	mint := lipgloss.Color("#67F0A8")
	brick := lipgloss.Color("#FF6F91")
	ink := lipgloss.Color("#0E1420")
	slate := lipgloss.Color("#1B2740")
	powder := lipgloss.Color("#EAF2FF")
	blue := lipgloss.Color("#5EEBFF")

	return Theme{
		Header:     lipgloss.NewStyle().Background(ink).Foreground(powder).Padding(0, 1),
		Status:     lipgloss.NewStyle().Background(slate).Foreground(powder).Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Foreground(blue).Bold(true),
		PanelBody:  lipgloss.NewStyle().Foreground(powder),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(blue).
			Padding(1, 2),
		Accent:  lipgloss.NewStyle().Foreground(blue).Bold(true),
		Good:    lipgloss.NewStyle().Foreground(mint).Bold(true),
		Bad:     lipgloss.NewStyle().Foreground(brick).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(amber),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CAAC6")),
		Grid: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#4B5F8A")).
			Width(5).Align(lipgloss.Center),
		GridActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(blue).
			Foreground(blue).Bold(true).
			Width(5).Align(lipgloss.Center),
	}
}

func cozyTheme() Theme {
	honey := lipgloss.Color("#F2B872")
	sage := lipgloss.Color("#80C4A3")
	rose := lipgloss.Color("#D17A86")
	night := lipgloss.Color("#1E2430")
	slate := lipgloss.Color("#30394A")
	paper := lipgloss.Color("#F4F6FA")
	sky := lipgloss.Color("#86B6F6")

	return Theme{
		Header:     lipgloss.NewStyle().Background(night).Foreground(paper).Padding(0, 1),
		Status:     lipgloss.NewStyle().Background(slate).Foreground(paper).Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Foreground(honey).Bold(true),
		PanelBody:  lipgloss.NewStyle().Foreground(paper),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(honey).
			Padding(1, 2),
		Accent:  lipgloss.NewStyle().Foreground(sky).Bold(true),
		Good:    lipgloss.NewStyle().Foreground(sage).Bold(true),
		Bad:     lipgloss.NewStyle().Foreground(rose).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(honey),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A3ACC2")),
		Grid: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(slate).
			Width(5).Align(lipgloss.Center),
		GridActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(honey).
			Foreground(honey).Bold(true).
			Width(5).Align(lipgloss.Center),
	}
}

func retroTheme() Theme {
	lime := lipgloss.Color("#9CF5A2")
	amber := lipgloss.Color("#E5D47A")
	red := lipgloss.Color("#FF6B6B")
	deep := lipgloss.Color("#07150A")
	forest := lipgloss.Color("#12301A")
	glow := lipgloss.Color("#C5F7C4")

	return Theme{
		Header:     lipgloss.NewStyle().Background(deep).Foreground(glow).Padding(0, 1),
		Status:     lipgloss.NewStyle().Background(forest).Foreground(glow).Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Foreground(amber).Bold(true),
		PanelBody:  lipgloss.NewStyle().Foreground(glow),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(amber).
			Padding(1, 2),
		Accent:  lipgloss.NewStyle().Foreground(lime).Bold(true),
		Good:    lipgloss.NewStyle().Foreground(lime).Bold(true),
		Bad:     lipgloss.NewStyle().Foreground(red).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(amber),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
		Grid: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(forest).
			Width(5).Align(lipgloss.Center),
		GridActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lime).
			Foreground(lime).Bold(true).
			Width(5).Align(lipgloss.Center),
	}
}
