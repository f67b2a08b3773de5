// Package styles holds the dashboard palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // focused cells, active states
	Secondary lipgloss.Color // gradient end, camera accents

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base        lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Title       lipgloss.Style
	Crumb       lipgloss.Style
	Cell        lipgloss.Style // unfocused grid cell
	CellFocused lipgloss.Style
	Notice      lipgloss.Style
	NoticeError lipgloss.Style
	Status      lipgloss.Style // host status line
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#38bdf8"),
	Secondary: lipgloss.Color("#a78bfa"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgBase:   lipgloss.Color("#121212"),
	BgCursor: lipgloss.Color("#1e3a4c"),

	Border:      lipgloss.Color("#4a4a4a"),
	BorderFocus: lipgloss.Color("#38bdf8"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	cell := lipgloss.NewStyle().
		Foreground(t.FgBase).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Crumb:  lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Cell:   cell,
		CellFocused: cell.
			BorderForeground(t.BorderFocus).
			Background(t.BgCursor).
			Bold(true),
		Notice:      lipgloss.NewStyle().Foreground(t.Warning),
		NoticeError: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(t.FgSubtle),
		Success:     lipgloss.NewStyle().Foreground(t.Success),
		Error:       lipgloss.NewStyle().Foreground(t.Error),
		Warning:     lipgloss.NewStyle().Foreground(t.Warning),
	}
}
