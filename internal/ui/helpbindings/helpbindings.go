// Package helpbindings provides the scrollable help overlay listing the key
// bindings that apply to the current screen.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/camdash/camdash/internal/keymap"
	"github.com/camdash/camdash/internal/ui/popup"
	"github.com/camdash/camdash/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// CloseMsg asks the owner to hide the overlay.
type CloseMsg struct{}

var categoryOrder = []string{"global", "camera", "slideshow", "video"}

var categoryLabels = map[string]string{
	"global":    "Everywhere",
	"camera":    "Camera grid",
	"slideshow": "Slideshow",
	"video":     "Clip playback",
}

// Model holds the state for the help overlay.
type Model struct {
	width, height int
	bindings     []keymap.Binding
	scrollOffset int
}

func New() *Model {
	return &Model{}
}

// SetContexts selects which binding groups are listed.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q", "enter":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, l := range visible {
		if w := lipgloss.Width(l); w < width {
			visible[i] = l + strings.Repeat(" ", width-w)
		}
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

// displayKeys names the space bar once and drops duplicates.
func displayKeys(keys []string) string {
	var out []string
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return strings.Join(out, ", ")
}

func (m *Model) buildContent() string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(displayKeys(b.Keys)))
	}

	var sb strings.Builder
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(headerStyle.Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			sb.WriteString(t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)))
			sb.WriteString("\n")
			current = b.Context
		}
		keys := displayKeys(b.Keys)
		sb.WriteString(keyStyle.Render(keys + strings.Repeat(" ", keyWidth-len(keys))))
		sb.WriteString("  ")
		sb.WriteString(t.S().Base.Render(b.Description))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (m *Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m *Model) visibleHeight() int {
	return max(m.height-10, 5)
}

func (m *Model) maxScroll() int {
	total := strings.Count(m.buildContent(), "\n") + 1
	return max(total-m.visibleHeight(), 0)
}
