// Package headerbar renders the breadcrumb line under the dashboard title.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/camdash/camdash/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const (
	separator = " › "
	ellipsis  = "…"
)

// Render returns the breadcrumb line for the given width. The last segment is
// the current folder and is highlighted. When the trail does not fit, leading
// segments are folded into an ellipsis; the current folder is always kept.
func Render(crumbs []string, width int) string {
	if len(crumbs) == 0 || width <= 0 {
		return ""
	}

	t := styles.T()
	s := t.S()
	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	sep := s.Subtle.Render(separator)

	render := func(parts []string, elided bool) string {
		out := make([]string, 0, len(parts)+1)
		if elided {
			out = append(out, s.Crumb.Render(ellipsis))
		}
		for i, p := range parts {
			if i == len(parts)-1 {
				out = append(out, activeStyle.Render(p))
				continue
			}
			out = append(out, s.Crumb.Render(p))
		}
		return strings.Join(out, sep)
	}

	for start := range crumbs {
		line := render(crumbs[start:], start > 0)
		if lipgloss.Width(line) <= width {
			return line
		}
	}

	// Even the current folder alone is too wide.
	last := crumbs[len(crumbs)-1]
	return activeStyle.Render(truncate(last, width))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
