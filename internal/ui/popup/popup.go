// Package popup frames modal content and overlays it on the dashboard.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/camdash/camdash/internal/ui/styles"
)

// RenderBordered wraps content in a rounded border and centers it on a
// screenW x screenH canvas.
func RenderBordered(content string, screenW, screenH int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		MaxWidth(max(screenW-2, 1)).
		Render(content)
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// Compose draws overlay on top of base. Leading and trailing blanks of each
// overlay line are transparent; everything in between replaces the base.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	for i, over := range overLines {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(over)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		end := ansi.StringWidth(trimmed)

		line := baseLines[i]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(line, 0, start)
		// A wide rune straddling the cut is dropped; keep alignment.
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		result := prefix + ansi.Cut(over, start, end)
		if end < width {
			suffix := ansi.Cut(line, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix = strings.Repeat(" ", width-end-w) + suffix
			}
			result += suffix
		}
		baseLines[i] = result
	}
	return strings.Join(baseLines, "\n")
}
