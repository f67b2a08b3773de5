package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for theme colors that are not "#rrggbb", such as
// ANSI palette indexes, which cannot be blended.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// HeaderTitle renders the screen title in bold with the theme gradient.
func HeaderTitle(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.Secondary, true)
}

// Gradient colors each grapheme of text along a blend from one color to the
// other. Blending happens in HCL space so the midpoint does not go muddy.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return style.Foreground(from).Render(text)
	}

	start, end := parseColor(from), parseColor(to)
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, cluster := range clusters {
		c := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(style.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

func parseColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
