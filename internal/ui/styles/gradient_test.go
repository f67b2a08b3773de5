package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_KeepsText(t *testing.T) {
	for _, text := range []string{"", "C", "Cameras", "Фото 📷"} {
		got := Gradient(text, "#ff0000", "#0000ff", true)
		assert.Equal(t, text, ansi.Strip(got))
	}
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, "#ff0000", parseColor("#ff0000").Hex())
	assert.Equal(t, fallbackColor, parseColor(lipgloss.Color("39")))
}

func TestHeaderTitle(t *testing.T) {
	assert.Equal(t, "Photos", ansi.Strip(HeaderTitle("Photos")))
}
