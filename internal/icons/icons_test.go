package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		style string
		want  Icons
	}{
		{"nerd", nerdIcons},
		{"unicode", unicodeIcons},
		{"none", noneIcons},
		{"", noneIcons},
		{"NERD", noneIcons},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			assert.Equal(t, tt.want, current)
		})
	}
	Init("none")
}

func TestFormatDir(t *testing.T) {
	defer Init("none")

	Init("none")
	assert.Equal(t, "2024-06-01/", FormatDir("2024-06-01"))
	assert.False(t, IsPrefix())

	Init("unicode")
	assert.Equal(t, "📁 2024-06-01", FormatDir("2024-06-01"))
	assert.True(t, IsPrefix())
}

func TestFormatLeaves(t *testing.T) {
	defer Init("none")

	Init("none")
	assert.Equal(t, "a.jpg", FormatPhoto("a.jpg"))
	assert.Equal(t, "Back", FormatBack("Back"))

	Init("nerd")
	assert.Equal(t, "\uf03d clip.mp4", FormatVideo("clip.mp4"))
	assert.Equal(t, "\uf04c Pause", FormatPause("Pause"))
}
