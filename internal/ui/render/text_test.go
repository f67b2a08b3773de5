package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Front door", "Front door"},
		{"escape sequence", "cam\x1b[2Jera", "cam[2Jera"},
		{"newline and tab", "a\nb\tc", "abc"},
		{"nbsp", "back\u00a0yard", "back yard"},
		{"invalid utf8", "ga\xffrage", "garage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty", "", 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fit(tt.input, tt.width))
		})
	}
}

func TestFitWideRunes(t *testing.T) {
	got := Fit("監視カメラ映像", 7)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 7)
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abc…", Center("abcdef", 4))
}

func TestRow(t *testing.T) {
	row := Row("left", "right", 20)
	assert.Equal(t, 20, runewidth.StringWidth(row))
	assert.Equal(t, "a b", Row("a", "b", 1))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-1))
}
