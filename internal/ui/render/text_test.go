package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Take Five", "Take Five"},
		{"escape dropped", "Take\x1b[2J Five", "Take[2J Five"},
		{"newline dropped", "Take\nFive", "TakeFive"},
		{"tab kept", "a\tb", "a\tb"},
		{"no-break space", "Take\u00a0Five", "Take Five"},
		{"invalid utf8", "Take\xffFive", "TakeFive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"one column", "hello", 1, "…"},
		{"zero width", "hello", 0, ""},
		{"empty", "", 10, ""},
		{"wide runes", "日本語の歌", 6, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncate_KeepsStyling(t *testing.T) {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	styled := style.Render("hello world")

	got := Truncate(styled, 8)

	assert.Equal(t, "hello w…", ansi.Strip(got))
	assert.Equal(t, 8, ansi.StringWidth(got))
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "/music/a.mp3", 20, "/music/a.mp3"},
		{"keeps tail", "/home/user/music/song.flac", 10, "…song.flac"},
		{"one column", "abcdef", 1, "…"},
		{"zero width", "abcdef", 0, ""},
		{"wide runes", "日本語の歌.mp3", 7, "…歌.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateLeft(tt.input, tt.maxWidth))
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padded", "hello", 10, "hello     "},
		{"exact", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty", "", 5, "     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(tt.input, tt.width))
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "hello w…", TruncateAndPad("hello world", 8))
	assert.Equal(t, "hi      ", TruncateAndPad("hi", 8))

	styled := lipgloss.NewStyle().Bold(true).Render("hi")
	assert.Equal(t, 8, ansi.StringWidth(TruncateAndPad(styled, 8)))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left           right", Row("left", "right", 20))
	assert.Equal(t, "left right", Row("left", "right", 5), "keeps one space")

	styled := lipgloss.NewStyle().Bold(true).Render("left")
	assert.Equal(t, 20, ansi.StringWidth(Row(styled, "right", 20)))
}
