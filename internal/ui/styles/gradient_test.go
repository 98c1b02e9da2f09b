package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")

	assert.Nil(t, Blend(from, to, 0))
	assert.Equal(t, []lipgloss.Color{from}, Blend(from, to, 1))

	got := Blend(from, to, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, from, got[0])
	assert.Equal(t, to, got[2])
}

func TestBlend_NonHexFallsBack(t *testing.T) {
	got := Blend(lipgloss.Color("39"), lipgloss.Color("#ffffff"), 3)
	assert.Equal(t, lipgloss.Color("39"), got[0])
	assert.Regexp(t, `^#[0-9a-f]{6}$`, string(got[1]))
}

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	text := "Now Practicing: Café ✓"
	assert.Equal(t, text, ansi.Strip(ApplyBoldGradient(text, T().Primary, T().Secondary)))
	assert.Empty(t, ApplyBoldGradient("", T().Primary, T().Secondary))
}
