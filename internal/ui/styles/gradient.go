package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not "#rrggbb".
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Blend returns n colors from one end to the other, interpolated in HCL
// so the middle does not turn muddy.
func Blend(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	a, b := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	out[0], out[n-1] = from, to
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}

// ApplyBoldGradient colors text grapheme by grapheme from one color to
// the other, in bold.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	base := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	for i, c := range Blend(from, to, len(clusters)) {
		b.WriteString(base.Foreground(c).Render(clusters[i]))
	}
	return b.String()
}
