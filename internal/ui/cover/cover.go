// Package cover renders track artwork as terminal half-block cells.
package cover

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const halfBlock = "▀"

// ErrEmpty is returned when there is no image data.
var ErrEmpty = errors.New("cover: no image data")

// Render decodes data and draws it in cols x rows cells. Each cell holds
// two vertical pixels: the upper one as foreground, the lower as background.
func Render(data []byte, cols, rows int) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return RenderImage(img, cols, rows), nil
}

// RenderImage draws an already decoded image.
func RenderImage(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	scaled := resize.Resize(uint(cols), uint(rows*2), img, resize.Lanczos3)
	bounds := scaled.Bounds()

	var b strings.Builder
	for y := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range cols {
			top := hex(scaled, bounds.Min.X+x, bounds.Min.Y+2*y)
			bottom := hex(scaled, bounds.Min.X+x, bounds.Min.Y+2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
	}
	return b.String()
}

// Placeholder is an empty frame the size of a cover.
func Placeholder(cols, rows int) string {
	if cols < 2 || rows < 2 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lines := make([]string, rows)
	lines[0] = "╭" + strings.Repeat("─", cols-2) + "╮"
	for i := 1; i < rows-1; i++ {
		lines[i] = "│" + strings.Repeat(" ", cols-2) + "│"
	}
	lines[rows-1] = "╰" + strings.Repeat("─", cols-2) + "╯"
	mid := rows / 2
	if cols >= 6 {
		note := "♪"
		pad := (cols - 2 - 1) / 2
		lines[mid] = "│" + strings.Repeat(" ", pad) + note + strings.Repeat(" ", cols-3-pad) + "│"
	}
	return style.Render(strings.Join(lines, "\n"))
}

func hex(img image.Image, x, y int) string {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// fully transparent pixel
		return "#000000"
	}
	return c.Hex()
}
