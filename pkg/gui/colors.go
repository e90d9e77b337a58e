package gui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

const (
	// Per channel offset for the bevel of a block
	shadeStep = 40
	// Opacity of the landing shadow over the background
	shadowAlpha = 0.3
)

// toColorful maps colors without an RGB value, such as the terminal default, to black
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// pieceColor parses a piece token. Unknown tokens render white.
func pieceColor(c tetris.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}

// shift moves every channel by n in 0-255 units
func shift(c colorful.Color, n int) colorful.Color {
	d := float64(n) / 255
	return colorful.Color{
		R: math.Max(0, math.Min(1, c.R+d)),
		G: math.Max(0, math.Min(1, c.G+d)),
		B: math.Max(0, math.Min(1, c.B+d)),
	}
}

// BlockColors returns the fill, highlight and edge colors of a block
func BlockColors(c tetris.Color) (fill, light, dark tcell.Color) {
	base := pieceColor(c)
	return toTcell(base), toTcell(shift(base, shadeStep)), toTcell(shift(base, -shadeStep))
}

// ShadowColor blends the piece color over the background
func ShadowColor(c tetris.Color, bg tcell.Color) tcell.Color {
	return toTcell(toColorful(bg).BlendRgb(pieceColor(c), shadowAlpha))
}

// shadowBase is the color the landing shadow is blended over. A theme whose
// background is the terminal default blends over its dot color instead.
func shadowBase(t Theme) tcell.Color {
	if r, _, _ := t.Background.RGB(); r >= 0 {
		return t.Background
	}
	return t.Dot
}
