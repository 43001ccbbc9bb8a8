package plotline

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// All labels render with a single fixed bitmap face. Charts need legible,
// not beautiful; one face keeps text layout deterministic and free of asset
// loading.
var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// lineHeight is the vertical advance between annotation and tooltip lines.
const lineHeight = 15

// measureText returns the pixel width and height of a single line.
func measureText(s string) (w, h float64) {
	return text.Measure(s, defaultFace, lineHeight)
}

// drawText draws a single line with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.rgba())
	text.Draw(dst, s, defaultFace, op)
}

// drawTextCentered draws a single line horizontally centered on x.
func drawTextCentered(dst *ebiten.Image, s string, x, y float64, c Color) {
	w, _ := measureText(s)
	drawText(dst, s, x-w/2, y, c)
}

// drawTextRight draws a single line ending at x.
func drawTextRight(dst *ebiten.Image, s string, x, y float64, c Color) {
	w, _ := measureText(s)
	drawText(dst, s, x-w, y, c)
}
