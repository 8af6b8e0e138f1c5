package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredText draws text with a specific color using the sans-serif UI font.
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text with a specific color and font face.
// (x, y) is the top-left corner of the line.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws a line horizontally centred on the screen.
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, y int, col color.Color, face *text.GoTextFace) {
	w, _ := text.Measure(str, face, 0)
	x := (screen.Bounds().Dx() - int(w)) / 2
	e.drawColoredTextWithFace(screen, str, x, y, col, face)
}

// getTextWidth returns the width in pixels of str in the UI font.
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	return textWidth(str, e.getSansFontFace())
}

func textWidth(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}

// lineHeight returns the distance between two UI text lines.
func (e *EbitenRenderer) lineHeight() int {
	return int(e.getUIFontSize()) + 8
}
