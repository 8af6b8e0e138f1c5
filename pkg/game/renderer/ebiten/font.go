package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts.
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("sans bold font: %w", err)
	}
	return nil
}

// getUIFontSize returns the font size for UI text, scaled to the window height
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.windowHeight) / designHeight
	if size < minUIFontSize {
		size = minUIFontSize
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedSansFace
}

// getSansBoldTitleFontFace returns a cached sans-serif bold font face 2pt larger than UI for menu titles
func (e *EbitenRenderer) getSansBoldTitleFontFace() *text.GoTextFace {
	size := e.getUIFontSize() + 2
	if e.cachedSansBoldTitleFace == nil || e.cachedSansBoldTitleSize != size {
		e.cachedSansBoldTitleSize = size
		e.cachedSansBoldTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   size,
		}
	}
	return e.cachedSansBoldTitleFace
}

// getMonoUIFontFace returns a monospace font face with UI font size (for the HUD counters)
func (e *EbitenRenderer) getMonoUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedMonoUIFace == nil || e.cachedMonoUIFontSize != size {
		e.cachedMonoUIFontSize = size
		e.cachedMonoUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoUIFace
}

// invalidateFontCache clears cached font faces (call when the window size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedSansFace = nil
	e.cachedSansBoldTitleFace = nil
	e.cachedMonoUIFace = nil
}
