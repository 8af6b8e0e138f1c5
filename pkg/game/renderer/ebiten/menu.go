package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gamemenu "tileworld/pkg/game/menu"
	"tileworld/pkg/game/scenes"
)

// menuView is what the overlay needs to draw one open menu.
type menuView struct {
	menu         *gamemenu.Menu
	title        string
	instructions string
	help         string
	// opaque panels hide the world behind in-game menus
	opaque bool
}

// activeMenu returns the menu of the active menu scene, or nil.
func (e *EbitenRenderer) activeMenu() *menuView {
	g := e.game
	switch {
	case g.Scenes.IsActive(scenes.KeyControls) && g.Controls.Menu != nil:
		m := g.Controls.Menu
		return &menuView{menu: m.Menu, title: m.Title(), instructions: m.Instructions(), help: m.HelpText()}
	case g.Scenes.IsActive(scenes.KeyMainMenu) && g.MainMenu.Menu != nil:
		return newMenuView(g.MainMenu.Menu, false)
	case g.Scenes.IsActive(scenes.KeyPause) && g.Pause.Menu != nil:
		return newMenuView(g.Pause.Menu, true)
	case g.Scenes.IsActive(scenes.KeyGameOver) && g.GameOver.Menu != nil:
		return newMenuView(g.GameOver.Menu, true)
	case g.Scenes.IsActive(scenes.KeyGameWon) && g.GameWon.Menu != nil:
		return newMenuView(g.GameWon.Menu, true)
	}
	return nil
}

func newMenuView(m *gamemenu.Menu, opaque bool) *menuView {
	return &menuView{menu: m, title: m.Title(), instructions: m.Instructions(), help: m.HelpText(), opaque: opaque}
}

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color) {
	const shadowSpread = 8
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := max(uint8((bor>>8)*15/255), 8)
	shadowG := max(uint8((bog>>8)*15/255), 8)
	shadowB := max(uint8((bob>>8)*15/255), 8)

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := min(uint8(12+i*8), 55)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawMenuOverlay draws v as a centred panel and records the item rows
// for mouse hovering.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image, v *menuView) {
	e.menuRows = e.menuRows[:0]
	items := v.menu.Items()
	if len(items) == 0 {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	lineHeight := e.lineHeight()

	// title, instructions, gap, items, gap, help
	lines := 3 + len(items) + 2
	panelW := int(float32(screenWidth) * 0.6)
	panelH := menuPadding*2 + lines*lineHeight
	panelX := (screenWidth - panelW) / 2
	panelY := (screenHeight - panelH) / 2

	var bgAlpha, borderAlpha uint8 = 180, 180
	if v.opaque {
		bgAlpha, borderAlpha = 220, 200
	}
	bg := color.RGBA{10, 6, 16, bgAlpha}
	br, bgVal, bb, _ := colorAction.RGBA()
	border := color.RGBA{uint8(br >> 8), uint8(bgVal >> 8), uint8(bb >> 8), borderAlpha}

	drawRoundedRectWithShadow(screen,
		float32(panelX), float32(panelY), float32(panelW), float32(panelH),
		menuCornerRadius, menuBorderWidth, bg, border)

	x := panelX + menuPadding
	y := panelY + menuPadding

	if v.title != "" {
		e.drawColoredTextWithFace(screen, v.title, x, y, colorAction, e.getSansBoldTitleFontFace())
	}
	y += lineHeight
	if v.instructions != "" {
		e.drawColoredText(screen, v.instructions, x, y, colorSubtle)
	}
	y += lineHeight * 2

	face := e.getSansFontFace()
	_, textHeight := text.Measure("Ag", face, 0)
	const highlightPadding = 8

	for i, item := range items {
		rowY := y + i*lineHeight
		label := item.GetLabel()

		if item.IsSelectable() {
			rowRect := image.Rect(x-highlightPadding, rowY-2, panelX+panelW-menuPadding+highlightPadding, rowY+int(textHeight)+4)
			e.menuRows = append(e.menuRows, menuRow{index: i, rect: rowRect})
		}
		if i == v.menu.Selected() {
			width := e.getTextWidth(label)
			vector.DrawFilledRect(screen,
				float32(x-highlightPadding), float32(rowY-2),
				float32(width+highlightPadding*2), float32(textHeight+4),
				colorHighlight, false)
		}

		labelColor := colorText
		if !item.IsSelectable() {
			labelColor = colorSubtle
		}
		e.drawColoredText(screen, label, x, rowY, labelColor)
	}

	if v.help != "" {
		e.drawColoredText(screen, v.help, x, y+(len(items)+1)*lineHeight, colorAction)
	}
}
