package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tileworld/pkg/engine/world"
	"tileworld/pkg/game/i18n"
	"tileworld/pkg/game/scenes"
)

// Draw renders the active scenes (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g := e.game

	if g.Scenes.IsActive(scenes.KeyLoading) {
		e.menuRows = e.menuRows[:0]
		e.drawLoading(screen)
		return
	}

	if e.worldVisible() {
		e.drawWorld(screen)
	}
	if g.Scenes.IsActive(scenes.KeyUI) {
		e.drawHUD(screen)
	}

	v := e.activeMenu()
	if v == nil {
		e.menuRows = e.menuRows[:0]
	} else {
		if !v.opaque {
			e.drawFloatingTilesBackground(screen)
		}
		e.drawMenuOverlay(screen, v)
		if g.Scenes.IsActive(scenes.KeyMainMenu) {
			e.drawVersion(screen)
		}
	}

	if e.opts.Config.Debug {
		e.drawDebug(screen)
	}
}

// worldVisible reports whether the world is on screen, either running or
// behind the pause and end menus.
func (e *EbitenRenderer) worldVisible() bool {
	g := e.game
	m := g.World.Map
	if m == nil || m.Tilemap == nil || g.World.Camera == nil {
		return false
	}
	for _, k := range []scenes.Key{scenes.KeyWorld, scenes.KeyPause, scenes.KeyGameOver, scenes.KeyGameWon} {
		if g.Scenes.IsActive(k) {
			return true
		}
	}
	return false
}

func (e *EbitenRenderer) drawLoading(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	progress := e.game.Loading.Progress()

	e.drawCenteredText(screen, i18n.T("GAME_TITLE"), h/2-3*e.lineHeight(), colorAction, e.getSansBoldTitleFontFace())
	e.drawCenteredText(screen, fmt.Sprintf(i18n.T("LOADING"), int(progress*100)), h/2-e.lineHeight(), colorText, e.getSansFontFace())

	barW := float32(w) * 0.5
	barX := (float32(w) - barW) / 2
	barY := float32(h) / 2
	vector.StrokeRect(screen, barX, barY, barW, 12, 1, colorSubtle, false)
	vector.DrawFilledRect(screen, barX+2, barY+2, (barW-4)*float32(progress), 8, colorProgress, false)
}

func (e *EbitenRenderer) drawWorld(screen *ebiten.Image) {
	w := e.game.World
	cam := w.Camera
	tm := w.Map.Tilemap
	zoom := cam.Zoom()
	tileW, tileH := float64(tm.TileWidth()), float64(tm.TileHeight())
	screenW, screenH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	screen.Fill(colorMapBackground)

	for _, layer := range tm.Layers() {
		ts := layer.Tileset()
		layer.ForEach(func(col, row, index int) {
			if index == world.Empty {
				return
			}
			sx, sy := cam.WorldToScreen(float64(col)*tileW, float64(row)*tileH)
			if sx+tileW*zoom < 0 || sy+tileH*zoom < 0 || sx > screenW || sy > screenH {
				return
			}
			img := e.tileImage(ts, index)
			if img == nil {
				return
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(zoom, zoom)
			op.GeoM.Translate(sx, sy)
			screen.DrawImage(img, op)
		})
	}

	for _, cell := range w.RoadEndCells() {
		side, _ := w.Map.RoadEnd(cell[0], cell[1])
		reached := w.Session != nil && w.Session.ReachedSide(side)
		sx, sy := cam.WorldToScreen(float64(cell[0])*tileW, float64(cell[1])*tileH)
		vector.StrokeRect(screen, float32(sx)+1, float32(sy)+1, float32(tileW*zoom)-2, float32(tileH*zoom)-2, 2, getPulsingRoadEndColor(reached), false)
	}

	e.drawPlayer(screen)
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image) {
	w := e.game.World
	p := w.Player
	if p == nil {
		return
	}
	cam := w.Camera
	zoom := cam.Zoom()

	img := e.playerFrameImage()
	if img == nil {
		// No sprite: draw the body
		sx, sy := cam.WorldToScreen(p.Body.X, p.Body.Y)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(p.Body.W*zoom), float32(p.Body.H*zoom), colorAction, false)
		return
	}

	fw, fh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	cx, cy := p.Center()
	sx, sy := cam.WorldToScreen(cx-fw/2, cy-fh/2)

	op := &ebiten.DrawImageOptions{}
	if clip := p.Clip(); clip != nil && clip.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(fw, 0)
	}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	ui := e.game.UI
	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	lineHeight := e.lineHeight()

	vector.DrawFilledRect(screen, 0, 0, float32(screenW), float32(lineHeight+8), colorPanelBackground, false)

	clock := ui.Elapsed
	clockColor := colorText
	if ui.Remaining >= 0 {
		clock = time.Duration(ui.Remaining * float64(time.Second)).Round(time.Second)
		if ui.Remaining < 10 {
			clockColor = colorDenied
		}
	}

	face := e.getMonoUIFontFace()
	x := menuPadding
	for _, part := range []struct {
		text string
		col  color.Color
	}{
		{fmt.Sprintf(i18n.T("HUD_SCORE"), ui.Score), colorText},
		{fmt.Sprintf(i18n.T("HUD_ROADS"), ui.RoadEnds, ui.RoadEndsNeeded), colorText},
		{fmt.Sprintf(i18n.T("HUD_TIME"), clock.String()), clockColor},
	} {
		e.drawColoredTextWithFace(screen, part.text, x, 4, part.col, face)
		x += int(textWidth(part.text, face)) + menuPadding*2
	}

	if cam := e.game.World.Camera; cam != nil {
		zoom := fmt.Sprintf(i18n.T("ZOOM"), cam.Zoom())
		e.drawColoredTextWithFace(screen, zoom, screenW-int(textWidth(zoom, face))-menuPadding, 4, colorSubtle, face)
	}

	if ui.Message != "" {
		msgW := float32(e.getTextWidth(ui.Message)) + menuPadding*2
		msgH := float32(lineHeight + menuPadding)
		msgX := (float32(screenW) - msgW) / 2
		msgY := float32(screenH) - msgH - menuPadding
		drawRoundedRectWithShadow(screen, msgX, msgY, msgW, msgH, menuCornerRadius, menuBorderWidth, colorPanelBackground, colorAction)
		e.drawColoredText(screen, ui.Message, int(msgX)+menuPadding, int(msgY)+menuPadding/2, colorText)
	}
}

func (e *EbitenRenderer) drawVersion(screen *ebiten.Image) {
	if e.opts.Version == "" {
		return
	}
	margin := 16
	w := e.getTextWidth(e.opts.Version)
	x := screen.Bounds().Dx() - int(w) - margin
	y := screen.Bounds().Dy() - e.lineHeight() - margin
	e.drawColoredText(screen, e.opts.Version, x, y, colorSubtle)
}

func (e *EbitenRenderer) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	w := e.game.World
	if p := w.Player; p != nil && e.worldVisible() {
		col, row := w.CurrentCell()
		msg += fmt.Sprintf("\ncell %d,%d  %s  seed %d", col, row, p.ClipKey().ClipName(), w.Map.Seed)
		sx, sy := w.Camera.WorldToScreen(p.Body.X, p.Body.Y)
		zoom := w.Camera.Zoom()
		vector.StrokeRect(screen, float32(sx), float32(sy), float32(p.Body.W*zoom), float32(p.Body.H*zoom), 1, colorDenied, false)
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, e.lineHeight()+12)
}
