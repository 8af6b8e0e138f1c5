package ebiten

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"tileworld/pkg/engine/audio"
	"tileworld/pkg/engine/world"
	"tileworld/pkg/game/assets"
)

// Loaders returns the loaders for the images and sounds the renderer
// owns. They run on the loading screen after the data loaders.
func (e *EbitenRenderer) Loaders() []assets.Loader {
	return []assets.Loader{
		{Name: "tileset", Load: e.loadTileset},
		{Name: "player sheet", Load: e.loadPlayerSheet},
		{Name: "music", Load: e.loadMusic},
	}
}

func (e *EbitenRenderer) loadTileset() error {
	e.tilesetImage = ebiten.NewImageFromImage(assets.TilesetImage())
	return nil
}

func (e *EbitenRenderer) loadPlayerSheet() error {
	e.playerImage = ebiten.NewImageFromImage(assets.PlayerImage())
	return nil
}

func (e *EbitenRenderer) loadMusic() error {
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(audio.SampleRate)
	}
	pcm := audio.Synthesize(audio.Theme, 0.2)
	loop := ebitenaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("music: %w", err)
	}

	e.music = audio.NewMusic(player, e.opts.Config.PauseOnBlur)
	e.music.SetVolume(musicVolume)
	e.music.SetMuted(e.opts.Config.Mute)
	e.music.Play()
	return nil
}

// tileImage returns the sub-image of a tileset index, or nil before the
// tileset is loaded.
func (e *EbitenRenderer) tileImage(ts *world.Tileset, index int) *ebiten.Image {
	if e.tilesetImage == nil || !ts.Contains(index) {
		return nil
	}
	x, y := ts.SourcePosition(index)
	r := image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
	return e.tilesetImage.SubImage(r).(*ebiten.Image)
}

// playerFrameImage returns the sub-image of the player's current frame.
func (e *EbitenRenderer) playerFrameImage() *ebiten.Image {
	p := e.game.World.Player
	atlas := e.game.World.Atlas()
	if e.playerImage == nil || p == nil || atlas == nil {
		return nil
	}
	ref, ok := p.Anim.Frame()
	if !ok {
		return nil
	}
	r, ok := atlas.Frame(ref.Frame)
	if !ok {
		return nil
	}
	return e.playerImage.SubImage(r.Bounds()).(*ebiten.Image)
}
