package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"golang.org/x/image/vector"
)

// Sprite sheet geometry.
const (
	TileSize         = 32
	TilesetColumns   = 3
	PlayerFrameCount = 3
)

// Palette used by the generated sprites.
var (
	ColorGrass      = color.RGBA{76, 140, 60, 255}
	ColorGrassBlade = color.RGBA{98, 170, 78, 255}
	ColorPath       = color.RGBA{196, 164, 112, 255}
	ColorPathStone  = color.RGBA{170, 140, 94, 255}
	ColorRock       = color.RGBA{120, 120, 132, 255}
	ColorRockShade  = color.RGBA{84, 84, 96, 255}
	ColorSkin       = color.RGBA{240, 200, 160, 255}
	ColorShirt      = color.RGBA{60, 90, 200, 255}
	ColorTrousers   = color.RGBA{50, 50, 70, 255}
)

// TilesetImage draws the three world tiles side by side: grass, path and
// obstacle, in tile index order. The speckles are seeded so every run
// produces the same image.
func TilesetImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize*TilesetColumns, TileSize))
	rng := rand.New(rand.NewSource(7))

	grass := tileRect(0)
	draw.Draw(img, grass, image.NewUniform(ColorGrass), image.Point{}, draw.Src)
	speckle(img, grass, ColorGrassBlade, 24, rng)

	path := tileRect(1)
	draw.Draw(img, path, image.NewUniform(ColorPath), image.Point{}, draw.Src)
	speckle(img, path, ColorPathStone, 16, rng)

	rock := tileRect(2)
	draw.Draw(img, rock, image.NewUniform(ColorGrass), image.Point{}, draw.Src)
	fillPolygon(img, rock, ColorRockShade, [][2]float32{{4, 28}, {8, 10}, {18, 4}, {28, 12}, {29, 28}})
	fillPolygon(img, rock, ColorRock, [][2]float32{{7, 25}, {10, 12}, {18, 7}, {25, 13}, {26, 25}})
	return img
}

// PlayerImage draws the player sheet: PlayerFrameCount frames facing
// right. Frame 0 stands still, frames 1 and 2 are the stride poses.
func PlayerImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize*PlayerFrameCount, TileSize))
	legs := [PlayerFrameCount][2]float32{{0, 0}, {-3, 3}, {3, -3}}
	for i := 0; i < PlayerFrameCount; i++ {
		r := tileRect(i)
		front, back := legs[i][0], legs[i][1]
		fillPolygon(img, r, ColorTrousers, [][2]float32{{12 + back, 30}, {14, 21}, {16, 21}, {15 + back, 30}})
		fillPolygon(img, r, ColorTrousers, [][2]float32{{17 + front, 30}, {16, 21}, {19, 21}, {20 + front, 30}})
		fillPolygon(img, r, ColorShirt, [][2]float32{{11, 22}, {12, 12}, {20, 12}, {21, 22}})
		fillPolygon(img, r, ColorSkin, [][2]float32{{12, 6}, {16, 2}, {21, 5}, {21, 10}, {16, 12}, {12, 10}})
		// Eye, so the sheet has a facing
		img.Set(r.Min.X+19, r.Min.Y+6, color.Black)
	}
	return img
}

func tileRect(index int) image.Rectangle {
	return image.Rect(index*TileSize, 0, (index+1)*TileSize, TileSize)
}

func speckle(img *image.RGBA, r image.Rectangle, c color.Color, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		x := r.Min.X + 1 + rng.Intn(r.Dx()-2)
		y := r.Min.Y + 1 + rng.Intn(r.Dy()-2)
		img.Set(x, y, c)
		img.Set(x, y-1, c)
	}
}

// fillPolygon rasterizes a closed polygon given in tile-local coordinates.
func fillPolygon(img *image.RGBA, r image.Rectangle, c color.Color, pts [][2]float32) {
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(img, r, image.NewUniform(c), image.Point{})
}
