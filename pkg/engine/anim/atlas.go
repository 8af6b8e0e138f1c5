// Package anim provides texture atlas manifests, animation clips and playback.
package anim

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"sort"
)

// ErrFrameNotFound is returned when a clip references a frame the atlas does not have.
var ErrFrameNotFound = errors.New("anim: frame not found in atlas")

// Rect is a frame rectangle inside the atlas image.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Bounds converts the rectangle to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

type frameEntry struct {
	Frame   Rect `json:"frame"`
	Rotated bool `json:"rotated"`
	Trimmed bool `json:"trimmed"`
}

type manifest struct {
	Frames map[string]frameEntry `json:"frames"`
	Meta   struct {
		Image string `json:"image"`
		Size  struct {
			W int `json:"w"`
			H int `json:"h"`
		} `json:"size"`
	} `json:"meta"`
}

// Atlas is a single image containing named sub-sprites.
type Atlas struct {
	Key    string
	Image  string
	Width  int
	Height int
	frames map[string]Rect
}

// ParseAtlas reads a JSON-hash atlas manifest (the TexturePacker / Phaser format).
func ParseAtlas(key string, data []byte) (*Atlas, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("anim: parse atlas %s: %w", key, err)
	}
	if len(m.Frames) == 0 {
		return nil, fmt.Errorf("anim: atlas %s has no frames", key)
	}

	a := &Atlas{
		Key:    key,
		Image:  m.Meta.Image,
		Width:  m.Meta.Size.W,
		Height: m.Meta.Size.H,
		frames: make(map[string]Rect, len(m.Frames)),
	}
	for name, f := range m.Frames {
		if f.Rotated {
			return nil, fmt.Errorf("anim: atlas %s frame %s: rotated frames are not supported", key, name)
		}
		if f.Frame.W <= 0 || f.Frame.H <= 0 {
			return nil, fmt.Errorf("anim: atlas %s frame %s has empty size", key, name)
		}
		if a.Width > 0 && a.Height > 0 && !f.Frame.Bounds().In(image.Rect(0, 0, a.Width, a.Height)) {
			return nil, fmt.Errorf("anim: atlas %s frame %s lies outside the %dx%d image", key, name, a.Width, a.Height)
		}
		a.frames[name] = f.Frame
	}
	return a, nil
}

// Frame returns the rectangle of a named frame.
func (a *Atlas) Frame(name string) (Rect, bool) {
	r, ok := a.frames[name]
	return r, ok
}

// FrameNames returns every frame name, sorted.
func (a *Atlas) FrameNames() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FrameRef addresses one frame of an atlas.
type FrameRef struct {
	Atlas string
	Frame string
}

// Resolve checks that every ref names a frame of a.
func (a *Atlas) Resolve(refs ...FrameRef) error {
	var errs []error
	for _, ref := range refs {
		if ref.Atlas != a.Key {
			errs = append(errs, fmt.Errorf("%w: %s/%s (atlas is %s)", ErrFrameNotFound, ref.Atlas, ref.Frame, a.Key))
			continue
		}
		if _, ok := a.frames[ref.Frame]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s/%s", ErrFrameNotFound, ref.Atlas, ref.Frame))
		}
	}
	return errors.Join(errs...)
}

// FramesNamed builds frame refs for the given frame names of a.
func (a *Atlas) FramesNamed(names ...string) []FrameRef {
	refs := make([]FrameRef, len(names))
	for i, n := range names {
		refs[i] = FrameRef{Atlas: a.Key, Frame: n}
	}
	return refs
}
