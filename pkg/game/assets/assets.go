// Package assets holds the embedded asset manifests and the loaded asset
// store shared by the scenes and the renderer.
package assets

import (
	_ "embed"
	"fmt"

	"tileworld/pkg/engine/anim"
)

// PlayerAtlasKey names the player sprite atlas.
const PlayerAtlasKey = "player"

//go:embed player.json
var playerManifest []byte

// Loader loads one asset. The loading screen runs one loader per frame.
type Loader struct {
	Name string
	Load func() error
}

// Store holds the loaded assets. Fields stay nil until their loader ran.
type Store struct {
	PlayerAtlas *anim.Atlas
}

// LoadPlayerAtlas parses the embedded player atlas manifest.
func (s *Store) LoadPlayerAtlas() error {
	a, err := anim.ParseAtlas(PlayerAtlasKey, playerManifest)
	if err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	s.PlayerAtlas = a
	return nil
}

// Loaders returns the loaders for the assets this package can produce on
// its own. Image loaders come from the renderer.
func (s *Store) Loaders() []Loader {
	return []Loader{
		{Name: "player atlas", Load: s.LoadPlayerAtlas},
	}
}
