// Package config holds the game options. Options are loaded once at
// startup and passed by value to everything that needs them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the preferences file used when -config is not given.
const DefaultFile = "tileworld.yaml"

// Options is the full runtime configuration.
type Options struct {
	// SkipMenu goes from the loading screen straight into the world.
	SkipMenu bool `yaml:"skip_menu"`
	// Seed for map generation; 0 picks one from the clock.
	Seed int64 `yaml:"seed"`
	// TimeLimit in seconds; 0 disables the game-over timer.
	TimeLimit float64 `yaml:"time_limit"`
	// Generator picks the map layout: "crossroads" or "trails".
	Generator string `yaml:"generator"`

	PlayerSpeed float64 `yaml:"player_speed"` // px/s
	Zoom        float64 `yaml:"zoom"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	Mute        bool `yaml:"mute"`
	PauseOnBlur bool `yaml:"pause_on_blur"`

	LogFile string `yaml:"log_file"`
	Locale  string `yaml:"locale"`
	Debug   bool   `yaml:"debug"`

	// Bindings overrides input codes per action name, e.g. up: "i".
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{
		PlayerSpeed:  160,
		Zoom:         1,
		WindowWidth:  960,
		WindowHeight: 720,
		PauseOnBlur:  true,
		Locale:       "en",
	}
}

// Load reads YAML options from path on top of Defaults. A missing file is
// not an error.
func Load(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config: %s: %w", path, err)
	}
	return opts, nil
}

// Save writes opts to path as YAML, creating parent directories.
func Save(path string, opts Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the game cannot run with.
func (o Options) Validate() error {
	var errs []error
	if o.PlayerSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player_speed must be positive, got %v", o.PlayerSpeed))
	}
	if o.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("zoom must be positive, got %v", o.Zoom))
	}
	if o.TimeLimit < 0 {
		errs = append(errs, fmt.Errorf("time_limit must not be negative, got %v", o.TimeLimit))
	}
	if o.Generator != "" && o.Generator != "crossroads" && o.Generator != "trails" {
		errs = append(errs, fmt.Errorf("unknown generator %q", o.Generator))
	}
	if o.WindowWidth <= 0 || o.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", o.WindowWidth, o.WindowHeight))
	}
	return errors.Join(errs...)
}

// WithZoom returns a copy of o with Zoom replaced.
func (o Options) WithZoom(z float64) Options {
	o.Zoom = z
	return o
}

// SaveZoom updates only the zoom in the preferences file at path,
// keeping every other stored value.
func SaveZoom(path string, z float64) error {
	opts, err := Load(path)
	if err != nil {
		return err
	}
	return Save(path, opts.WithZoom(z))
}

// SaveBinding stores the code bound to the named action in the
// preferences file at path. An empty code clears the override.
func SaveBinding(path, action, code string) error {
	opts, err := Load(path)
	if err != nil {
		return err
	}
	if code == "" {
		delete(opts.Bindings, action)
	} else {
		if opts.Bindings == nil {
			opts.Bindings = make(map[string]string)
		}
		opts.Bindings[action] = code
	}
	return Save(path, opts)
}
