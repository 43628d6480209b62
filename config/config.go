// Package config loads and persists the window settings file.
//
// A missing, unreadable, malformed or invalid settings file never stops the program:
// Load logs a warning and substitutes Default. Write failures are returned to the caller.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
)

// Default window settings used when the settings file cannot be loaded.
const (
	DefaultWidth      = 500
	DefaultHeight     = 500
	DefaultFullscreen = false
	DefaultBorderless = true
	DefaultResizable  = true
)

// Window dimensions must lie in [MinDimension, MaxDimension] pixels.
const (
	MinDimension = 1
	MaxDimension = math.MaxInt32
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

var (
	// ErrNoPath is returned by Write when the config was not loaded from a file.
	ErrNoPath = errors.New("config has no source path")
	// ErrInvalidResolution is returned when res is not a pair of finite sizes within
	// [MinDimension, MaxDimension].
	ErrInvalidResolution = errors.New("resolution must be two sizes of at least one pixel")
)

// WindowSettings describes the game window. Nil flags were absent from the file and
// read as false.
type WindowSettings struct {
	Res        []float64 `json:"res" toml:"res"`
	Fullscreen *bool     `json:"fullscreen,omitempty" toml:"fullscreen,omitempty"`
	Borderless *bool     `json:"borderless,omitempty" toml:"borderless,omitempty"`
	Resizable  *bool     `json:"resizable,omitempty" toml:"resizable,omitempty"`
}

// Width returns the window width, or 0 when res is malformed.
func (w WindowSettings) Width() float64 {
	if len(w.Res) != 2 {
		return 0
	}
	return w.Res[0]
}

// Height returns the window height, or 0 when res is malformed.
func (w WindowSettings) Height() float64 {
	if len(w.Res) != 2 {
		return 0
	}
	return w.Res[1]
}

// Size returns the resolution rounded to whole pixels. It is only meaningful for
// settings that pass Validate.
func (w WindowSettings) Size() (width, height int) {
	return int(math.Round(w.Width())), int(math.Round(w.Height()))
}

func (w WindowSettings) IsFullscreen() bool { return flag(w.Fullscreen) }
func (w WindowSettings) IsBorderless() bool { return flag(w.Borderless) }
func (w WindowSettings) IsResizable() bool  { return flag(w.Resizable) }

func flag(b *bool) bool {
	return b != nil && *b
}

// Equal reports whether w and o describe the same window.
func (w WindowSettings) Equal(o WindowSettings) bool {
	return slices.Equal(w.Res, o.Res) &&
		sameFlag(w.Fullscreen, o.Fullscreen) &&
		sameFlag(w.Borderless, o.Borderless) &&
		sameFlag(w.Resizable, o.Resizable)
}

func sameFlag(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Validate checks that res holds exactly two finite components within
// [MinDimension, MaxDimension], so that Size is a usable window size.
func (w WindowSettings) Validate() error {
	if len(w.Res) != 2 {
		return fmt.Errorf("%w: got %d components", ErrInvalidResolution, len(w.Res))
	}
	for _, v := range w.Res {
		// NaN fails both comparisons.
		if !(v >= MinDimension && v <= MaxDimension) {
			return fmt.Errorf("%w: got %vx%v", ErrInvalidResolution, w.Res[0], w.Res[1])
		}
	}
	return nil
}

// Config is the settings file's content plus the path it is persisted to.
type Config struct {
	Window WindowSettings `json:"window" toml:"window"`

	path string
}

// Default returns the default settings, persisted to path.
func Default(path string) *Config {
	return &Config{
		Window: WindowSettings{
			Res:        []float64{DefaultWidth, DefaultHeight},
			Fullscreen: boolPtr(DefaultFullscreen),
			Borderless: boolPtr(DefaultBorderless),
			Resizable:  boolPtr(DefaultResizable),
		},
		path: path,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// Path returns the file Write persists to.
func (c *Config) Path() string {
	return c.path
}

// Load reads the settings file at path. Any failure to read, decode or validate it is
// logged and replaced by Default(path).
func Load(path string) *Config {
	c, err := read(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using default window settings")
		return Default(path)
	}
	log.Debug().Str("path", path).
		Floats64("res", c.Window.Res).
		Bool("fullscreen", c.Window.IsFullscreen()).
		Bool("borderless", c.Window.IsBorderless()).
		Bool("resizable", c.Window.IsResizable()).
		Msg("loaded window settings")
	return c
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c := &Config{path: path}
	if err := codecFor(path).Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Window.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return c, nil
}

// Write serializes the settings to the path they were loaded from, replacing the file.
// Missing parent directories are created. The file is swapped in whole, so readers such as
// Watcher never see it half written.
func (c *Config) Write() error {
	if c.path == "" {
		return ErrNoPath
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("refusing to write config: %w", err)
	}
	data, err := codecFor(c.path).Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), dirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := replaceFile(c.path, data); err != nil {
		return err
	}
	log.Debug().Str("path", c.path).Msg("wrote window settings")
	return nil
}

func replaceFile(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing config: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}

// ToggleFullscreen flips the fullscreen flag in memory and returns its new value.
func (c *Config) ToggleFullscreen() bool {
	on := !c.Window.IsFullscreen()
	c.Window.Fullscreen = boolPtr(on)
	return on
}
