package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a setting is outside its valid range.
	ErrInvalidValue = errors.New("invalid config value")
)

// ParseError reports a malformed configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Input holds input-translation settings.
type Input struct {
	// SuppressFrames is the directional-suppression window in frames: how
	// long after a numeric-pad digit key the paired cursor event keeps
	// being dropped.
	SuppressFrames int `toml:"suppress_frames"`

	// FrameDeltaMS is the nominal frame interval reported to the GUI
	// library, in milliseconds. Frame timing is not measured.
	FrameDeltaMS int `toml:"frame_delta_ms"`
}

// Render holds rasterization settings.
type Render struct {
	// FallbackGlyph substitutes for text that has no single-glyph
	// representation in the host encoding.
	FallbackGlyph string `toml:"fallback_glyph"`
}

// Config is the bridge configuration.
type Config struct {
	Input  Input  `toml:"input"`
	Render Render `toml:"render"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: Input{
			SuppressFrames: 10,
			FrameDeltaMS:   33,
		},
		Render: Render{
			FallbackGlyph: "?",
		},
	}
}

// DeltaSeconds returns the frame interval as seconds.
func (c *Config) DeltaSeconds() float32 {
	return float32(c.Input.FrameDeltaMS) / 1000
}

// Load reads the configuration file at path, applying defaults for absent
// settings. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting against its valid range.
func (c *Config) Validate() error {
	if c.Input.SuppressFrames < 0 {
		return fmt.Errorf("%w: input.suppress_frames must be >= 0, got %d", ErrInvalidValue, c.Input.SuppressFrames)
	}
	if c.Input.FrameDeltaMS <= 0 {
		return fmt.Errorf("%w: input.frame_delta_ms must be > 0, got %d", ErrInvalidValue, c.Input.FrameDeltaMS)
	}
	if len(c.Render.FallbackGlyph) != 1 {
		return fmt.Errorf("%w: render.fallback_glyph must be a single byte, got %q", ErrInvalidValue, c.Render.FallbackGlyph)
	}
	return nil
}
