package controllable

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by Config.Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("controllable: invalid config")

// Config holds the toggles and multipliers of a Manipulator.
type Config struct {
	EnableDrag   bool `toml:"enable_drag"`
	EnableRotate bool `toml:"enable_rotate"`
	EnableScale  bool `toml:"enable_scale"`

	InitialWidth  CSSValue   `toml:"initial_width"`
	InitialHeight CSSValue   `toml:"initial_height"`
	InitialRotate AngleValue `toml:"initial_rotate"`

	// CapturePointer keeps move/up events flowing to the container while a
	// gesture is active, even when the pointer leaves the box.
	CapturePointer bool `toml:"capture_pointer"`

	DragSpeed   float64 `toml:"drag_speed"`
	RotateSpeed float64 `toml:"rotate_speed"`
	ScaleSpeed  float64 `toml:"scale_speed"`

	Debug bool `toml:"debug"`
}

// DefaultConfig returns a config with every gesture enabled, a 100x100 box,
// pointer capture on and unit speeds.
func DefaultConfig() Config {
	return Config{
		EnableDrag:     true,
		EnableRotate:   true,
		EnableScale:    true,
		InitialWidth:   "100px",
		InitialHeight:  "100px",
		InitialRotate:  "0deg",
		CapturePointer: true,
		DragSpeed:      1,
		RotateSpeed:    1,
		ScaleSpeed:     1,
	}
}

// Validate reports settings the manipulator cannot honor.
func (c Config) Validate() error {
	speeds := []struct {
		name string
		v    float64
	}{
		{"drag_speed", c.DragSpeed},
		{"rotate_speed", c.RotateSpeed},
		{"scale_speed", c.ScaleSpeed},
	}
	for _, s := range speeds {
		if !(s.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, s.name, s.v)
		}
	}
	return nil
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}
