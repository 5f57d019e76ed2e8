package utils

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type WindowConfig struct {
	Width, Height int
	Title         string
}

type TimingConfig struct {
	TPS int
}

type BackgroundConfig struct {
	R, G, B uint8
}

type SceneConfig struct {
	SnowDrops   int
	LegacySetup bool
	Seed        int64
	Background  BackgroundConfig
}

type MathConfig struct {
	Float64EqualityThreshold float64
}

type Config struct {
	Window WindowConfig
	Timing TimingConfig
	Scene  SceneConfig
	Math   MathConfig
}

// DefaultConfig carries the demo's built-in values: an 800x560 window at 30
// ticks per second, 250 snow drops on a dark gray backdrop.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 560, Title: "Shape Animation - Buffered"},
		Timing: TimingConfig{TPS: 30},
		Scene: SceneConfig{
			SnowDrops:  250,
			Background: BackgroundConfig{R: 70, G: 70, B: 70},
		},
		Math: MathConfig{Float64EqualityThreshold: 1e-9},
	}
}

// ReadTOML loads the named TOML file over the defaults, so a partial file
// only overrides the keys it names.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects configurations the scene cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Timing.TPS <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.Timing.TPS)
	}
	if c.Scene.SnowDrops < 0 {
		return fmt.Errorf("snow drop count must not be negative, got %d", c.Scene.SnowDrops)
	}
	if c.Math.Float64EqualityThreshold <= 0 {
		return fmt.Errorf("float equality threshold must be positive, got %v", c.Math.Float64EqualityThreshold)
	}
	return nil
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
