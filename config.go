package drop

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Bucket  BucketConfig  `toml:"bucket"`
	Drops   DropsConfig   `toml:"drops"`
	Audio   AudioConfig   `toml:"audio"`
	Assets  AssetsConfig  `toml:"assets"`
	Effects EffectsConfig `toml:"effects"`
	Debug   DebugConfig   `toml:"debug"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type BucketConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"` // world units per second
}

type DropsConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	FallSpeed     float64 `toml:"fall_speed"`     // world units per second
	SpawnInterval float64 `toml:"spawn_interval"` // seconds
	Seed          uint64  `toml:"seed"`           // 0 = random
}

type AudioConfig struct {
	MusicVolume float64 `toml:"music_volume"` // 0.0-1.0
	SampleRate  int     `toml:"sample_rate"`
}

type AssetsConfig struct {
	Dir   string     `toml:"dir"`
	Names AssetNames `toml:"names"`
}

type EffectsConfig struct {
	Splash         bool    `toml:"splash"`
	SplashDuration float64 `toml:"splash_duration"` // seconds
}

type DebugConfig struct {
	Enabled       bool   `toml:"enabled"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the stock game settings.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Drop",
			Width:     800,
			Height:    500,
			Resizable: true,
		},
		World: WorldConfig{
			Width:  8,
			Height: 5,
		},
		Bucket: BucketConfig{
			Width:  1,
			Height: 1,
			Speed:  4,
		},
		Drops: DropsConfig{
			Width:         1,
			Height:        1,
			FallSpeed:     2,
			SpawnInterval: 1,
		},
		Audio: AudioConfig{
			MusicVolume: 0.5,
			SampleRate:  defaultSampleRate,
		},
		Assets: AssetsConfig{
			Dir:   "assets",
			Names: DefaultAssetNames(),
		},
		Effects: EffectsConfig{
			Splash:         true,
			SplashDuration: 0.3,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports every setting that would make the game misbehave.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("bucket.width", c.Bucket.Width)
	positive("bucket.height", c.Bucket.Height)
	positive("bucket.speed", c.Bucket.Speed)
	positive("drops.width", c.Drops.Width)
	positive("drops.height", c.Drops.Height)
	positive("drops.fall_speed", c.Drops.FallSpeed)
	positive("drops.spawn_interval", c.Drops.SpawnInterval)
	if c.Effects.Splash {
		positive("effects.splash_duration", c.Effects.SplashDuration)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume must be in [0, 1], got %v", c.Audio.MusicVolume))
	}
	return errors.Join(errs...)
}
