package snowscene

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config describes a whole scene. Sizes and speeds of scene objects are given
// as fractions of the canvas so that one config fits any resolution.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	FPS      int     `yaml:"fps"`
	Duration float64 `yaml:"duration"` // seconds
	Seed     uint64  `yaml:"seed"`

	Assets    AssetsConfig    `yaml:"assets"`
	Snowfall  SnowfallConfig  `yaml:"snowfall"`
	Fir       FirConfig       `yaml:"fir"`
	Garland   GarlandConfig   `yaml:"garland"`
	Hare      HareConfig      `yaml:"hare"`
	SnowCover SnowCoverConfig `yaml:"snowCover"`
}

// AssetsConfig names the sprite files, relative to Dir.
type AssetsConfig struct {
	Dir       string `yaml:"dir"`
	Snowflake string `yaml:"snowflake"`
	Fir       string `yaml:"fir"`
	Hare      string `yaml:"hare"`
}

// IntervalConfig is one schedule entry. A negative finish lasts until the end.
type IntervalConfig struct {
	Start  float64 `yaml:"start"`
	Finish float64 `yaml:"finish"`
	Count  int     `yaml:"count"`
}

// SnowfallConfig configures the falling snow.
type SnowfallConfig struct {
	Schedule      []IntervalConfig `yaml:"schedule"`
	SpawnEvery    int              `yaml:"spawnEvery"` // frames between spawns
	SpeedX        Range            `yaml:"speedX"`     // pixels per frame
	SpeedY        Range            `yaml:"speedY"`
	RotationSpeed Range            `yaml:"rotationSpeed"` // degrees per frame
	Small         Range            `yaml:"small"`         // flake height / canvas height
	Medium        Range            `yaml:"medium"`
	Large         Range            `yaml:"large"`
	MediumChance  float64          `yaml:"mediumChance"`
	LargeChance   float64          `yaml:"largeChance"`
}

// FirConfig places the fir. X and Y are fractions of the canvas size, Scale is
// the fir height as a fraction of the canvas height.
type FirConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// PatternConfig is one light pattern.
type PatternConfig struct {
	Groups   []bool  `yaml:"groups"`
	Duration float64 `yaml:"duration"`
}

// GarlandConfig configures the lights on the fir. RadiusScale is the lamp
// radius as a fraction of the canvas diagonal.
type GarlandConfig struct {
	Colors        []string        `yaml:"colors"`
	Patterns      []PatternConfig `yaml:"patterns"`
	LampsPerGroup int             `yaml:"lampsPerGroup"`
	RadiusScale   float64         `yaml:"radiusScale"`
}

// HareConfig configures the jumping hare. Gravity, SpeedY and Ground are
// fractions of the canvas height (per second squared, per second, absolute),
// SpeedX and StartX fractions of the canvas width.
type HareConfig struct {
	Scale           float64 `yaml:"scale"`
	Gravity         float64 `yaml:"gravity"`
	SpeedX          float64 `yaml:"speedX"`
	SpeedY          float64 `yaml:"speedY"`
	Ground          float64 `yaml:"ground"`
	StartX          float64 `yaml:"startX"`
	RestartInterval float64 `yaml:"restartInterval"` // seconds
}

// SnowCoverConfig configures the growing snow cover. LowStart and LowEnd are
// fractions of the canvas height.
type SnowCoverConfig struct {
	Capacity    int     `yaml:"capacity"`
	RadiusScale float64 `yaml:"radiusScale"`
	Color       string  `yaml:"color"`
	LowStart    float64 `yaml:"lowStart"`
	LowEnd      float64 `yaml:"lowEnd"`
}

// DefaultConfig returns the winter scene: a 200 second 4K video at 60 fps.
func DefaultConfig() *Config {
	flakes := DefaultSnowflakeParams()
	return &Config{
		Width:    3840,
		Height:   2160,
		FPS:      60,
		Duration: 200,
		Seed:     1,
		Assets: AssetsConfig{
			Dir:       "img",
			Snowflake: "snow.png",
			Fir:       "tree.png",
			Hare:      "hare.png",
		},
		Snowfall: SnowfallConfig{
			Schedule:      []IntervalConfig{{Start: 0, Finish: 30, Count: 200}},
			SpawnEvery:    defaultSpawnEvery,
			SpeedX:        flakes.SpeedX,
			SpeedY:        flakes.SpeedY,
			RotationSpeed: flakes.RotationSpeed,
			Small:         flakes.Small,
			Medium:        flakes.Medium,
			Large:         flakes.Large,
			MediumChance:  flakes.MediumChance,
			LargeChance:   flakes.LargeChance,
		},
		Fir: FirConfig{X: 0.5, Y: 0.5, Scale: 0.8},
		Garland: GarlandConfig{
			Colors: []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"},
			Patterns: []PatternConfig{
				{Groups: []bool{false, false, false, true}, Duration: 1},
				{Groups: []bool{false, false, true, false}, Duration: 1},
				{Groups: []bool{false, true, false, false}, Duration: 1},
				{Groups: []bool{true, false, false, false}, Duration: 1},

				{Groups: []bool{false, false, true, true}, Duration: 1},
				{Groups: []bool{false, true, true, false}, Duration: 1},
				{Groups: []bool{true, true, false, false}, Duration: 1},
				{Groups: []bool{true, false, false, true}, Duration: 1},

				{Groups: []bool{false, true, true, true}, Duration: 0.5},
				{Groups: []bool{true, true, true, false}, Duration: 0.5},
				{Groups: []bool{true, true, false, true}, Duration: 0.5},
				{Groups: []bool{true, false, true, true}, Duration: 0.5},
			},
			LampsPerGroup: 50,
			RadiusScale:   0.003,
		},
		Hare: HareConfig{
			Scale:           0.2,
			Gravity:         9.8 * 0.08,
			SpeedX:          0.14,
			SpeedY:          -0.42,
			Ground:          0.8,
			StartX:          0.2,
			RestartInterval: 0.8,
		},
		SnowCover: SnowCoverConfig{
			Capacity:    15000,
			RadiusScale: 0.0015,
			Color:       "#c8c8c8",
			LowStart:    0.95,
			LowEnd:      1.0 / 3.0,
		},
	}
}

// LoadConfig reads a YAML file over the default config and validates it.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// TotalFrames returns the number of frames in the video.
func (config *Config) TotalFrames() int {
	return int(config.Duration * float64(config.FPS))
}

// Validate checks the config. Errors wrap ErrInvalidConfig or the more
// specific scene error.
func (config *Config) Validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d: %w", config.Width, config.Height, ErrInvalidConfig)
	}
	if config.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d: %w", config.FPS, ErrInvalidConfig)
	}
	if config.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v: %w", config.Duration, ErrInvalidConfig)
	}

	if len(config.Snowfall.Schedule) == 0 {
		return ErrEmptySchedule
	}
	for i, interval := range config.Snowfall.Schedule {
		if interval.Count < 0 {
			return fmt.Errorf("snowfall.schedule[%d].count must be >= 0, got %d: %w", i, interval.Count, ErrInvalidConfig)
		}
	}
	for name, r := range map[string]Range{
		"speedX":        config.Snowfall.SpeedX,
		"speedY":        config.Snowfall.SpeedY,
		"rotationSpeed": config.Snowfall.RotationSpeed,
		"small":         config.Snowfall.Small,
		"medium":        config.Snowfall.Medium,
		"large":         config.Snowfall.Large,
	} {
		if !r.Valid() {
			return fmt.Errorf("snowfall.%s: min %v exceeds max %v: %w", name, r.Min, r.Max, ErrInvalidConfig)
		}
	}

	if config.Fir.Scale <= 0 || config.Hare.Scale <= 0 {
		return fmt.Errorf("fir and hare scales must be positive: %w", ErrInvalidConfig)
	}

	if _, err := config.Garland.colors(); err != nil {
		return err
	}
	for i, pattern := range config.Garland.Patterns {
		if len(pattern.Groups) != len(config.Garland.Colors) {
			return fmt.Errorf("garland.patterns[%d] has %d flags for %d colors: %w",
				i, len(pattern.Groups), len(config.Garland.Colors), ErrPatternMismatch)
		}
	}
	if config.Garland.LampsPerGroup < 0 {
		return fmt.Errorf("garland.lampsPerGroup must be >= 0: %w", ErrInvalidConfig)
	}

	jump := config.Hare.jumpParams(config.Width, config.Height)
	if err := jump.Validate(); err != nil {
		return err
	}

	if config.SnowCover.Capacity < 0 {
		return fmt.Errorf("snowCover.capacity must be >= 0: %w", ErrInvalidConfig)
	}
	if _, err := parseColor(config.SnowCover.Color); err != nil {
		return err
	}
	return nil
}

func (config *SnowfallConfig) intervals() []Interval {
	intervals := make([]Interval, len(config.Schedule))
	for i, ic := range config.Schedule {
		intervals[i] = Interval{Start: ic.Start, Finish: ic.Finish, Count: ic.Count}
	}
	return intervals
}

func (config *SnowfallConfig) snowflakeParams() SnowflakeParams {
	return SnowflakeParams{
		SpeedX:        config.SpeedX,
		SpeedY:        config.SpeedY,
		RotationSpeed: config.RotationSpeed,
		Small:         config.Small,
		Medium:        config.Medium,
		Large:         config.Large,
		MediumChance:  config.MediumChance,
		LargeChance:   config.LargeChance,
	}
}

func (config *GarlandConfig) colors() ([]color.RGBA, error) {
	colors := make([]color.RGBA, len(config.Colors))
	for i, s := range config.Colors {
		c, err := parseColor(s)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

func (config *GarlandConfig) patterns() []LightPattern {
	patterns := make([]LightPattern, len(config.Patterns))
	for i, pc := range config.Patterns {
		patterns[i] = LightPattern{Groups: pc.Groups, Duration: pc.Duration}
	}
	return patterns
}

func (config *HareConfig) jumpParams(width, height int) JumpParams {
	w, h := float64(width), float64(height)
	return JumpParams{
		Gravity:         config.Gravity * h,
		SpeedX:          config.SpeedX * w,
		SpeedY:          config.SpeedY * h,
		Ground:          config.Ground * h,
		StartX:          config.StartX * w,
		RestartInterval: config.RestartInterval,
	}
}

// parseColor parses a hex color such as "#ff8800".
func parseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color '%s': %v: %w", s, err, ErrInvalidConfig)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
