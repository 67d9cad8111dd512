package snowscene

import (
	"fmt"
	"math"
)

// Sprites are the decoded sprite images of a scene, before preparation.
type Sprites struct {
	Snowflake *Pixmap
	Fir       *Pixmap
	Hare      *Pixmap
}

// BuildScene prepares the sprites and creates the layers of the scene in
// painting order: snow cover, snowfall, fir, garland, hare.
func BuildScene(config *Config, sprites Sprites) (*Scene, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	width, height := config.Width, config.Height
	totalFrames := config.TotalFrames()
	diagonal := math.Hypot(float64(width), float64(height))

	// Snow cover
	coverColor, err := parseColor(config.SnowCover.Color)
	if err != nil {
		return nil, err
	}
	cover := NewSnowCover(SnowCoverParams{
		Capacity: config.SnowCover.Capacity,
		Radius:   int(diagonal * config.SnowCover.RadiusScale),
		Color:    coverColor,
		LowStart: config.SnowCover.LowStart * float64(height),
		LowEnd:   config.SnowCover.LowEnd * float64(height),
	}, width, height, totalFrames, NewRand(config.Seed, streamSnowCover))

	// Snowfall
	flake, err := PrepareSprite(sprites.Snowflake, 0)
	if err != nil {
		return nil, fmt.Errorf("snowflake sprite: %w", err)
	}
	schedule, err := NewSchedule(config.Snowfall.intervals(), config.FPS, totalFrames)
	if err != nil {
		return nil, err
	}
	snowfall, err := NewSnowfall(schedule, flake, config.Snowfall.snowflakeParams(),
		width, height, config.Snowfall.SpawnEvery, NewRand(config.Seed, streamSnowfall))
	if err != nil {
		return nil, err
	}

	// Fir
	firSprite, err := PrepareSprite(sprites.Fir, int(float64(height)*config.Fir.Scale))
	if err != nil {
		return nil, fmt.Errorf("fir sprite: %w", err)
	}
	firX := float64(width) * config.Fir.X
	firY := float64(height) * config.Fir.Y
	fir := NewFir(firSprite, firX, firY)

	// Garland
	colors, err := config.Garland.colors()
	if err != nil {
		return nil, err
	}
	groups, err := NewLightGroups(firSprite, colors, config.Garland.LampsPerGroup,
		firX, firY, NewRand(config.Seed, streamGarland))
	if err != nil {
		return nil, fmt.Errorf("garland: %w", err)
	}
	garland, err := NewGarland(groups, config.Garland.patterns(), config.FPS,
		int(diagonal*config.Garland.RadiusScale))
	if err != nil {
		return nil, err
	}

	// Hare
	hareSprite, err := PrepareSprite(sprites.Hare, int(float64(height)*config.Hare.Scale))
	if err != nil {
		return nil, fmt.Errorf("hare sprite: %w", err)
	}
	hare, err := NewHare(hareSprite, config.Hare.jumpParams(width, height), config.FPS)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Layers: []Layer{cover, snowfall, fir, garland, hare},
	}, nil
}
