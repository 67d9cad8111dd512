package snowscene

import (
	"math"
	"math/rand/v2"
)

// SizeClass is the size category of a snowflake.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// SnowflakeParams holds the random ranges snowflakes are spawned from.
// Sizes are fractions of the canvas height applied to the sprite height.
type SnowflakeParams struct {
	SpeedX        Range
	SpeedY        Range
	RotationSpeed Range

	Small  Range
	Medium Range
	Large  Range
	// A draw above MediumChance picks a medium flake, above LargeChance a
	// large one.
	MediumChance float64
	LargeChance  float64
}

// DefaultSnowflakeParams returns the ranges of the original scene.
func DefaultSnowflakeParams() SnowflakeParams {
	return SnowflakeParams{
		SpeedX:        Range{-0.5, 0.5},
		SpeedY:        Range{0.5, 4},
		RotationSpeed: Range{-2, 2},
		Small:         Range{0.01, 0.05},
		Medium:        Range{0.05, 0.12},
		Large:         Range{0.12, 0.16},
		MediumChance:  0.2,
		LargeChance:   0.98,
	}
}

// SizeClassFor maps a uniform draw in [0, 1) to a size class.
func (params *SnowflakeParams) SizeClassFor(chance float64) SizeClass {
	switch {
	case chance > params.LargeChance:
		return SizeLarge
	case chance > params.MediumChance:
		return SizeMedium
	default:
		return SizeSmall
	}
}

func (params *SnowflakeParams) scaleRange(class SizeClass) Range {
	switch class {
	case SizeLarge:
		return params.Large
	case SizeMedium:
		return params.Medium
	default:
		return params.Small
	}
}

type snowflakeState int

const (
	snowflakeFalling snowflakeState = iota
	snowflakeRemoved
)

// Snowflake is one slot of the snowfall pool. A slot is recycled with Reset
// instead of being reallocated.
type Snowflake struct {
	state snowflakeState

	X, Y   float64
	VX, VY float64

	Class         SizeClass
	Rotation      float64
	RotationSpeed float64

	base    *Pixmap
	rotated *Pixmap
}

// Reset respawns the slot above the canvas with fresh random state.
func (flake *Snowflake) Reset(rng *rand.Rand, params *SnowflakeParams, original *Pixmap, width, height int) error {
	flake.state = snowflakeFalling
	flake.VY = params.SpeedY.Random(rng)
	flake.VX = params.SpeedX.Random(rng)

	flake.Class = params.SizeClassFor(rng.Float64())
	scale := params.scaleRange(flake.Class).Random(rng)

	base, err := ScaleToHeight(original, int(float64(height)*scale))
	if err != nil {
		return err
	}
	flake.base = base
	flake.rotated = base

	diagonal := math.Hypot(float64(base.Width), float64(base.Height))
	flake.X = float64(rng.IntN(max(width, 1)))
	flake.Y = -diagonal

	flake.Rotation = 360 * rng.Float64()
	flake.RotationSpeed = params.RotationSpeed.Random(rng)
	return nil
}

// Step integrates position and rotation by one frame and refreshes the
// rotated sprite.
func (flake *Snowflake) Step() error {
	flake.X += flake.VX
	flake.Y += flake.VY
	flake.Rotation += flake.RotationSpeed

	rotated, err := Rotate(flake.base, flake.Rotation)
	if err != nil {
		return err
	}
	flake.rotated = rotated
	return nil
}

// Draw composites the rotated sprite onto the canvas.
func (flake *Snowflake) Draw(canvas *Pixmap) {
	DrawSprite(canvas, flake.rotated, flake.X, flake.Y)
}

// IsOut reports whether the flake has left the canvas through the bottom edge.
func (flake *Snowflake) IsOut(height int) bool {
	return flake.Y-float64(flake.rotated.Height)/2 > float64(height)
}

// MarkRemove flags the slot for removal at the next compaction.
func (flake *Snowflake) MarkRemove() {
	flake.state = snowflakeRemoved
}

// Removed reports whether the slot is flagged for removal.
func (flake *Snowflake) Removed() bool {
	return flake.state == snowflakeRemoved
}

// Sprite returns the current rotated sprite.
func (flake *Snowflake) Sprite() *Pixmap {
	return flake.rotated
}
