package snowscene

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// LightGroup is a set of lamps of one color. Anchors are canvas coordinates
// and never change once the group is built.
type LightGroup struct {
	Color   color.RGBA
	Anchors []image.Point
}

// LightPattern tells which groups are lit and for how long, in seconds.
type LightPattern struct {
	Groups   []bool
	Duration float64
}

// SampleAnchors picks count random points of the sprite whose alpha is not
// zero. Points are in sprite coordinates.
func SampleAnchors(sprite *Pixmap, count int, rng *rand.Rand) ([]image.Point, error) {
	if sprite.IsEmpty() || sprite.PixFormat != RGBA32 {
		return nil, fmt.Errorf("light anchors: %w", ErrUnsupportedChannels)
	}

	if !hasOpaquePixel(sprite) {
		return nil, ErrNoOpaquePixels
	}

	anchors := make([]image.Point, 0, count)
	for len(anchors) < count {
		x := rng.IntN(sprite.Width)
		y := rng.IntN(sprite.Height)
		if sprite.Data[sprite.PixOffset(x, y)+3] > 0 {
			anchors = append(anchors, image.Point{X: x, Y: y})
		}
	}
	return anchors, nil
}

func hasOpaquePixel(sprite *Pixmap) bool {
	for y := 0; y < sprite.Height; y++ {
		row := sprite.Data[y*sprite.BytePerLine:]
		for x := 0; x < sprite.Width; x++ {
			if row[x*4+3] > 0 {
				return true
			}
		}
	}
	return false
}

// NewLightGroups samples perGroup lamps for every color inside the opaque
// area of the figure and moves them to canvas coordinates, given that the
// figure is drawn centered at (centerX, centerY). Anchors are rounded to the
// nearest pixel, ties to even.
func NewLightGroups(figure *Pixmap, colors []color.RGBA, perGroup int,
	centerX, centerY float64, rng *rand.Rand) ([]LightGroup, error) {

	left := centerX - float64(figure.Width)/2
	top := centerY - float64(figure.Height)/2

	groups := make([]LightGroup, len(colors))
	for i, c := range colors {
		anchors, err := SampleAnchors(figure, perGroup, rng)
		if err != nil {
			return nil, err
		}
		for j, pt := range anchors {
			anchors[j] = image.Point{
				X: int(math.RoundToEven(float64(pt.X) + left)),
				Y: int(math.RoundToEven(float64(pt.Y) + top)),
			}
		}
		groups[i] = LightGroup{Color: c, Anchors: anchors}
	}
	return groups, nil
}

// Garland cycles through light patterns, drawing the lamps of the lit groups.
type Garland struct {
	groups     []LightGroup
	patterns   []LightPattern
	limits     []int
	radiusBase int

	index    int
	counter  int
	switches int
}

// NewGarland checks the patterns against the groups and converts durations
// to frames.
func NewGarland(groups []LightGroup, patterns []LightPattern, fps int, radiusBase int) (*Garland, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatterns
	}

	limits := make([]int, len(patterns))
	for i, pattern := range patterns {
		if len(pattern.Groups) != len(groups) {
			return nil, fmt.Errorf("pattern %d has %d flags for %d groups: %w",
				i, len(pattern.Groups), len(groups), ErrPatternMismatch)
		}
		limits[i] = int(math.Round(pattern.Duration * float64(fps)))
		if limits[i] < 1 {
			return nil, fmt.Errorf("pattern %d lasts %vs at %d fps: %w",
				i, pattern.Duration, fps, ErrPatternTooShort)
		}
	}

	return &Garland{
		groups:     groups,
		patterns:   patterns,
		limits:     limits,
		radiusBase: radiusBase,
	}, nil
}

// PatternIndex returns the index of the current pattern.
func (garland *Garland) PatternIndex() int {
	return garland.index
}

// Switches returns how many times the pattern has changed since the start.
// Unlike PatternIndex it does not wrap.
func (garland *Garland) Switches() int {
	return garland.switches
}

// Radius returns the lamp radius for the current pattern. It starts at
// radiusBase and grows by radiusBase/2 with every full pattern cycle, for the
// whole run. The ramp is evaluated in float32; every value it can take is a
// multiple of radiusBase/(2*len(patterns)), so truncation to int is exact.
func (garland *Garland) Radius() int {
	base := float32(garland.radiusBase)
	return int(ease.Linear(float32(garland.switches), base, base/2, float32(len(garland.patterns))))
}

// Render draws the lit groups and moves to the next pattern once the current
// one has been shown for its duration.
func (garland *Garland) Render(frameIdx int, canvas *Pixmap) error {
	pattern := &garland.patterns[garland.index]
	radius := garland.Radius()

	for i, lit := range pattern.Groups {
		if !lit {
			continue
		}
		group := &garland.groups[i]
		for _, pt := range group.Anchors {
			FillDisc(canvas, float64(pt.X), float64(pt.Y), radius, group.Color)
		}
	}

	garland.counter++
	if garland.counter >= garland.limits[garland.index] {
		garland.counter = 0
		garland.index = (garland.index + 1) % len(garland.patterns)
		garland.switches++
	}
	return nil
}
