package snowscene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Snowball is one marker of the snow cover. Markers never move.
type Snowball struct {
	X, Y   float64
	Radius int
}

// SnowCoverParams configures the accumulation layer. LowStart and LowEnd are
// the upper edge of the band new snowballs are placed in, at the first and
// at the last frame.
type SnowCoverParams struct {
	Capacity int
	Radius   int
	Color    color.RGBA
	LowStart float64
	LowEnd   float64
}

// SnowCover grows a set of snowballs over the run until it holds Capacity of
// them at the last frame.
type SnowCover struct {
	params      SnowCoverParams
	width       int
	height      int
	totalFrames int
	rng         *rand.Rand

	snowballs []Snowball
}

// NewSnowCover creates an empty snow cover.
func NewSnowCover(params SnowCoverParams, width, height, totalFrames int, rng *rand.Rand) *SnowCover {
	return &SnowCover{
		params:      params,
		width:       width,
		height:      height,
		totalFrames: totalFrames,
		rng:         rng,
	}
}

// Len returns the number of snowballs.
func (cover *SnowCover) Len() int {
	return len(cover.snowballs)
}

// Snowballs returns the snowballs created so far.
func (cover *SnowCover) Snowballs() []Snowball {
	return cover.snowballs
}

// Progress returns the fraction of the run done at frameIdx, in [0, 1].
func (cover *SnowCover) Progress(frameIdx int) float64 {
	if cover.totalFrames <= 1 {
		return 1
	}
	f := float64(frameIdx) / float64(cover.totalFrames-1)
	return math.Max(0, math.Min(1, f))
}

// BandTop returns the upper edge of the placement band at progress f,
// evaluated in float32.
func (cover *SnowCover) BandTop(f float64) float64 {
	p := &cover.params
	return float64(ease.Linear(float32(f), float32(p.LowStart), float32(p.LowEnd-p.LowStart), 1))
}

// Render adds the snowballs due at frameIdx and draws all of them.
func (cover *SnowCover) Render(frameIdx int, canvas *Pixmap) error {
	f := cover.Progress(frameIdx)
	target := int(math.Floor(float64(cover.params.Capacity) * f))
	top := cover.BandTop(f)
	band := Range{Min: top, Max: float64(cover.height)}

	for i := len(cover.snowballs); i < target; i++ {
		cover.snowballs = append(cover.snowballs, Snowball{
			X:      float64(cover.width) * cover.rng.Float64(),
			Y:      band.Random(cover.rng),
			Radius: cover.params.Radius,
		})
	}

	for _, sb := range cover.snowballs {
		FillDisc(canvas, sb.X, sb.Y, sb.Radius, cover.params.Color)
	}
	return nil
}
