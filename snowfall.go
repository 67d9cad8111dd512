package snowscene

import (
	"fmt"
	"math/rand/v2"
)

const defaultSpawnEvery = 3

// Snowfall owns the pool of falling snowflakes and keeps it in line with the
// schedule.
type Snowfall struct {
	schedule   *Schedule
	original   *Pixmap
	params     SnowflakeParams
	width      int
	height     int
	spawnEvery int
	rng        *rand.Rand

	snowflakes []Snowflake
}

// NewSnowfall creates an empty pool. The original sprite must be RGBA32; it
// is rescaled for every spawned flake. spawnEvery is the frame cadence of
// new flakes; zero selects the default.
func NewSnowfall(schedule *Schedule, original *Pixmap, params SnowflakeParams,
	width, height, spawnEvery int, rng *rand.Rand) (*Snowfall, error) {

	if schedule == nil {
		return nil, ErrEmptySchedule
	}
	if original.IsEmpty() || original.PixFormat != RGBA32 {
		return nil, fmt.Errorf("snowflake sprite: %w", ErrUnsupportedChannels)
	}
	if spawnEvery <= 0 {
		spawnEvery = defaultSpawnEvery
	}

	return &Snowfall{
		schedule:   schedule,
		original:   original,
		params:     params,
		width:      width,
		height:     height,
		spawnEvery: spawnEvery,
		rng:        rng,
	}, nil
}

// Len returns the number of slots in the pool.
func (snowfall *Snowfall) Len() int {
	return len(snowfall.snowflakes)
}

// Snowflake returns the slot at index i.
func (snowfall *Snowfall) Snowflake(i int) *Snowflake {
	return &snowfall.snowflakes[i]
}

// Render advances every flake by one frame, draws it and recycles or removes
// the flakes that fell out of the canvas.
func (snowfall *Snowfall) Render(frameIdx int, canvas *Pixmap) error {
	demand := snowfall.schedule.Advance(frameIdx)

	for i := range snowfall.snowflakes {
		flake := &snowfall.snowflakes[i]
		if err := flake.Step(); err != nil {
			return err
		}
		flake.Draw(canvas)

		if !flake.IsOut(snowfall.height) {
			continue
		}
		if demand.Active {
			if err := snowfall.reset(flake); err != nil {
				return err
			}
		} else {
			flake.MarkRemove()
		}
	}

	if !demand.Active && len(snowfall.snowflakes) > 0 {
		snowfall.compact()
	}

	if demand.Active &&
		len(snowfall.snowflakes) < demand.Count &&
		frameIdx%snowfall.spawnEvery == 0 {
		var flake Snowflake
		if err := snowfall.reset(&flake); err != nil {
			return err
		}
		snowfall.snowflakes = append(snowfall.snowflakes, flake)
	}

	return nil
}

func (snowfall *Snowfall) reset(flake *Snowflake) error {
	return flake.Reset(snowfall.rng, &snowfall.params, snowfall.original, snowfall.width, snowfall.height)
}

// compact drops the flagged slots, keeping the order of the others.
func (snowfall *Snowfall) compact() {
	kept := snowfall.snowflakes[:0]
	for _, flake := range snowfall.snowflakes {
		if !flake.Removed() {
			kept = append(kept, flake)
		}
	}
	for i := len(kept); i < len(snowfall.snowflakes); i++ {
		snowfall.snowflakes[i] = Snowflake{}
	}
	snowfall.snowflakes = kept
}
