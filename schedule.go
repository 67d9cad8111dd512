package snowscene

import (
	"fmt"
	"math"
)

// Interval is a time window during which the snowfall is active and has a
// target number of snowflakes. A negative Finish means the window lasts until
// the end of the video.
type Interval struct {
	Start  float64
	Finish float64
	Count  int

	StartFrame  int
	FinishFrame int
}

// Resolve converts the interval's times into frame indices.
func (interval *Interval) Resolve(fps int, totalFrames int) {
	interval.StartFrame = int(math.Round(interval.Start * float64(fps)))
	if interval.Finish < 0 {
		interval.FinishFrame = totalFrames
	} else {
		interval.FinishFrame = int(math.Round(interval.Finish * float64(fps)))
	}
}

// Contains reports whether frameIdx lies within [StartFrame, FinishFrame).
func (interval *Interval) Contains(frameIdx int) bool {
	return interval.StartFrame <= frameIdx && frameIdx < interval.FinishFrame
}

// Demand is what the schedule asks of the snowfall at a given frame.
type Demand struct {
	Active bool
	Count  int
}

// Schedule resolves intervals to frames and walks through them monotonically.
type Schedule struct {
	intervals []Interval
	cursor    int
}

// NewSchedule resolves the intervals for the given frame rate and video length.
func NewSchedule(intervals []Interval, fps int, totalFrames int) (*Schedule, error) {
	if len(intervals) == 0 {
		return nil, ErrEmptySchedule
	}

	resolved := make([]Interval, len(intervals))
	copy(resolved, intervals)
	for i := range resolved {
		if i > 0 && resolved[i].Start < resolved[i-1].Start {
			return nil, fmt.Errorf("interval %d starts at %vs before interval %d at %vs: %w",
				i, resolved[i].Start, i-1, resolved[i-1].Start, ErrScheduleOrder)
		}
		resolved[i].Resolve(fps, totalFrames)
	}

	return &Schedule{intervals: resolved}, nil
}

// Intervals returns the resolved intervals.
func (schedule *Schedule) Intervals() []Interval {
	return schedule.intervals
}

// Advance moves the cursor forward to the interval covering frameIdx and
// reports the demand for that frame. The cursor never moves backward, so
// frame indices must not decrease between calls.
func (schedule *Schedule) Advance(frameIdx int) Demand {
	for schedule.cursor < len(schedule.intervals) &&
		schedule.intervals[schedule.cursor].FinishFrame < frameIdx {
		schedule.cursor++
	}

	if schedule.cursor >= len(schedule.intervals) {
		return Demand{}
	}

	interval := &schedule.intervals[schedule.cursor]
	return Demand{
		Active: interval.Contains(frameIdx),
		Count:  interval.Count,
	}
}
