package snowscene

import "errors"

// Errors reported while preparing or running a scene. All of them abort
// the render.
var (
	ErrUnsupportedChannels = errors.New("unsupported number of channels")
	ErrEmptySchedule       = errors.New("schedule is empty")
	ErrScheduleOrder       = errors.New("schedule intervals are not in time order")
	ErrEmptyPatterns       = errors.New("light pattern list is empty")
	ErrPatternMismatch     = errors.New("light pattern does not match the number of light groups")
	ErrPatternTooShort     = errors.New("light pattern lasts less than one frame")
	ErrNoOpaquePixels      = errors.New("sprite has no opaque pixels")
	ErrInvalidJump         = errors.New("invalid jump parameters")
	ErrSinkOpen            = errors.New("could not open frame sink")
	ErrFrameOrder          = errors.New("frames must be written in order")
	ErrInvalidConfig       = errors.New("invalid config")
)
