package snowscene

import (
	"fmt"
	"math"
)

// JumpState is the state of the hare's jump state machine.
type JumpState int

const (
	// Standing on the ground and waiting for the next jump
	JumpGrounded JumpState = iota
	// Flying along the jump parabola
	JumpInAir
)

func (state JumpState) String() string {
	if state == JumpInAir {
		return "in-air"
	}
	return "grounded"
}

// JumpParams are the physical constants of a jump, in pixels and seconds.
// SpeedY is negative: the canvas y axis points down.
type JumpParams struct {
	Gravity         float64
	SpeedX          float64
	SpeedY          float64
	Ground          float64
	StartX          float64
	RestartInterval float64
}

// Duration returns the time from launch to landing.
func (params *JumpParams) Duration() float64 {
	return 2 * (-params.SpeedY) / params.Gravity
}

// Validate checks that a jump goes up and comes back down.
func (params *JumpParams) Validate() error {
	if params.SpeedY >= 0 {
		return fmt.Errorf("initial vertical speed %v must be negative: %w", params.SpeedY, ErrInvalidJump)
	}
	if params.Gravity <= 0 {
		return fmt.Errorf("gravity %v must be positive: %w", params.Gravity, ErrInvalidJump)
	}
	if params.RestartInterval < 0 {
		return fmt.Errorf("restart interval %v must not be negative: %w", params.RestartInterval, ErrInvalidJump)
	}
	return nil
}

// Hare hops forward along the ground. Its position is a closed-form function
// of the time elapsed since the last state transition.
type Hare struct {
	sprite   *Pixmap
	params   JumpParams
	duration float64
	fps      int

	state          JumpState
	x, y           float64
	launchX        float64
	transitionTime float64
}

// NewHare creates a hare standing at (StartX, Ground), ready to jump.
func NewHare(sprite *Pixmap, params JumpParams, fps int) (*Hare, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps %d: %w", fps, ErrInvalidConfig)
	}

	return &Hare{
		sprite:         sprite,
		params:         params,
		duration:       params.Duration(),
		fps:            fps,
		state:          JumpGrounded,
		x:              params.StartX,
		y:              params.Ground,
		launchX:        params.StartX,
		transitionTime: math.Inf(-1),
	}, nil
}

// State returns the current jump state.
func (hare *Hare) State() JumpState {
	return hare.state
}

// Advance moves the state machine to time t (seconds since the first frame)
// and returns the hare's position.
func (hare *Hare) Advance(t float64) (float64, float64) {
	if hare.state == JumpGrounded && t-hare.transitionTime >= hare.params.RestartInterval {
		hare.launch(t)
	}

	if hare.state == JumpGrounded {
		return hare.x, hare.y
	}

	elapsed := t - hare.transitionTime
	if elapsed >= hare.duration {
		hare.land(t)
		return hare.x, hare.y
	}
	return hare.positionAt(elapsed)
}

func (hare *Hare) launch(t float64) {
	hare.state = JumpInAir
	hare.launchX = hare.x
	hare.transitionTime = t
}

func (hare *Hare) land(t float64) {
	hare.x, hare.y = hare.positionAt(hare.duration)
	hare.state = JumpGrounded
	hare.transitionTime = t
}

// positionAt evaluates the jump parabola elapsed seconds after launch. The
// hare never goes below the ground.
func (hare *Hare) positionAt(elapsed float64) (float64, float64) {
	p := &hare.params
	x := hare.launchX + p.SpeedX*elapsed
	y := p.Ground + p.SpeedY*elapsed + 0.5*p.Gravity*elapsed*elapsed
	return x, math.Min(y, p.Ground)
}

// Render draws the hare at its position for the frame.
func (hare *Hare) Render(frameIdx int, canvas *Pixmap) error {
	x, y := hare.Advance(float64(frameIdx) / float64(hare.fps))
	DrawSprite(canvas, hare.sprite, x, y)
	return nil
}
