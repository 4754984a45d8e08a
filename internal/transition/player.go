package transition

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"slidereel/internal/domain"
)

// Options configures the animation
type Options struct {
	FPS             int
	Stiffness       float64
	Damping         float64
	OpacityDuration time.Duration
}

// DefaultOptions matches a stiff, lightly damped slide spring with a 300ms fade
func DefaultOptions() Options {
	return Options{
		FPS:             60,
		Stiffness:       300,
		Damping:         30,
		OpacityDuration: 300 * time.Millisecond,
	}
}

const (
	settleEpsilon = 0.002
	maxDuration   = 2 * time.Second
)

// Player steps one transition frame by frame.
// Offsets overshoot slightly because the spring is underdamped.
type Player struct {
	dir     domain.Direction
	spring  harmonica.Spring
	opts    Options
	frame   time.Duration
	pos     float64
	vel     float64
	elapsed time.Duration
	done    bool
}

// NewPlayer starts a transition in direction dir
func NewPlayer(dir domain.Direction, opts Options) *Player {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	if opts.Stiffness <= 0 {
		opts.Stiffness = DefaultOptions().Stiffness
	}
	if opts.Damping < 0 {
		opts.Damping = 0
	}

	// Unit mass: angular frequency sqrt(k), damping ratio c / (2*sqrt(k))
	omega := math.Sqrt(opts.Stiffness)
	zeta := opts.Damping / (2 * omega)

	p := &Player{
		dir:    dir,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), omega, zeta),
		opts:   opts,
		frame:  time.Second / time.Duration(opts.FPS),
	}
	if dir == domain.DirectionNone {
		p.pos = 1
		p.done = true
	}
	return p
}

// Direction returns the direction the transition was started with
func (p *Player) Direction() domain.Direction {
	return p.dir
}

// FrameInterval is the time between two Step calls
func (p *Player) FrameInterval() time.Duration {
	return p.frame
}

// Step advances the animation by one frame and reports whether it is still running
func (p *Player) Step() bool {
	if p.done {
		return false
	}
	p.elapsed += p.frame
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, 1)

	springSettled := math.Abs(1-p.pos) < settleEpsilon && math.Abs(p.vel) < settleEpsilon
	faded := p.elapsed >= p.opts.OpacityDuration
	if (springSettled && faded) || p.elapsed >= maxDuration {
		p.pos, p.vel = 1, 0
		p.done = true
	}
	return !p.done
}

// Done reports whether the transition has settled
func (p *Player) Done() bool {
	return p.done
}

// Visual returns the current visual state of a slide in the given phase
func (p *Player) Visual(phase domain.Phase) Visual {
	fade := 1.0
	if p.opts.OpacityDuration > 0 && !p.done {
		fade = float64(p.elapsed) / float64(p.opts.OpacityDuration)
	}
	return For(p.dir, phase).At(p.pos, fade)
}
