package gesture

import "time"

// PointerKind distinguishes pointer events
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
)

// PointerEvent is a position and timestamp from any pointer source
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	At   time.Time
}

type start struct {
	x, y float64
	at   time.Time
}

// Detector turns pointer down/up pairs into swipes.
// It only observes events between Attach and Detach.
type Detector struct {
	opts     Options
	attached bool
	start    *start
}

// NewDetector creates a detached detector
func NewDetector(opts Options) *Detector {
	if opts.Threshold < 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultMaxDuration
	}
	return &Detector{opts: opts}
}

// Options returns the classification options in use
func (d *Detector) Options() Options {
	return d.opts
}

// Attach starts observing pointer events
func (d *Detector) Attach() {
	d.attached = true
}

// Detach stops observing and forgets any gesture in progress
func (d *Detector) Detach() {
	d.attached = false
	d.start = nil
}

// Attached reports whether the detector is observing events
func (d *Detector) Attached() bool {
	return d.attached
}

// Handle feeds one pointer event. A pointer-up completing a recorded
// pointer-down returns its classification; everything else returns SwipeNone.
func (d *Detector) Handle(ev PointerEvent) Swipe {
	if !d.attached {
		return SwipeNone
	}

	switch ev.Kind {
	case PointerDown:
		d.start = &start{x: ev.X, y: ev.Y, at: ev.At}
		return SwipeNone

	case PointerUp:
		s := d.start
		d.start = nil
		if s == nil {
			return SwipeNone
		}
		return Classify(Trace{
			StartX:  s.x,
			StartY:  s.y,
			EndX:    ev.X,
			EndY:    ev.Y,
			Elapsed: ev.At.Sub(s.at),
		}, d.opts)
	}

	return SwipeNone
}
