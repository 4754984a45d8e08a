// Package gesture classifies pointer down/up pairs as horizontal swipes.
package gesture

import (
	"math"
	"time"
)

const (
	// DefaultThreshold is the minimum horizontal travel in logical pixels
	DefaultThreshold = 50.0
	// DefaultMaxDuration is the longest a swipe may take
	DefaultMaxDuration = 300 * time.Millisecond
)

// Swipe is the classification of a completed gesture
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeLeft
	SwipeRight
)

func (s Swipe) String() string {
	switch s {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// Options tunes classification
type Options struct {
	Threshold   float64
	MaxDuration time.Duration
}

// DefaultOptions returns the stock thresholds
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		MaxDuration: DefaultMaxDuration,
	}
}

// Trace is a completed gesture
type Trace struct {
	StartX, StartY float64
	EndX, EndY     float64
	Elapsed        time.Duration
}

// Classify reports a swipe when the trace is predominantly horizontal,
// travels further than the threshold and finishes within the time limit.
func Classify(tr Trace, opts Options) Swipe {
	dx := tr.EndX - tr.StartX
	dy := tr.EndY - tr.StartY

	if math.Abs(dx) <= math.Abs(dy) {
		return SwipeNone
	}
	if math.Abs(dx) <= opts.Threshold {
		return SwipeNone
	}
	if tr.Elapsed < 0 || tr.Elapsed >= opts.MaxDuration {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}
