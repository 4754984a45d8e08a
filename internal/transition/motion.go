// Package transition describes and plays the slide "reel" motion.
//
// For is the pure contract: given a direction and a lifecycle phase it returns
// where a slide starts and where it settles. Player animates that contract over
// frames and Composite draws two frames side by side at their current offsets.
package transition

import "slidereel/internal/domain"

// Visual is a slide's position and visibility.
// Offset is a fraction of the container width; +1 is one full width towards the next slide.
type Visual struct {
	Offset  float64
	Opacity float64
}

// Motion is the start and target visual state of one slide
type Motion struct {
	From Visual
	To   Visual
}

var (
	settled  = Visual{Offset: 0, Opacity: 1}
	nextEdge = Visual{Offset: 1, Opacity: 0}
	prevEdge = Visual{Offset: -1, Opacity: 0}
)

// For returns the motion of a slide in the given phase when the deck moves in direction dir.
// Entering slides come in from the edge the move points at and exiting slides leave by the
// opposite edge, so consecutive forward moves scroll like a filmstrip.
// DirectionNone, and any settled phase, does not move at all.
func For(dir domain.Direction, phase domain.Phase) Motion {
	switch phase {
	case domain.PhaseEntering:
		switch dir {
		case domain.DirectionForward:
			return Motion{From: nextEdge, To: settled}
		case domain.DirectionBackward:
			return Motion{From: prevEdge, To: settled}
		}
	case domain.PhaseExiting:
		switch dir {
		case domain.DirectionForward:
			return Motion{From: settled, To: prevEdge}
		case domain.DirectionBackward:
			return Motion{From: settled, To: nextEdge}
		}
	}
	return Motion{From: settled, To: settled}
}

// At interpolates the motion: offset by t, opacity by o (both clamped to [0, 1])
func (m Motion) At(t, o float64) Visual {
	return Visual{
		Offset:  lerp(m.From.Offset, m.To.Offset, t),
		Opacity: lerp(m.From.Opacity, m.To.Opacity, clamp01(o)),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
