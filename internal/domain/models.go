package domain

// Direction is the axis of the most recent navigation move
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Sign returns +1 for forward, -1 for backward and 0 otherwise
func (d Direction) Sign() float64 {
	switch d {
	case DirectionForward:
		return 1
	case DirectionBackward:
		return -1
	default:
		return 0
	}
}

// Phase is the lifecycle phase of a slide within a transition
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseExiting
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseExiting:
		return "exiting"
	default:
		return "settled"
	}
}

// DeckInfo describes a loaded deck
type DeckInfo struct {
	Title      string
	Author     string
	Source     string // file path, "" for the built-in deck
	SlideCount int
}
