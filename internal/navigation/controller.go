// Package navigation owns which slide is showing and moves through the deck.
package navigation

import (
	"slidereel/internal/domain"
	"slidereel/internal/eventbus"
)

// Controller is the slide navigation state machine.
// It is not safe for concurrent use; all calls come from the UI update loop.
type Controller struct {
	state State
	bus   eventbus.EventBus
	moves int
}

// New creates a controller over count slides starting at initial.
// An initial index outside the deck is clamped into it. bus may be nil.
func New(count, initial int, bus eventbus.EventBus) *Controller {
	if count < 0 {
		count = 0
	}
	c := &Controller{
		state: State{
			Count:     count,
			Direction: domain.DirectionNone,
		},
		bus: bus,
	}
	c.state.Current = c.clampIndex(initial)
	return c
}

// Count returns the number of slides
func (c *Controller) Count() int {
	return c.state.Count
}

// Current returns the active slide index
func (c *Controller) Current() int {
	return c.state.Current
}

// Direction returns the direction of the last effective move
func (c *Controller) Direction() domain.Direction {
	return c.state.Direction
}

// Moves returns how many effective moves were made
func (c *Controller) Moves() int {
	return c.moves
}

// Snapshot returns a copy of the navigation state
func (c *Controller) Snapshot() State {
	return c.state
}

// Active returns the index of the single slide to render
func (c *Controller) Active() (int, bool) {
	if c.state.Count == 0 {
		return 0, false
	}
	return c.state.Current, true
}

// CanAdvance reports whether the forward control should be shown
func (c *Controller) CanAdvance() bool {
	return c.state.Count > 0 && c.state.Current < c.state.Count-1
}

// CanRetreat reports whether the backward control should be shown
func (c *Controller) CanRetreat() bool {
	return c.state.Count > 0 && c.state.Current > 0
}

// Advance moves to the next slide. At the last slide it does nothing and returns false.
func (c *Controller) Advance() bool {
	if !c.CanAdvance() {
		return false
	}
	c.move(c.state.Current+1, domain.DirectionForward)
	return true
}

// Retreat moves to the previous slide. At the first slide it does nothing and returns false.
func (c *Controller) Retreat() bool {
	if !c.CanRetreat() {
		return false
	}
	c.move(c.state.Current-1, domain.DirectionBackward)
	return true
}

// Progress returns one marker per slide with exactly the current one active
func (c *Controller) Progress() []Marker {
	markers := make([]Marker, c.state.Count)
	for i := range markers {
		markers[i] = Marker{Index: i, Active: i == c.state.Current}
	}
	return markers
}

func (c *Controller) move(to int, direction domain.Direction) {
	from := c.state.Current
	c.state.Direction = direction
	c.state.Current = to
	c.moves++

	if c.bus != nil {
		c.bus.Publish(eventbus.SlideChangedEvent{
			From:      from,
			To:        to,
			Direction: direction,
		})
	}
}

func (c *Controller) clampIndex(index int) int {
	if c.state.Count == 0 || index < 0 {
		return 0
	}
	if index > c.state.Count-1 {
		return c.state.Count - 1
	}
	return index
}
