package input

import (
	"slidereel/internal/navigation"
	"slidereel/internal/slide"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Nav    *navigation.Controller
	Slides slide.Sequence
}

// CurrentSlide returns the active slide index
func (c *ModelContext) CurrentSlide() int {
	return c.Nav.Current()
}

// SlideCount returns the number of slides
func (c *ModelContext) SlideCount() int {
	return c.Nav.Count()
}

// HasCopyText reports whether the active slide has text to copy
func (c *ModelContext) HasCopyText() bool {
	idx, ok := c.Nav.Active()
	if !ok {
		return false
	}
	s, ok := c.Slides.At(idx)
	return ok && s.CopyText() != ""
}
