// Package slide defines the boundary between the presenter and slide content.
package slide

import (
	"strings"

	"slidereel/internal/domain"
)

// Frame is what a slide is rendered into
type Frame struct {
	Width     int
	Height    int
	Direction domain.Direction
	Phase     domain.Phase
}

// Content is one slide. The presenter never looks inside it.
type Content interface {
	Title() string
	Render(f Frame) string
	CopyText() string
}

// Sequence is the ordered deck the navigation controller indexes into
type Sequence []Content

// Len returns the number of slides
func (s Sequence) Len() int {
	return len(s)
}

// At returns slide i, or false when i is out of range
func (s Sequence) At(i int) (Content, bool) {
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// Titles returns every slide title in order
func (s Sequence) Titles() []string {
	titles := make([]string, len(s))
	for i, c := range s {
		titles[i] = c.Title()
	}
	return titles
}

// Text is plain pre-rendered content
type Text struct {
	Heading string
	Body    string
	Copy    string
}

// Title implements Content
func (t Text) Title() string {
	return t.Heading
}

// Render implements Content
func (t Text) Render(f Frame) string {
	if t.Heading == "" {
		return t.Body
	}
	var sb strings.Builder
	sb.WriteString(t.Heading)
	if t.Body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(t.Body)
	}
	return sb.String()
}

// CopyText implements Content
func (t Text) CopyText() string {
	return t.Copy
}
