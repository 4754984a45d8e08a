package views

import "slidereel/internal/domain"

const (
	// gutter is the width of the column reserved for each arrow
	gutter = 3
	// footerHeight is the progress and status line
	footerHeight = 1
	// Arrow glyphs
	backArrow    = "‹"
	forwardArrow = "›"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout splits the screen into the slide area, the arrow gutters and the footer
type Layout struct {
	Width   int
	Height  int
	Slide   Rect
	Back    Rect
	Forward Rect
	Footer  Rect
}

// NewLayout computes the regions for a width x height screen
func NewLayout(width, height int, showArrows bool) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	l := Layout{Width: width, Height: height}

	slideH := height - footerHeight
	if slideH < 0 {
		slideH = 0
	}
	// narrow screens keep the arrows in a single cell at each edge
	g := 0
	switch {
	case !showArrows:
	case width > 4*gutter:
		g = gutter
	case width >= 3:
		g = 1
	}
	l.Slide = Rect{X: g, Y: 0, W: width - 2*g, H: slideH}
	l.Footer = Rect{X: 0, Y: slideH, W: width, H: height - slideH}

	if g > 0 && slideH > 0 {
		mid := l.ArrowRow()
		top := mid - 1
		if top < 0 {
			top = 0
		}
		h := 3
		if top+h > slideH {
			h = slideH - top
		}
		l.Back = Rect{X: 0, Y: top, W: g, H: h}
		l.Forward = Rect{X: width - g, Y: top, W: g, H: h}
	}
	return l
}

// ArrowRow is the row both arrows are drawn on, the vertical centre of the slide area
func (l Layout) ArrowRow() int {
	return l.Slide.H / 2
}

// ArrowAt returns the direction of the visible arrow whose hit zone contains (x, y).
// An arrow that is not drawn has no hit zone.
func (l Layout) ArrowAt(x, y int, canRetreat, canAdvance bool) (domain.Direction, bool) {
	if canRetreat && l.Back.Contains(x, y) {
		return domain.DirectionBackward, true
	}
	if canAdvance && l.Forward.Contains(x, y) {
		return domain.DirectionForward, true
	}
	return domain.DirectionNone, false
}
