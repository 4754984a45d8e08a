package adapters

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/gesture"
)

// PointerAdapter turns terminal mouse messages into generic pointer events.
// Cell coordinates are scaled to approximate pixels so swipe thresholds keep
// the meaning they have on a pixel display.
type PointerAdapter struct {
	cellWidth  float64
	cellHeight float64
	now        func() time.Time
}

// NewPointerAdapter creates an adapter for cells of the given pixel size
func NewPointerAdapter(cellWidth, cellHeight int, now func() time.Time) *PointerAdapter {
	if cellWidth <= 0 {
		cellWidth = 8
	}
	if cellHeight <= 0 {
		cellHeight = 16
	}
	if now == nil {
		now = time.Now
	}
	return &PointerAdapter{
		cellWidth:  float64(cellWidth),
		cellHeight: float64(cellHeight),
		now:        now,
	}
}

// Convert maps a left-button press to PointerDown and any release to PointerUp.
// Other mouse messages have no pointer meaning.
func (a *PointerAdapter) Convert(msg tea.MouseMsg) (gesture.PointerEvent, bool) {
	var kind gesture.PointerKind
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		kind = gesture.PointerDown
	case msg.Action == tea.MouseActionRelease:
		kind = gesture.PointerUp
	default:
		return gesture.PointerEvent{}, false
	}
	return gesture.PointerEvent{
		Kind: kind,
		X:    float64(msg.X) * a.cellWidth,
		Y:    float64(msg.Y) * a.cellHeight,
		At:   a.now(),
	}, true
}
