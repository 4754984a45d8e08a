package navigation

import "slidereel/internal/domain"

// State holds all navigation state
type State struct {
	Count     int
	Current   int
	Direction domain.Direction
}

// Marker is one progress indicator entry
type Marker struct {
	Index  int
	Active bool
}
