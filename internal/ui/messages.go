package ui

import "slidereel/internal/deck"

// DeckReloadedMsg carries a deck re-read from disk, or the error that stopped it
type DeckReloadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// frameMsg advances the transition started with the same id
type frameMsg struct {
	id int
}

// statusExpiredMsg clears the status message with sequence seq
type statusExpiredMsg struct {
	seq int
}

// clipboardMsg contains the result of a copy to the clipboard
type clipboardMsg struct {
	slide int
	bytes int
	err   error
}

// pagerMsg contains the result of the outline pager
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
