package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged        EventType = "SlideChanged"
	EventDeckLoaded          EventType = "DeckLoaded"
	EventDeckReloaded        EventType = "DeckReloaded"
	EventClipboardCopied     EventType = "ClipboardCopied"
	EventPresentationStarted EventType = "PresentationStarted"
	EventPresentationEnded   EventType = "PresentationEnded"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted after an effective Advance or Retreat
type SlideChangedEvent struct {
	From      int
	To        int
	Direction Direction
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// DeckLoadedEvent is emitted once the presentation's deck has been parsed
type DeckLoadedEvent struct {
	Deck DeckInfo
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadedEvent is emitted when a watched deck file was parsed again
type DeckReloadedEvent struct {
	Deck    DeckInfo
	Current int
}

func (e DeckReloadedEvent) Type() EventType { return EventDeckReloaded }

// ClipboardCopiedEvent is emitted when a slide's copy text reached the clipboard
type ClipboardCopiedEvent struct {
	Slide int
	Bytes int
}

func (e ClipboardCopiedEvent) Type() EventType { return EventClipboardCopied }

// PresentationStartedEvent is emitted when the program starts presenting
type PresentationStartedEvent struct {
	Slides  int
	Initial int
}

func (e PresentationStartedEvent) Type() EventType { return EventPresentationStarted }

// PresentationEndedEvent is emitted on teardown
type PresentationEndedEvent struct {
	Last  int
	Moves int
}

func (e PresentationEndedEvent) Type() EventType { return EventPresentationEnded }

// ErrorEvent is emitted when an ambient operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
