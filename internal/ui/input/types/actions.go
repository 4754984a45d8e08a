package types

import "slidereel/internal/domain"

// NavigateAction moves one slide in Direction
type NavigateAction struct {
	Direction domain.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// CopyAction copies the active slide's copy text to the clipboard
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

// OverviewAction opens the deck outline in a pager
type OverviewAction struct{}

func (a OverviewAction) Type() string { return "overview" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
