package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"slidereel/internal/config"
	"slidereel/internal/navigation"
	"slidereel/internal/ui/state"
	"slidereel/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	help   help.Model
	keys   help.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
		keys:   keys,
	}
}

// SetHelpWidth keeps the help model in step with the terminal width
func (vm *ViewModel) SetHelpWidth(width int) {
	vm.help.Width = width
}

// BuildViewState derives everything the renderer needs from the controller on every call
func (vm *ViewModel) BuildViewState(nav *navigation.Controller, slideArea, deckTitle string) views.ViewState {
	return views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		SlideArea:     slideArea,
		CanAdvance:    nav.CanAdvance(),
		CanRetreat:    nav.CanRetreat(),
		Progress:      nav.Progress(),
		DeckTitle:     deckTitle,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ShowHelp:      vm.state.ShowHelp,
		HelpModel:     vm.help,
		KeyMap:        vm.keys,
		ShowArrows:    vm.config.UI.ShowArrows,
		ShowDots:      vm.config.UI.ShowProgress,
		ShowCount:     vm.config.UI.ShowCounter,
	}
}
