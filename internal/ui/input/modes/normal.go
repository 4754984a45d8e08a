package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/domain"
	"slidereel/internal/ui/input/types"
)

// NormalMode maps key sets to presenter actions. Every keydown, repeats
// included, is its own intent; bounds are left to the navigation controller.
type NormalMode struct {
	keys *types.KeyMap
}

func NewNormalMode(keys *types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionForward}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionBackward}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopyAction{}}, true

	case key.Matches(msg, m.keys.Overview):
		if ctx != nil && ctx.SlideCount() == 0 {
			return nil, false
		}
		return []types.Action{types.OverviewAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true
	}

	return nil, false
}
