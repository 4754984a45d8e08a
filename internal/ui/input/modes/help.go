package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/ui/input/types"
)

// HelpMode is active while the help overlay is shown
type HelpMode struct {
	keys *types.KeyMap
}

func NewHelpMode(keys *types.KeyMap) *HelpMode {
	return &HelpMode{keys: keys}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch msg.String() {
	case "esc", "enter", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// The overlay swallows everything else
	return nil, true
}
