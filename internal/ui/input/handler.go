package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/ui/input/modes"
	"slidereel/internal/ui/input/types"
)

// Handler turns key messages into actions for the current mode.
// It ignores every key until Attach is called and again after Detach.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        *types.KeyMap
	attached    bool
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		keys:        &keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(h.keys)
	h.modes[types.ModeHelp] = modes.NewHelpMode(h.keys)

	return h
}

// Attach starts delivering key events. Calling it again has no effect.
func (h *Handler) Attach() {
	h.attached = true
}

// Detach stops delivering key events
func (h *Handler) Detach() {
	h.attached = false
}

// Attached reports whether the handler is subscribed to keys
func (h *Handler) Attached() bool {
	return h != nil && h.attached
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if !h.Attached() {
		return nil
	}
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}

		// Exit current mode
		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		}

		h.currentMode = changeMode.Mode

		// Enter new mode
		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		}
	}

	return allActions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// KeyMap returns the bindings, for help rendering
func (h *Handler) KeyMap() types.KeyMap {
	return *h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Reset returns to normal mode without running exit actions
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
