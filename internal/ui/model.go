package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/config"
	"slidereel/internal/deck"
	"slidereel/internal/domain"
	"slidereel/internal/eventbus"
	"slidereel/internal/gesture"
	"slidereel/internal/logger"
	"slidereel/internal/navigation"
	"slidereel/internal/slide"
	"slidereel/internal/transition"
	"slidereel/internal/ui/adapters"
	"slidereel/internal/ui/input"
	inputtypes "slidereel/internal/ui/input/types"
	"slidereel/internal/ui/state"
	"slidereel/internal/ui/viewmodels"
	"slidereel/internal/ui/views"
)

// statusTTL is how long a status message stays in the footer
const statusTTL = 3 * time.Second

// Options configures a presenter model
type Options struct {
	Slides       slide.Sequence
	Info         domain.DeckInfo
	InitialSlide int
	Config       *config.Config
	Bus          eventbus.EventBus

	// Clipboard writes copied text; defaults to the system clipboard
	Clipboard func(string) error
	// Now is the pointer clock; defaults to time.Now
	Now func() time.Time
}

// anchor is the cell where the left button went down
type anchor struct {
	x, y int
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	slides slide.Sequence
	info   domain.DeckInfo
	nav    *navigation.Controller

	// Input channels
	inputHandler *input.Handler
	swipe        *gesture.Detector
	pointer      *adapters.PointerAdapter
	pressed      *anchor

	// Transition in flight. outgoing is the captured picture of the slide being left.
	player   *transition.Player
	outgoing string
	frameID  int

	renderer  *views.Renderer
	viewModel *viewmodels.ViewModel
	clipboard func(string) error

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	appState := state.NewAppState()
	keys := inputtypes.NewKeyMap(cfg.Keys)

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		slides:       opts.Slides,
		info:         opts.Info,
		nav:          navigation.New(len(opts.Slides), opts.InitialSlide, opts.Bus),
		inputHandler: input.New(keys),
		swipe:        gesture.NewDetector(cfg.GestureOptions()),
		pointer:      adapters.NewPointerAdapter(cfg.Swipe.CellWidth, cfg.Swipe.CellHeight, opts.Now),
		renderer:     views.NewRenderer(views.NewStyles(cfg.Theme)),
		viewModel:    viewmodels.NewViewModel(appState, cfg, keys),
		clipboard:    copyFn,
	}
	return m
}

// SetProgram gives the model the program it runs in, for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Navigation exposes the controller, for tests and the shell
func (m *Model) Navigation() *navigation.Controller {
	return m.nav
}

// Init attaches the input channels once and announces the presentation
func (m *Model) Init() tea.Cmd {
	m.inputHandler.Attach()
	if m.config.Swipe.Enabled {
		m.swipe.Attach()
	}
	m.publish(eventbus.PresentationStartedEvent{Slides: m.nav.Count(), Initial: m.nav.Current()})
	logger.Info("presentation started", "deck", m.info.Title, "slides", m.nav.Count(), "initial", m.nav.Current())

	if m.info.Title != "" {
		return tea.SetWindowTitle(m.info.Title)
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetHelpWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Nav: m.nav, Slides: m.slides}
		actions := m.inputHandler.HandleKey(msg, ctx)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 1 {
			return m, cmds[0]
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Quitting || m.state.InPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}
	vs := m.viewModel.BuildViewState(m.nav, m.slideArea(), m.info.Title)
	return m.renderer.Render(vs)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.navigate(a.Direction)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = m.inputHandler.CurrentMode() == inputtypes.ModeHelp
		return nil

	case inputtypes.CopyAction:
		return m.copyCurrent()

	case inputtypes.OverviewAction:
		return m.showOutline()

	case inputtypes.QuitAction:
		m.teardown()
		return tea.Quit
	}
	return nil
}

// handleMouse feeds the swipe detector and recognises arrow clicks.
// A release that completes a swipe is not also a click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.ShowHelp || m.state.Quitting {
		return nil
	}

	ev, ok := m.pointer.Convert(msg)
	if !ok {
		return nil
	}

	if ev.Kind == gesture.PointerDown {
		m.pressed = &anchor{x: msg.X, y: msg.Y}
		m.swipe.Handle(ev)
		return nil
	}

	pressed := m.pressed
	m.pressed = nil
	switch m.swipe.Handle(ev) {
	case gesture.SwipeLeft:
		return m.navigate(domain.DirectionForward)
	case gesture.SwipeRight:
		return m.navigate(domain.DirectionBackward)
	}

	if pressed == nil {
		return nil
	}
	layout := m.layout()
	canRetreat, canAdvance := m.nav.CanRetreat(), m.nav.CanAdvance()
	down, ok := layout.ArrowAt(pressed.x, pressed.y, canRetreat, canAdvance)
	if !ok {
		return nil
	}
	if up, ok := layout.ArrowAt(msg.X, msg.Y, canRetreat, canAdvance); ok && up == down {
		return m.navigate(down)
	}
	return nil
}

// navigate applies one advance or retreat intent and starts its transition
func (m *Model) navigate(dir domain.Direction) tea.Cmd {
	// The picture on screen right now, mid-transition or not, is what leaves
	before := m.slideArea()

	var moved bool
	switch dir {
	case domain.DirectionForward:
		moved = m.nav.Advance()
	case domain.DirectionBackward:
		moved = m.nav.Retreat()
	}
	if !moved {
		return nil
	}
	logger.Debug("slide changed", "current", m.nav.Current(), "direction", dir)
	return m.startTransition(dir, before)
}

func (m *Model) startTransition(dir domain.Direction, outgoing string) tea.Cmd {
	m.frameID++
	if !m.config.Transition.Enabled || m.state.Width == 0 {
		m.player = nil
		m.outgoing = ""
		return nil
	}
	m.player = transition.NewPlayer(dir, m.config.TransitionOptions())
	m.outgoing = outgoing
	if m.player.Done() {
		m.player = nil
		return nil
	}
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	id := m.frameID
	return tea.Tick(m.player.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// layout returns the screen regions for the current size
func (m *Model) layout() views.Layout {
	return views.NewLayout(m.state.Width, m.state.Height, m.config.UI.ShowArrows)
}

// slideArea renders the active slide, composited with the outgoing picture while a transition runs
func (m *Model) slideArea() string {
	idx, ok := m.nav.Active()
	if !ok || m.state.Width == 0 {
		return ""
	}
	s, ok := m.slides.At(idx)
	if !ok {
		return ""
	}
	area := m.layout().Slide
	frame := slide.Frame{
		Width:     area.W,
		Height:    area.H,
		Direction: m.nav.Direction(),
		Phase:     domain.PhaseSettled,
	}
	if m.player == nil {
		return s.Render(frame)
	}

	frame.Phase = domain.PhaseEntering
	styles := m.renderer.Styles()
	return transition.Composite(
		transition.Layer{Frame: m.outgoing, Visual: m.player.Visual(domain.PhaseExiting)},
		transition.Layer{Frame: s.Render(frame), Visual: m.player.Visual(domain.PhaseEntering)},
		area.W, area.H,
		transition.Tint{Foreground: styles.Foreground, Background: styles.Background},
	)
}

// copyCurrent copies the active slide's copy text to the clipboard
func (m *Model) copyCurrent() tea.Cmd {
	idx, ok := m.nav.Active()
	if !ok {
		return nil
	}
	s, _ := m.slides.At(idx)
	text := s.CopyText()
	if text == "" {
		return m.setStatus("Nothing to copy on this slide", false)
	}
	write := m.clipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return clipboardMsg{slide: idx, err: fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return clipboardMsg{slide: idx, bytes: len(text)}
	}
}

// showOutline opens the numbered slide list in the pager
func (m *Model) showOutline() tea.Cmd {
	if m.pager == nil || m.program == nil {
		return m.setStatus("Outline pager is not available", true)
	}
	content := Outline(m.info, m.slides, m.nav.Current())
	pager, program := m.pager, m.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles timers, command results and messages sent from outside
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.frameID || m.player == nil || m.state.InPagerMode {
			return m, nil
		}
		if m.player.Step() {
			return m, m.nextFrame()
		}
		m.player = nil
		m.outgoing = ""
		return m, nil

	case statusExpiredMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.publish(eventbus.ErrorEvent{Message: "clipboard copy failed", Err: msg.err})
			return m, m.setStatus(msg.err.Error(), true)
		}
		m.publish(eventbus.ClipboardCopiedEvent{Slide: msg.slide, Bytes: msg.bytes})
		return m, m.setStatus(fmt.Sprintf("Copied %d bytes to the clipboard", msg.bytes), false)

	case pagerMsg:
		if msg.err != nil {
			logger.Error("pager failed", "error", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager error: %v", msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case DeckReloadedMsg:
		if msg.Err != nil {
			return m, m.setStatus(fmt.Sprintf("Reload failed: %v", msg.Err), true)
		}
		return m, m.replaceDeck(msg.Deck)
	}
	return m, nil
}

// replaceDeck swaps in a reloaded deck with a fresh controller, keeping the position when it still exists
func (m *Model) replaceDeck(d *deck.Deck) tea.Cmd {
	if d == nil {
		return nil
	}
	previous := m.nav.Current()
	m.slides = d.Slides
	m.info = d.Info
	m.nav = navigation.New(len(d.Slides), previous, m.bus)
	m.player = nil
	m.outgoing = ""
	m.frameID++

	m.publish(eventbus.DeckReloadedEvent{Deck: d.Info, Current: m.nav.Current()})
	return m.setStatus(fmt.Sprintf("Reloaded %d slides", d.Info.SlideCount), false)
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	seq := m.state.SetStatus(msg, isError)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// teardown detaches every input channel and abandons any running transition
func (m *Model) teardown() {
	if m.state.Quitting {
		return
	}
	m.state.Quitting = true
	m.inputHandler.Detach()
	m.swipe.Detach()
	m.player = nil
	m.outgoing = ""
	m.pressed = nil
	m.publish(eventbus.PresentationEndedEvent{Last: m.nav.Current(), Moves: m.nav.Moves()})
	logger.Info("presentation ended", "last", m.nav.Current(), "moves", m.nav.Moves())
}

// Teardown detaches input; the shell calls it when the program exits by other means
func (m *Model) Teardown() {
	m.teardown()
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
