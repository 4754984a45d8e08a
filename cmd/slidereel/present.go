package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"slidereel/internal/deck"
	"slidereel/internal/eventbus"
	"slidereel/internal/logger"
	"slidereel/internal/ui"
)

// presentation is everything runProgram needs to show a deck
type presentation struct {
	Model       *ui.Model
	Bus         eventbus.EventBus
	DeckPath    string
	Watch       bool
	DeckOptions deck.Options
}

// present loads config and deck, then hands the assembled model to app.run
func (app *App) present(cmd *cobra.Command, path string) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}
	d, err := openDeck(path, cfg)
	if err != nil {
		return err
	}

	initial := 0
	if cmd.Flags().Changed("initial") {
		initial = app.Flags.Initial - 1
	} else if i, ok := d.Initial(); ok {
		initial = i
	}

	bus := eventbus.New()
	subscribeLogging(bus)
	bus.Publish(eventbus.DeckLoadedEvent{Deck: d.Info})

	model := ui.NewModel(ui.Options{
		Slides:       d.Slides,
		Info:         d.Info,
		InitialSlide: initial,
		Config:       cfg,
		Bus:          bus,
	})

	watch := app.Flags.Watch
	if watch && path == "" {
		logger.Warn("--watch ignored for the built-in deck")
		watch = false
	}

	return app.run(presentation{
		Model:       model,
		Bus:         bus,
		DeckPath:    path,
		Watch:       watch,
		DeckOptions: cfg.DeckOptions(),
	})
}

// runProgram runs the full-screen presenter until the user quits
func runProgram(p presentation) error {
	defer p.Bus.Close()

	program := tea.NewProgram(p.Model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	p.Model.SetProgram(program)

	if p.Watch {
		w, err := deck.Watch(p.DeckPath, p.DeckOptions, func(d *deck.Deck, err error) {
			if err != nil {
				p.Bus.Publish(eventbus.ErrorEvent{Message: "deck reload failed", Err: err})
			}
			program.Send(ui.DeckReloadedMsg{Deck: d, Err: err})
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	_, err := program.Run()
	p.Model.Teardown()
	if err != nil {
		return fmt.Errorf("failed to run presenter: %w", err)
	}
	return nil
}

// subscribeLogging records the presentation's domain events in the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeckLoadedEvent); ok {
			logger.Debug("deck ready", "title", event.Deck.Title, "slides", event.Deck.SlideCount)
		}
	})
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SlideChangedEvent); ok {
			logger.Debug("navigated", "from", event.From, "to", event.To, "direction", event.Direction)
		}
	})
	bus.Subscribe(eventbus.EventDeckReloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DeckReloadedEvent); ok {
			logger.Info("deck reloaded", "slides", event.Deck.SlideCount, "current", event.Current)
		}
	})
	bus.Subscribe(eventbus.EventClipboardCopied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ClipboardCopiedEvent); ok {
			logger.Info("copied slide text", "slide", event.Slide, "bytes", event.Bytes)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error(event.Message, "error", event.Err)
		}
	})
}
