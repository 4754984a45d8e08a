// Command slidereel presents markdown slide decks in the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"slidereel/internal/config"
	"slidereel/internal/deck"
	"slidereel/internal/logger"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Flags holds the command line options shared by the subcommands
type Flags struct {
	ConfigPath  string
	Initial     int
	NoSwipe     bool
	NoAnimation bool
	Watch       bool
	LogLevel    string
	LogFile     string
}

// App represents the slidereel CLI application
type App struct {
	Flags Flags
	Out   io.Writer

	// run starts the interactive presenter; replaced in tests
	run func(p presentation) error
}

// NewApp creates a new slidereel CLI application
func NewApp() *App {
	return &App{
		Out: os.Stdout,
		run: runProgram,
	}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slidereel [deck.md]",
		Short: "Present markdown slide decks in the terminal",
		Long: `slidereel presents a markdown deck one slide at a time with animated
transitions. Navigate with the arrow keys, space, the on-screen arrows or a
horizontal mouse drag. Without a deck it presents the built-in demo.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Configure(app.Flags.LogLevel, app.Flags.LogFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.present(cmd, deckArg(args))
		},
	}
	rootCmd.SetOut(app.Out)

	rootCmd.PersistentFlags().StringVar(&app.Flags.ConfigPath, "config", "", "config file path (default ./.slidereel.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&app.Flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&app.Flags.LogFile, "log-file", "", "write logs to this file")

	rootCmd.Flags().IntVarP(&app.Flags.Initial, "initial", "i", 0, "slide to open on, 1-based")
	rootCmd.Flags().BoolVar(&app.Flags.NoSwipe, "no-swipe", false, "disable mouse swipe navigation")
	rootCmd.Flags().BoolVar(&app.Flags.NoAnimation, "no-animation", false, "switch slides without transitions")
	rootCmd.Flags().BoolVarP(&app.Flags.Watch, "watch", "w", false, "reload the deck when the file changes")

	app.addOutlineCommand(rootCmd)
	app.addInitConfigCommand(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}

// loadConfig reads the configuration named by --config, or the default locations
func (app *App) loadConfig() (*config.Config, error) {
	svc := config.NewConfigService(app.Flags.ConfigPath)

	var (
		cfg *config.Config
		err error
	)
	if app.Flags.ConfigPath != "" {
		cfg, err = svc.LoadFromPath(app.Flags.ConfigPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	if app.Flags.NoSwipe {
		cfg.Swipe.Enabled = false
	}
	if app.Flags.NoAnimation {
		cfg.Transition.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", svc.Path(), err)
	}
	logger.Debug("config loaded", "path", svc.Path())
	return cfg, nil
}

// openDeck loads the deck argument with the configured rendering options
func openDeck(path string, cfg *config.Config) (*deck.Deck, error) {
	d, err := deck.Open(path, cfg.DeckOptions())
	if err != nil {
		return nil, err
	}
	logger.Info("deck loaded", "source", d.Info.Source, "slides", d.Info.SlideCount)
	return d, nil
}

func deckArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
