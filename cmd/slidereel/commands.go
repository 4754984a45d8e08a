package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slidereel/internal/config"
	"slidereel/internal/ui"
)

func (app *App) addOutlineCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "outline [deck.md]",
		Short: "Print the numbered slide titles of a deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			d, err := openDeck(deckArg(args), cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), ui.Outline(d.Info, d.Slides, -1))
			return err
		},
	})
}

func (app *App) addInitConfigCommand(rootCmd *cobra.Command) {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration file",
		Long: `Writes the default configuration to path, or to the user config
directory when path is omitted. A .yaml or .yml extension writes YAML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := deckArg(args)
			if path == "" {
				path = app.Flags.ConfigPath
			}
			svc := config.NewConfigService(path)
			path = svc.Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(cmd)
}

func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of slidereel",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slidereel %s\n", Version)
		},
	})
}
