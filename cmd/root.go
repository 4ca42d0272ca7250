// Package cmd implements the tickcard command line.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/tickcard/pkg/app"
	"gitlab.com/tinyland/lab/tickcard/pkg/terminal"
)

var (
	cfgFile    string
	verbose    bool
	flagTheme  string
	flagVar    string
	flag12h    bool
	flagLong   bool
	flagFull   bool
	flagLocate bool
)

var rootCmd = &cobra.Command{
	Use:   "tickcard",
	Short: "Decorative fullscreen clock for the terminal",
	Long: `tickcard shows a large clock card with the date, optional world clocks
and switchable color themes. Press f for fullscreen; the controls fade out
after a few seconds without mouse movement.

Usage:
  tickcard               Run the clock
  tickcard now           Print the card once and exit
  tickcard presets       List color presets
  tickcard zones         List the world clock catalog
  tickcard config        Print the effective configuration`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closeLog := setupLogger(cfg)
		defer closeLog()

		opts, err := buildOptions(cfg, logger, true)
		if err != nil {
			return err
		}
		model, err := app.NewModel(opts)
		if err != nil {
			return err
		}

		logger.Info("starting", "version", version, "variant", opts.Variant, "fullscreen", opts.StartFullscreen)
		mouse := tea.WithMouseAllMotion()
		if !terminal.DetectCapabilities().MouseMotion {
			mouse = tea.WithMouseCellMotion()
		}
		p := tea.NewProgram(model, mouse)
		final, err := p.Run()
		if m, ok := final.(app.Model); ok {
			m.Close()
		}
		if err != nil {
			logger.Error("TUI error", "error", err)
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ~/.config/tickcard/config.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVarP(&flagTheme, "theme", "t", "", "color preset name, or auto")
	pf.StringVar(&flagVar, "variant", "", "card layout: classic or card")
	pf.BoolVar(&flag12h, "12h", false, "12-hour clock")
	pf.BoolVar(&flagLong, "long-date", false, "long date format")

	rootCmd.Flags().BoolVarP(&flagFull, "fullscreen", "f", false, "start in fullscreen")
	rootCmd.Flags().BoolVar(&flagLocate, "location", false, "look up the place name from configured coordinates")
}
