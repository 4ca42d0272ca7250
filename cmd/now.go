package cmd

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/tickcard/pkg/app"
	"gitlab.com/tinyland/lab/tickcard/pkg/terminal"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the clock card once and exit",
	Long: `Render the card for the current instant to stdout, sized to the terminal
width, without controls. Useful in shell greetings and scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, err := buildOptions(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
		if err != nil {
			return err
		}
		opts.StartFullscreen = false

		m, err := app.NewModel(opts)
		if err != nil {
			return err
		}
		defer m.Close()

		width := terminal.DetectCapabilities().Size.Cols
		// Drive the card to fullscreen idle so the controls are left out.
		var next tea.Model = m
		next, _ = next.Update(tea.WindowSizeMsg{Width: width})
		next, _ = next.Update(app.FullscreenChangedEvent{On: true})
		if d, ok := next.(app.Model).Visibility().PendingDeadline(); ok {
			next, _ = next.Update(app.IdleTimeoutEvent{Deadline: d})
		}
		fmt.Fprintln(cmd.OutOrStdout(), next.View())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
}
