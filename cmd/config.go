package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/tickcard/pkg/config"
)

var configYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file, TICKCARD_*
environment variables and flags have been applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return config.Encode(cmd.OutOrStdout(), cfg, configYAML)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which config file is used and where tickcard looks",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case cfgFile != "":
			fmt.Fprintf(out, "using: %s (--config)\n", cfgFile)
		default:
			if p, ok := config.FindConfigFile(); ok {
				fmt.Fprintf(out, "using: %s\n", p)
			} else {
				fmt.Fprintln(out, "using: built-in defaults")
			}
		}
		fmt.Fprintln(out, "search path:")
		for _, p := range config.SearchPaths() {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configYAML, "yaml", false, "print YAML instead of TOML")
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
