package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List color presets",
	Long: `List the built-in presets and any loaded from presets_dir.

Examples:
  tickcard presets                  # presets of the configured variant
  tickcard presets --variant card   # card presets
  tickcard presets export nord      # print a preset as TOML`,
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, v, err := presetCatalog(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Preset", "Description", "Colors"})
		table.SetBorder(false)
		table.SetColumnSeparator("  ")
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)

		fields := v.Fields()
		for _, p := range themes.Presets(v) {
			table.Append([]string{p.Name, p.Description, formatColors(p.Colors, fields)})
		}
		table.Render()
		return nil
	},
}

var presetsExportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Print a preset as a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, v, err := presetCatalog(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		p, ok := themes.LookupPreset(v, args[0])
		if !ok {
			return fmt.Errorf("no %s preset named %q (have: %s)", v, args[0], strings.Join(themes.PresetNames(v), ", "))
		}
		data, err := theme.SavePresetTOML(p)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	presetsCmd.AddCommand(presetsExportCmd)
	rootCmd.AddCommand(presetsCmd)
}

// presetCatalog loads the config and returns the catalog with user presets
// and the variant to list. Unreadable preset files are reported to warn.
func presetCatalog(warn io.Writer) (*theme.Catalog, theme.Variant, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	v, err := theme.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, "", err
	}
	themes := theme.NewCatalog()
	_, errs := theme.LoadPresetDir(themes, cfg.PresetsDir)
	for _, e := range errs {
		fmt.Fprintf(warn, "warning: skipping preset file: %v\n", e)
	}
	return themes, v, nil
}

// formatColors renders "field=#value" pairs in field order, followed by any
// extra keys sorted by name.
func formatColors(colors map[string]string, fields []string) string {
	seen := make(map[string]bool, len(fields))
	var parts []string
	for _, f := range fields {
		seen[f] = true
		if v, ok := colors[f]; ok {
			parts = append(parts, f+"="+v)
		}
	}
	var extra []string
	for k := range colors {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		parts = append(parts, k+"="+colors[k])
	}
	return strings.Join(parts, " ")
}
