package cmd

import (
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the world clock catalog",
	Long: `List the zones the add-clock panel offers, with the current time and
UTC offset of each. Entries from the config catalog are included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		hour, err := clock.ParseHourFormat(cfg.HourFormat)
		if err != nil {
			return err
		}

		catalog, err := catalogFromConfig(cfg)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"City", "Timezone", "Time", "Offset"})
		table.SetBorder(false)
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
		})

		now := time.Now()
		for _, e := range catalog.Entries() {
			zt, err := clock.FormatZone(now, e.Timezone, hour)
			if err != nil {
				return err
			}
			table.Append([]string{e.Label, e.Timezone, zt.Time, zt.Offset})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
