package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tofu702/solarstats/internal/models"
)

var daysCmd = &cobra.Command{
	Use:   "days START END",
	Short: "Print daily energy records",
	Long:  `Prints every daily record from START through END inclusive, followed by totals.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
	start, err := models.ParseDate(args[0])
	if err != nil {
		return err
	}
	end, err := models.ParseDate(args[1])
	if err != nil {
		return err
	}

	parser, err := newParser()
	if err != nil {
		return err
	}
	rows, err := parser.DataForRange(start, end)
	if err != nil {
		return fmt.Errorf("reading %s..%s: %w", start, end, err)
	}

	printDays(cmd.OutOrStdout(), rows)
	return nil
}

func printDays(w io.Writer, rows []models.DailyData) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No data found")
		return
	}

	const rule = "--------------------------------------------------------------------------"
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-12s  %10s  %10s  %10s  %10s  %10s\n", "Date", "Home", "Powerwall", "Solar", "From grid", "To grid")
	fmt.Fprintln(w, rule)

	var total models.DailyData
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s  %10.2f  %10.2f  %10.2f  %10.2f  %10.2f\n",
			r.Date, r.HomeKWh, r.FromPowerwallKWh, r.SolarEnergyKWh, r.FromGridKWh, r.ToGridKWh)
		total.HomeKWh += r.HomeKWh
		total.FromPowerwallKWh += r.FromPowerwallKWh
		total.SolarEnergyKWh += r.SolarEnergyKWh
		total.FromGridKWh += r.FromGridKWh
		total.ToGridKWh += r.ToGridKWh
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-12s  %10.2f  %10.2f  %10.2f  %10.2f  %10.2f\n",
		"Total", total.HomeKWh, total.FromPowerwallKWh, total.SolarEnergyKWh, total.FromGridKWh, total.ToGridKWh)
	fmt.Fprintf(w, "%d records, kWh\n", len(rows))
}
