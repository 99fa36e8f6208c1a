package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tofu702/solarstats/internal/models"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Print monthly energy rollups",
	Long:  `Prints one line per month file in the data directory with summed kWh and day counts.`,
	Args:  cobra.NoArgs,
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(cmd *cobra.Command, args []string) error {
	parser, err := newParser()
	if err != nil {
		return err
	}
	months, err := parser.AggregateAll()
	if err != nil {
		return fmt.Errorf("aggregating %s: %w", parser.Dir(), err)
	}

	printMonths(cmd.OutOrStdout(), months)
	return nil
}

func printMonths(w io.Writer, months []models.MonthlyData) {
	if len(months) == 0 {
		fmt.Fprintln(w, "No month files found")
		return
	}

	const rule = "------------------------------------------------------------------------------------"
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-8s  %10s  %10s  %10s  %10s  %10s  %5s  %8s\n",
		"Month", "Home", "Powerwall", "Solar", "From grid", "To grid", "Days", "Export>2")
	fmt.Fprintln(w, rule)
	for _, m := range months {
		fmt.Fprintf(w, "%-8s  %10.2f  %10.2f  %10.2f  %10.2f  %10.2f  %5d  %8d\n",
			fmt.Sprintf("%04d-%02d", m.FirstDayOfMonth.Year, int(m.FirstDayOfMonth.Month)),
			m.HomeKWh, m.FromPowerwallKWh, m.SolarEnergyKWh, m.FromGridKWh, m.ToGridKWh,
			m.NumDaysInMonth, m.NumDaysWithToGridGT2)
	}
}
