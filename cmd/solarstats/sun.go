package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tofu702/solarstats/internal/models"
	"github.com/tofu702/solarstats/internal/sun"
)

var (
	sunEnd       string
	sunLatitude  float64
	sunLongitude float64
	sunTimezone  string
)

var sunCmd = &cobra.Command{
	Use:   "sun DATE",
	Short: "Print sun times and day length",
	Long: `Prints sunrise, solar noon, sunset, day length and noon altitude for DATE, or for
every day from DATE through --end. The location defaults to the configured site.`,
	Args: cobra.ExactArgs(1),
	RunE: runSun,
}

func init() {
	sunCmd.Flags().StringVar(&sunEnd, "end", "", "last date of the range, inclusive (YYYY-MM-DD)")
	sunCmd.Flags().Float64Var(&sunLatitude, "latitude", 0, "latitude in degrees (default from config)")
	sunCmd.Flags().Float64Var(&sunLongitude, "longitude", 0, "longitude in degrees (default from config)")
	sunCmd.Flags().StringVar(&sunTimezone, "timezone", "", "IANA timezone (default from config)")
	rootCmd.AddCommand(sunCmd)
}

func runSun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	loc := cfg.Site.Location()
	if cmd.Flags().Changed("latitude") {
		loc.Latitude = sunLatitude
	}
	if cmd.Flags().Changed("longitude") {
		loc.Longitude = sunLongitude
	}
	if sunTimezone != "" {
		loc.Timezone = sunTimezone
	}

	start, err := models.ParseDate(args[0])
	if err != nil {
		return err
	}
	end := start
	if sunEnd != "" {
		if end, err = models.ParseDate(sunEnd); err != nil {
			return err
		}
	}

	stats, err := sun.NewCalculator(logger).ComputeRange(start, end, loc)
	if err != nil {
		return err
	}

	printSunTable(cmd.OutOrStdout(), loc, stats)
	return nil
}

func printSunTable(w io.Writer, loc sun.Location, stats map[string]models.SunStats) {
	days := make([]string, 0, len(stats))
	for day := range stats {
		days = append(days, day)
	}
	sort.Strings(days)

	fmt.Fprintf(w, "Sun at %.4f, %.4f (%s)\n", loc.Latitude, loc.Longitude, loc.Timezone)
	fmt.Fprintln(w, "------------------------------------------------------------------")
	fmt.Fprintf(w, "%-12s  %-9s  %-9s  %-9s  %10s  %10s\n", "Date", "Sunrise", "Noon", "Sunset", "Day (h)", "Alt (deg)")
	fmt.Fprintln(w, "------------------------------------------------------------------")
	for _, day := range days {
		s := stats[day]
		fmt.Fprintf(w, "%-12s  %-9s  %-9s  %-9s  %10s  %10s\n",
			day, clock(s.SunriseTime), clock(s.NoonTime), clock(s.SunsetTime),
			number(s.DayLengthHours, 2), number(s.NoonAltitudeDeg, 1))
	}
}

func clock(t *models.TimeOfDay) string {
	if t == nil {
		return "-"
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func number(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}
