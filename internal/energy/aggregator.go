package energy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tofu702/solarstats/internal/models"
)

// toGridThresholdKWh is the export above which a day counts in
// MonthlyData.NumDaysWithToGridGT2.
const toGridThresholdKWh = 2.0

// AggregateAll returns one MonthlyData per .csv file in the data directory,
// ordered by file name (which is chronological for YYYY_MM.csv).
func (p *Parser) AggregateAll() ([]models.MonthlyData, error) {
	// ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: data directory %s", ErrMissingData, p.dir)
		}
		return nil, fmt.Errorf("failed to list %s: %w", p.dir, err)
	}

	var months []models.MonthlyData
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}

		firstDay, err := parseMonthFileName(entry.Name())
		if err != nil {
			return nil, err
		}
		rows, err := p.ParseFile(filepath.Join(p.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		months = append(months, Summarize(firstDay, rows))
	}

	p.logger.WithFields(logrus.Fields{
		"dir":    p.dir,
		"months": len(months),
	}).Debug("Aggregated month files")
	return months, nil
}

// Summarize totals the rows of one month. firstDay is taken as given; the row
// dates are not checked against it.
func Summarize(firstDay models.Date, rows []models.DailyData) models.MonthlyData {
	var home, powerwall, solar, fromGrid, toGrid decimal.Decimal
	out := models.MonthlyData{
		FirstDayOfMonth: firstDay,
		NumDaysInMonth:  len(rows),
	}

	for _, r := range rows {
		home = home.Add(decimal.NewFromFloat(r.HomeKWh))
		powerwall = powerwall.Add(decimal.NewFromFloat(r.FromPowerwallKWh))
		solar = solar.Add(decimal.NewFromFloat(r.SolarEnergyKWh))
		fromGrid = fromGrid.Add(decimal.NewFromFloat(r.FromGridKWh))
		toGrid = toGrid.Add(decimal.NewFromFloat(r.ToGridKWh))
		if r.ToGridKWh > toGridThresholdKWh {
			out.NumDaysWithToGridGT2++
		}
	}

	out.HomeKWh = home.InexactFloat64()
	out.FromPowerwallKWh = powerwall.InexactFloat64()
	out.SolarEnergyKWh = solar.InexactFloat64()
	out.FromGridKWh = fromGrid.InexactFloat64()
	out.ToGridKWh = toGrid.InexactFloat64()
	return out
}

// parseMonthFileName maps YYYY_MM.csv to the first day of that month.
func parseMonthFileName(name string) (models.Date, error) {
	stem := strings.TrimSuffix(name, ".csv")
	yearStr, monthStr, ok := strings.Cut(stem, "_")
	if !ok || len(yearStr) != 4 || len(monthStr) != 2 {
		return models.Date{}, &ParseError{Path: name, Err: errors.New("file name is not YYYY_MM.csv")}
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return models.Date{}, &ParseError{Path: name, Err: fmt.Errorf("invalid year %q", yearStr)}
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return models.Date{}, &ParseError{Path: name, Err: fmt.Errorf("invalid month %q", monthStr)}
	}
	return models.NewDate(year, time.Month(month), 1), nil
}
