// Package energy reads the monthly energy CSV files of a solar installation and
// derives daily records and monthly rollups from them.
//
// The data directory holds one file per calendar month named YYYY_MM.csv. The
// first line of a file is a header and is always skipped; every other row is
//
//	timestamp,home_kwh,from_powerwall_kwh,solar_energy_kwh,from_grid_kwh,to_grid_kwh
//
// where timestamp is a date or an ISO datetime (only the part before "T" is
// used). Files are read on every call; nothing is cached.
package energy

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tofu702/solarstats/internal/models"
)

const fieldsPerRow = 6

// Parser reads month files from one directory.
type Parser struct {
	dir    string
	logger *logrus.Logger
}

func NewParser(dir string, logger *logrus.Logger) *Parser {
	return &Parser{dir: dir, logger: logger}
}

// Dir returns the data directory.
func (p *Parser) Dir() string {
	return p.dir
}

// ParseFile parses every row of one month file.
func (p *Parser) ParseFile(path string) ([]models.DailyData, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingData, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parseRows(path, f)
	if err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"path": path,
		"rows": len(rows),
	}).Debug("Parsed month file")
	return rows, nil
}

// DataForRange returns the rows dated from start through end inclusive, read
// from every month file the range touches. A missing month file is an error.
func (p *Parser) DataForRange(start, end models.Date) ([]models.DailyData, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date %s < start_date %s", ErrInvalidRange, end, start)
	}

	var out []models.DailyData
	for _, name := range monthFileNames(start, end) {
		rows, err := p.ParseFile(filepath.Join(p.dir, name))
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if !row.Date.Before(start) && !row.Date.After(end) {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

// MonthFileName returns the file holding the month of d, e.g. 2024_10.csv.
func MonthFileName(d models.Date) string {
	return fmt.Sprintf("%04d_%02d.csv", d.Year, int(d.Month))
}

// nextMonth jumps 32 days past the first of a month, which always lands in the
// following month, and truncates to its first day.
func nextMonth(firstOfMonth models.Date) models.Date {
	return firstOfMonth.AddDays(32).FirstOfMonth()
}

// monthFileNames lists the files of every month whose first day is on or
// before end, starting with start's month.
func monthFileNames(start, end models.Date) []string {
	var names []string
	for cur := start.FirstOfMonth(); !cur.After(end); cur = nextMonth(cur) {
		names = append(names, MonthFileName(cur))
	}
	return names
}

func parseRows(path string, r io.Reader) ([]models.DailyData, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && header == "":
		return nil, &ParseError{Path: path, Err: errors.New("missing header line")}
	case errors.Is(err, io.EOF):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	var rows []models.DailyData
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Path: path, Line: csvErr.Line + 1, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		line, _ := cr.FieldPos(0)
		row, err := parseRow(record)
		if err != nil {
			// +1 for the header consumed before the csv reader started.
			return nil, &ParseError{Path: path, Line: line + 1, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string) (models.DailyData, error) {
	if len(record) < fieldsPerRow {
		return models.DailyData{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRow, len(record))
	}

	datePart, _, _ := strings.Cut(record[0], "T")
	date, err := models.ParseDate(strings.TrimSpace(datePart))
	if err != nil {
		return models.DailyData{}, err
	}

	var kwh [fieldsPerRow - 1]float64
	for i := range kwh {
		v, err := parseKWh(record[i+1])
		if err != nil {
			return models.DailyData{}, fmt.Errorf("field %d: %w", i+2, err)
		}
		kwh[i] = v
	}

	return models.DailyData{
		Date:             date,
		HomeKWh:          kwh[0],
		FromPowerwallKWh: kwh[1],
		SolarEnergyKWh:   kwh[2],
		FromGridKWh:      kwh[3],
		ToGridKWh:        kwh[4],
	}, nil
}

func parseKWh(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number %q", s)
	}
	return v, nil
}
