package energy

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tofu702/solarstats/internal/models"
)

const october2024 = `header
2024-10-01,10.0,2.0,5.0,3.0,1.5
2024-10-02,12.0,1.0,7.0,2.0,3.0
`

func newTestParser(t *testing.T, files map[string]string) *Parser {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewParser(dir, logger)
}

func date(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}

func TestParseFile(t *testing.T) {
	p := newTestParser(t, map[string]string{"2024_10.csv": october2024})

	rows, err := p.ParseFile(filepath.Join(p.Dir(), "2024_10.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.DailyData{
		Date:             date(2024, time.October, 1),
		HomeKWh:          10.0,
		FromPowerwallKWh: 2.0,
		SolarEnergyKWh:   5.0,
		FromGridKWh:      3.0,
		ToGridKWh:        1.5,
	}, rows[0])
	assert.Equal(t, date(2024, time.October, 2), rows[1].Date)
	assert.Equal(t, 3.0, rows[1].ToGridKWh)
}

func TestParseFileRowFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []models.DailyData
	}{
		{
			name:    "iso datetime timestamp",
			content: "Date time,Home,Powerwall,Solar,From grid,To grid\n2024-10-01T00:00:00-07:00,1,2,3,4,5\n",
			want: []models.DailyData{{
				Date: date(2024, time.October, 1), HomeKWh: 1, FromPowerwallKWh: 2,
				SolarEnergyKWh: 3, FromGridKWh: 4, ToGridKWh: 5,
			}},
		},
		{
			name:    "padded numbers and extra fields",
			content: "h\n2024-10-03, 1.25 ,0,  2.5,0,0.75,ignored,also ignored\n",
			want: []models.DailyData{{
				Date: date(2024, time.October, 3), HomeKWh: 1.25,
				SolarEnergyKWh: 2.5, ToGridKWh: 0.75,
			}},
		},
		{
			name:    "header only",
			content: "h\n",
			want:    nil,
		},
		{
			name:    "header without newline",
			content: "h",
			want:    nil,
		},
		{
			name:    "first line skipped even when it looks like data",
			content: "2024-10-01,9,9,9,9,9\n2024-10-02,1,1,1,1,1\n",
			want: []models.DailyData{{
				Date: date(2024, time.October, 2), HomeKWh: 1, FromPowerwallKWh: 1,
				SolarEnergyKWh: 1, FromGridKWh: 1, ToGridKWh: 1,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, map[string]string{"2024_10.csv": tt.content})
			rows, err := p.ParseFile(filepath.Join(p.Dir(), "2024_10.csv"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestParseFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "too few fields",
			content:  "h\n2024-10-01,1,2,3,4,5\n2024-10-02,1,2,3\n",
			wantLine: 3,
			wantMsg:  "expected 6 fields, got 4",
		},
		{
			name:     "bad number",
			content:  "h\n2024-10-01,1,two,3,4,5\n",
			wantLine: 2,
			wantMsg:  `field 3: invalid number "two"`,
		},
		{
			name:     "nan",
			content:  "h\n2024-10-01,1,2,NaN,4,5\n",
			wantLine: 2,
			wantMsg:  `field 4: not a finite number "NaN"`,
		},
		{
			name:     "bad date",
			content:  "h\n10/01/2024,1,2,3,4,5\n",
			wantLine: 2,
		},
		{
			name:    "empty file",
			content: "",
			wantMsg: "missing header line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, map[string]string{"2024_10.csv": tt.content})
			path := filepath.Join(p.Dir(), "2024_10.csv")

			_, err := p.ParseFile(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, path, perr.Path)
			assert.Equal(t, tt.wantLine, perr.Line)
			if tt.wantMsg != "" {
				assert.EqualError(t, perr.Err, tt.wantMsg)
			}
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	p := newTestParser(t, nil)

	_, err := p.ParseFile(filepath.Join(p.Dir(), "2024_01.csv"))
	assert.ErrorIs(t, err, ErrMissingData)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestMonthFileName(t *testing.T) {
	assert.Equal(t, "2024_10.csv", MonthFileName(date(2024, time.October, 17)))
	assert.Equal(t, "0999_01.csv", MonthFileName(date(999, time.January, 1)))
}

func TestNextMonth(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		first := date(2023, m, 1)
		next := nextMonth(first)

		wantYear, wantMonth := 2023, m+1
		if m == time.December {
			wantYear, wantMonth = 2024, time.January
		}
		assert.Equal(t, date(wantYear, wantMonth, 1), next, "after %s", first)
	}

	assert.Equal(t, date(2024, time.March, 1), nextMonth(date(2024, time.February, 1)), "leap february")
}

func TestMonthFileNames(t *testing.T) {
	tests := []struct {
		name       string
		start, end models.Date
		want       []string
	}{
		{
			name:  "single day",
			start: date(2024, time.October, 5), end: date(2024, time.October, 5),
			want: []string{"2024_10.csv"},
		},
		{
			name:  "end on first of next month",
			start: date(2024, time.October, 31), end: date(2024, time.November, 1),
			want: []string{"2024_10.csv", "2024_11.csv"},
		},
		{
			name:  "year boundary",
			start: date(2023, time.November, 15), end: date(2024, time.February, 29),
			want: []string{"2023_11.csv", "2023_12.csv", "2024_01.csv", "2024_02.csv"},
		},
		{
			name:  "reversed range",
			start: date(2024, time.November, 1), end: date(2024, time.October, 1),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthFileNames(tt.start, tt.end))
		})
	}
}

func TestDataForRange(t *testing.T) {
	p := newTestParser(t, map[string]string{
		"2024_10.csv": october2024 + "2024-10-31,1,1,1,1,1\n",
		"2024_11.csv": "h\n2024-11-01,2,2,2,2,2\n2024-11-02,3,3,3,3,3\n",
	})

	t.Run("within one month", func(t *testing.T) {
		rows, err := p.DataForRange(date(2024, time.October, 2), date(2024, time.October, 2))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 12.0, rows[0].HomeKWh)
	})

	t.Run("across months inclusive", func(t *testing.T) {
		rows, err := p.DataForRange(date(2024, time.October, 2), date(2024, time.November, 1))
		require.NoError(t, err)

		var got []string
		for _, r := range rows {
			got = append(got, r.Date.String())
		}
		assert.Equal(t, []string{"2024-10-02", "2024-10-31", "2024-11-01"}, got)
	})

	t.Run("missing month file", func(t *testing.T) {
		_, err := p.DataForRange(date(2024, time.November, 30), date(2024, time.December, 1))
		assert.ErrorIs(t, err, ErrMissingData)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := p.DataForRange(date(2024, time.October, 2), date(2024, time.October, 1))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

// monthCSV renders rows the way the exporter writes a month file.
func monthCSV(t *testing.T, rows []models.DailyData) string {
	t.Helper()
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	require.NoError(t, w.Write([]string{
		"Date time", "Home (kWh)", "From Powerwall (kWh)", "Solar Energy (kWh)", "From Grid (kWh)", "To Grid (kWh)",
	}))
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, r := range rows {
		require.NoError(t, w.Write([]string{
			r.Date.String(), f(r.HomeKWh), f(r.FromPowerwallKWh), f(r.SolarEnergyKWh), f(r.FromGridKWh), f(r.ToGridKWh),
		}))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return buf.String()
}

func TestParseRoundTrip(t *testing.T) {
	want := []models.DailyData{
		{Date: date(2024, time.March, 1), HomeKWh: 21.3, FromPowerwallKWh: 4.1, SolarEnergyKWh: 30.25, FromGridKWh: 0.4, ToGridKWh: 13.9},
		{Date: date(2024, time.March, 2), HomeKWh: 18.75, FromPowerwallKWh: 0, SolarEnergyKWh: 12.5, FromGridKWh: 6.25, ToGridKWh: 0},
		{Date: date(2024, time.March, 31), HomeKWh: 0.1 + 0.2, FromPowerwallKWh: 1e-7, SolarEnergyKWh: 1.0 / 3, FromGridKWh: 123456.789, ToGridKWh: 2.5e6},
	}

	p := newTestParser(t, map[string]string{"2024_03.csv": monthCSV(t, want)})

	got, err := p.DataForRange(date(2024, time.March, 1), date(2024, time.March, 31))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
