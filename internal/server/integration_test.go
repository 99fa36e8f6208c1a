//go:build integration
// +build integration

package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tofu702/solarstats/internal/energy"
	"github.com/tofu702/solarstats/internal/health"
	"github.com/tofu702/solarstats/internal/models"
	"github.com/tofu702/solarstats/internal/server"
	"github.com/tofu702/solarstats/internal/sun"
)

func setupIntegrationServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"2024_09.csv": "Date time,Home,Powerwall,Solar,From grid,To grid\n2024-09-30T00:00:00-07:00,8.5,1.0,9.0,0.5,2.5\n",
		"2024_10.csv": "Date time,Home,Powerwall,Solar,From grid,To grid\n2024-10-01,10.0,2.0,5.0,3.0,1.5\n2024-10-02,12.0,1.0,7.0,2.0,3.0\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)

	config := server.DefaultServerConfig()
	config.ExampleFile = filepath.Join(dir, "2024_10.csv")

	svc := server.NewSolarService(
		sun.NewCalculator(logger),
		energy.NewParser(dir, logger),
		health.NewHealthChecker(health.DataDirProbe(dir)),
		config,
		logger,
	)
	reg := prometheus.NewRegistry()
	handler, err := server.SetupServerWithRegistry(svc, reg, reg)
	require.NoError(t, err)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestIntegration_EndToEnd(t *testing.T) {
	ts := setupIntegrationServer(t)
	client := ts.Client()

	t.Run("health", func(t *testing.T) {
		var body map[string]string
		resp := mustGetJSON(t, client, ts.URL+"/health", &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("sun date", func(t *testing.T) {
		var stats models.SunStats
		resp := mustGetJSON(t, client, ts.URL+"/sun/date/2024-06-21", &stats)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, stats.DayLengthHours)
		assert.InDelta(t, 14.76, *stats.DayLengthHours, 0.1)
		assert.Greater(t, *stats.NoonAltitudeDeg, 0.0)
		assert.True(t, stats.SunriseTime.Before(*stats.NoonTime))
		assert.True(t, stats.NoonTime.Before(*stats.SunsetTime))
	})

	t.Run("sun range is inclusive", func(t *testing.T) {
		var body struct {
			DaysToStats map[string]models.SunStats `json:"days_to_stats"`
		}
		resp := mustGetJSON(t, client, ts.URL+"/sun/range?start_date=2024-02-28&end_date=2024-03-01", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body.DaysToStats, 3)
		assert.Contains(t, body.DaysToStats, "2024-02-29")
		assert.Contains(t, body.DaysToStats, "2024-03-01")
	})

	t.Run("polar night", func(t *testing.T) {
		var stats models.SunStats
		resp := mustGetJSON(t, client, ts.URL+"/sun/date/2024-12-21?latitude=69.6492&longitude=18.9553&timezone=Europe/Oslo", &stats)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, stats.SunriseTime)
		assert.Nil(t, stats.DayLengthHours)
		assert.Less(t, *stats.NoonAltitudeDeg, 0.0)
	})

	t.Run("day data across months", func(t *testing.T) {
		var body struct {
			DaysToData map[string]models.DailyData `json:"days_to_data"`
		}
		resp := mustGetJSON(t, client, ts.URL+"/day_data/range?start_date=2024-09-30&end_date=2024-10-01", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body.DaysToData, 2)
		assert.Equal(t, 8.5, body.DaysToData["2024-09-30"].HomeKWh)
	})

	t.Run("day data missing month", func(t *testing.T) {
		var body map[string]string
		resp := mustGetJSON(t, client, ts.URL+"/day_data/range?start_date=2024-10-01&end_date=2024-11-01", &body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("monthly", func(t *testing.T) {
		var body struct {
			Months []models.MonthlyData `json:"months"`
		}
		resp := mustGetJSON(t, client, ts.URL+"/monthly_data", &body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, body.Months, 2)
		assert.Equal(t, "2024-10-01", body.Months[1].FirstDayOfMonth.String())
		assert.Equal(t, 22.0, body.Months[1].HomeKWh)
		assert.Equal(t, 2, body.Months[1].NumDaysInMonth)
		assert.Equal(t, 1, body.Months[1].NumDaysWithToGridGT2)
	})

	t.Run("example data", func(t *testing.T) {
		var rows []models.DailyData
		resp := mustGetJSON(t, client, ts.URL+"/example_daily_data", &rows)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, rows, 2)
	})
}
