package server

import (
	"errors"
	"net/http"

	"github.com/tofu702/solarstats/internal/energy"
	"github.com/tofu702/solarstats/internal/httputil"
	"github.com/tofu702/solarstats/internal/models"
	middleware "github.com/tofu702/solarstats/internal/server/middlewares"
	"github.com/tofu702/solarstats/internal/sun"
)

const (
	serviceName        = "Tesla Solar Stats Tool"
	serviceDescription = "A Tool For Getting Tesla Solar Related Long Term Stats"
)

type sunRangeResponse struct {
	DaysToStats map[string]models.SunStats `json:"days_to_stats"`
}

type dayDataRangeResponse struct {
	DaysToData map[string]models.DailyData `json:"days_to_data"`
}

type monthlyDataResponse struct {
	Months []models.MonthlyData `json:"months"`
}

func (s *SolarService) handleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
		"name":        serviceName,
		"description": serviceDescription,
		"version":     s.config.Version,
	})
}

func (s *SolarService) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Healthy(r.Context()); err != nil {
			s.logger.WithError(err).Warn("Health check failed")
			httputil.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"message": err.Error(),
			})
			return
		}
	}
	httputil.WriteJSON(s.logger, w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *SolarService) handleSunRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end, err := s.validator.ValidateRange(q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	loc, err := s.validator.Location(q, s.config.DefaultLocation)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	stats, err := s.sun.ComputeRange(start, end, loc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(s.logger, w, http.StatusOK, sunRangeResponse{DaysToStats: stats})
}

func (s *SolarService) handleSunDate(w http.ResponseWriter, r *http.Request) {
	date, err := models.ParseDate(r.PathValue("date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	loc, err := s.validator.Location(r.URL.Query(), s.config.DefaultLocation)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	stats, err := s.sun.Compute(date, loc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(s.logger, w, http.StatusOK, stats)
}

func (s *SolarService) handleDayDataRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end, err := s.validator.ValidateRange(q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rows, err := s.energy.DataForRange(start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Later rows win when a date appears twice.
	byDate := make(map[string]models.DailyData, len(rows))
	for _, row := range rows {
		byDate[row.Date.String()] = row
	}
	httputil.WriteJSON(s.logger, w, http.StatusOK, dayDataRangeResponse{DaysToData: byDate})
}

func (s *SolarService) handleMonthlyData(w http.ResponseWriter, r *http.Request) {
	months, err := s.energy.AggregateAll()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if months == nil {
		months = []models.MonthlyData{}
	}
	httputil.WriteJSON(s.logger, w, http.StatusOK, monthlyDataResponse{Months: months})
}

func (s *SolarService) handleExampleDailyData(w http.ResponseWriter, r *http.Request) {
	if s.config.ExampleFile == "" {
		httputil.WriteError(s.logger, w, http.StatusNotFound, "example data file is not configured")
		return
	}

	rows, err := s.energy.ParseFile(s.config.ExampleFile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []models.DailyData{}
	}
	httputil.WriteJSON(s.logger, w, http.StatusOK, rows)
}

// writeError maps err to a status code and writes the error body. Server
// side failures are logged with the request id.
func (s *SolarService) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusForError(err)
	if code >= http.StatusInternalServerError {
		s.logger.WithError(err).
			WithField("request_id", middleware.RequestIDFromContext(r.Context())).
			Error("Request failed")
	}
	httputil.WriteError(s.logger, w, code, err.Error())
}

func statusForError(err error) int {
	switch {
	// Checked first: a ParseError wraps the row's own cause, which may be
	// ErrInvalidDate.
	case errors.Is(err, energy.ErrParse):
		return http.StatusInternalServerError
	case errors.Is(err, energy.ErrMissingData):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, energy.ErrInvalidRange),
		errors.Is(err, sun.ErrInvalidRange),
		errors.Is(err, sun.ErrInvalidTimezone),
		errors.Is(err, sun.ErrInvalidCoordinates):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
