package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tofu702/solarstats/internal/models"
	"github.com/tofu702/solarstats/internal/sun"
)

// ErrInvalidInput marks a missing or malformed request parameter.
var ErrInvalidInput = errors.New("invalid input")

type RequestValidator struct {
	maxRangeDays int
}

func NewRequestValidator(maxRangeDays int) *RequestValidator {
	return &RequestValidator{maxRangeDays: maxRangeDays}
}

// ValidateRange parses start_date and end_date and checks that the inclusive
// range is ordered and no longer than the configured maximum.
func (v *RequestValidator) ValidateRange(startStr, endStr string) (models.Date, models.Date, error) {
	if startStr == "" {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: missing start_date", ErrInvalidInput)
	}
	if endStr == "" {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: missing end_date", ErrInvalidInput)
	}

	start, err := models.ParseDate(startStr)
	if err != nil {
		return models.Date{}, models.Date{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := models.ParseDate(endStr)
	if err != nil {
		return models.Date{}, models.Date{}, fmt.Errorf("end_date: %w", err)
	}

	if end.Before(start) {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: end_date %s < start_date %s", ErrInvalidInput, end, start)
	}
	if days := start.DaysUntil(end) + 1; days > v.maxRangeDays {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: range of %d days exceeds maximum of %d", ErrInvalidInput, days, v.maxRangeDays)
	}

	return start, end, nil
}

// Location applies the latitude, longitude and timezone query parameters
// that are present on top of def.
func (v *RequestValidator) Location(q url.Values, def sun.Location) (sun.Location, error) {
	loc := def

	if s := q.Get("latitude"); s != "" {
		lat, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return sun.Location{}, fmt.Errorf("%w: latitude %q is not a number", ErrInvalidInput, s)
		}
		loc.Latitude = lat
	}
	if s := q.Get("longitude"); s != "" {
		lon, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return sun.Location{}, fmt.Errorf("%w: longitude %q is not a number", ErrInvalidInput, s)
		}
		loc.Longitude = lon
	}
	if s := q.Get("timezone"); s != "" {
		loc.Timezone = s
	}

	return loc, nil
}
