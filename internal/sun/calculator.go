// Package sun computes daily sun events and the sun's altitude at solar noon
// for a fixed site.
//
// Event times come from the suncalc algorithm: sunrise and sunset are the
// crossings of the refraction-corrected horizon (-0.833 degrees), solar noon is
// the meridian transit. All instants are computed in UTC and reported as local
// clock times in the site's IANA timezone.
package sun

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sixdouglas/suncalc"

	"github.com/tofu702/solarstats/internal/models"
)

// horizonRad is the altitude of the sun's upper limb at sunrise/sunset.
const horizonRad = -0.833 * math.Pi / 180

var (
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRange       = errors.New("invalid date range")
)

// Location is the observer's site.
type Location struct {
	Latitude  float64 // decimal degrees, north positive
	Longitude float64 // decimal degrees, east positive
	Timezone  string  // IANA identifier, e.g. America/Los_Angeles
}

// Validate checks the coordinate ranges and resolves the timezone.
func (l Location) Validate() (*time.Location, error) {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, l.Latitude)
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return nil, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, l.Longitude)
	}
	if l.Timezone == "" {
		return nil, fmt.Errorf("%w: empty timezone", ErrInvalidTimezone)
	}
	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, l.Timezone, err)
	}
	return tz, nil
}

// Calculator computes SunStats. It holds no per-request state.
type Calculator struct {
	logger *logrus.Logger
}

func NewCalculator(logger *logrus.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// ComputeForDateString parses a YYYY-MM-DD date and computes its SunStats.
func (c *Calculator) ComputeForDateString(date string, loc Location) (models.SunStats, error) {
	d, err := models.ParseDate(date)
	if err != nil {
		return models.SunStats{}, err
	}
	return c.Compute(d, loc)
}

// Compute returns the sun events of the local calendar day date at loc.
func (c *Calculator) Compute(date models.Date, loc Location) (models.SunStats, error) {
	tz, err := loc.Validate()
	if err != nil {
		return models.SunStats{}, err
	}

	// suncalc picks the solar cycle nearest to the instant it is given, so anchor
	// on local noon to get the transit that falls on the requested day.
	anchor := date.In(tz, 12, 0)
	times := suncalc.GetTimes(anchor, loc.Latitude, loc.Longitude)

	noonUTC := times[suncalc.SolarNoon].Value.UTC()
	noonAltRad := suncalc.GetPosition(noonUTC, loc.Latitude, loc.Longitude).Altitude
	noonAltDeg := radToDeg(noonAltRad)
	noon := noonUTC.In(tz)

	c.logger.WithFields(logrus.Fields{
		"date":       date.String(),
		"solar_noon": noonUTC.Format(time.RFC3339Nano),
		"latitude":   loc.Latitude,
		"longitude":  loc.Longitude,
	}).Debug("Computed solar noon")

	stats := models.SunStats{
		NoonAltitudeDeg: &noonAltDeg,
		NoonTime:        timeOfDay(noon),
	}

	nadirUTC := times[suncalc.Nadir].Value.UTC()
	nadirAltRad := suncalc.GetPosition(nadirUTC, loc.Latitude, loc.Longitude).Altitude
	if noonAltRad < horizonRad || nadirAltRad > horizonRad {
		// Polar night or polar day: the sun never crosses the horizon.
		return stats, nil
	}

	sunrise := times[suncalc.Sunrise].Value.In(tz)
	sunset := times[suncalc.Sunset].Value.In(tz)
	if !validEvents(sunrise, noon, sunset) {
		return stats, nil
	}
	// Only wall-clock times are reported, so an event on a neighbouring local
	// date (sunset after midnight near the arctic circle) cannot be expressed.
	if models.DateOf(sunrise) != date || models.DateOf(sunset) != date {
		return stats, nil
	}

	dayLength := dayLengthHours(sunset.Sub(sunrise))
	stats.DayLengthHours = &dayLength
	stats.SunriseTime = timeOfDay(sunrise)
	stats.SunsetTime = timeOfDay(sunset)
	return stats, nil
}

// ComputeRange returns SunStats keyed by YYYY-MM-DD for every day from start
// through end inclusive.
func (c *Calculator) ComputeRange(start, end models.Date, loc Location) (map[string]models.SunStats, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date %s < start_date %s", ErrInvalidRange, end, start)
	}
	out := make(map[string]models.SunStats, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		stats, err := c.Compute(d, loc)
		if err != nil {
			return nil, err
		}
		out[d.String()] = stats
	}
	return out, nil
}

// validEvents rejects the degenerate instants suncalc yields next to the polar
// boundary.
func validEvents(sunrise, noon, sunset time.Time) bool {
	if sunrise.IsZero() || sunset.IsZero() {
		return false
	}
	if !sunrise.Before(noon) || !noon.Before(sunset) {
		return false
	}
	return sunset.Sub(sunrise) < 24*time.Hour
}

// dayLengthHours is whole hours plus the fractional remainder, which
// time.Duration.Hours computes without rounding error.
func dayLengthHours(d time.Duration) float64 {
	return d.Hours()
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func timeOfDay(t time.Time) *models.TimeOfDay {
	tod := models.TimeOfDayOf(t)
	return &tod
}
