package server

//go:generate mockgen -source=server.go -destination=mocks/mock_server.go -package=mocks

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/tofu702/solarstats/internal/models"
	middleware "github.com/tofu702/solarstats/internal/server/middlewares"
	"github.com/tofu702/solarstats/internal/sun"
)

// ServerConfig holds configuration options for the HTTP server
type ServerConfig struct {
	RateLimit       float64 // Requests per second
	RateLimitBurst  int     // Maximum burst size for rate limiting
	MaxRangeDays    int     // Longest accepted start_date..end_date span
	StaticDir       string  // Served under /static/ when set
	ExampleFile     string  // Backs /example_daily_data when set
	DefaultLocation sun.Location
	Version         string
}

// DefaultServerConfig returns a ServerConfig with sensible defaults
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		RateLimit:      50,
		RateLimitBurst: 100,
		MaxRangeDays:   3660,
		DefaultLocation: sun.Location{
			Latitude:  37.5585485,
			Longitude: -121.9481288,
			Timezone:  "America/Los_Angeles",
		},
		Version: "0.1.0",
	}
}

// SunCalculator computes sun statistics for one day or an inclusive range.
type SunCalculator interface {
	Compute(date models.Date, loc sun.Location) (models.SunStats, error)
	ComputeRange(start, end models.Date, loc sun.Location) (map[string]models.SunStats, error)
}

// EnergySource reads daily energy records and monthly rollups.
type EnergySource interface {
	ParseFile(path string) ([]models.DailyData, error)
	DataForRange(start, end models.Date) ([]models.DailyData, error)
	AggregateAll() ([]models.MonthlyData, error)
}

// HealthChecker reports nil while the service can answer requests.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

// SolarService holds the handlers' dependencies.
type SolarService struct {
	sun       SunCalculator
	energy    EnergySource
	health    HealthChecker
	validator *RequestValidator
	config    ServerConfig
	logger    *logrus.Logger
}

// NewSolarService creates a new service instance. health may be nil.
func NewSolarService(sunCalc SunCalculator, energy EnergySource, health HealthChecker, config ServerConfig, logger *logrus.Logger) *SolarService {
	return &SolarService{
		sun:       sunCalc,
		energy:    energy,
		health:    health,
		validator: NewRequestValidator(config.MaxRangeDays),
		config:    config,
		logger:    logger,
	}
}

// SetupServer builds the routed handler with all middleware, registering
// metrics on the default Prometheus registry.
func SetupServer(svc *SolarService) (http.Handler, error) {
	return SetupServerWithRegistry(svc, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func SetupServerWithRegistry(svc *SolarService, reg prometheus.Registerer, gatherer prometheus.Gatherer) (http.Handler, error) {
	if svc.config.RateLimit <= 0 {
		return nil, errors.New("rate limit must be positive")
	}
	if svc.config.RateLimitBurst < 1 {
		return nil, errors.New("rate limit burst must be at least 1")
	}
	if svc.config.MaxRangeDays < 1 {
		return nil, errors.New("max range days must be at least 1")
	}

	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	handle := func(pattern, route string, h http.HandlerFunc) {
		mux.Handle(pattern, metrics.Wrap(route, h))
	}

	handle("GET /{$}", "root", svc.handleRoot)
	handle("GET /health", "health", svc.handleHealth)
	handle("GET /sun/range", "sun_range", svc.handleSunRange)
	handle("GET /sun/date/{date}", "sun_date", svc.handleSunDate)
	handle("GET /day_data/range", "day_data_range", svc.handleDayDataRange)
	handle("GET /monthly_data", "monthly_data", svc.handleMonthlyData)
	handle("GET /example_daily_data", "example_daily_data", svc.handleExampleDailyData)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if svc.config.StaticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(svc.config.StaticDir))))
	}

	return chainMiddlewares(mux,
		middleware.ContextMiddleware,                // Add request ID first
		middleware.NewLoggingMiddleware(svc.logger), // Log every request, rejected ones included
		middleware.NewRateLimiter(svc.config.RateLimit, svc.config.RateLimitBurst, svc.logger),
	), nil
}

// chainMiddlewares wraps h so the first middleware runs outermost.
func chainMiddlewares(h http.Handler, middlewares ...middleware.Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
