package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/tofu702/solarstats/internal/httputil"
)

// NewRateLimiter admits rps requests per second with the given burst across
// all clients and answers 429 beyond that.
func NewRateLimiter(rps float64, burst int, logger logrus.FieldLogger) Middleware {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				httputil.WriteError(logger, w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
