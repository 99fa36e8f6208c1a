// Package httputil holds the JSON response helpers shared by handlers and
// middlewares.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// WriteJSON writes v with the given status. The header is already sent when
// encoding fails, so the failure is only logged.
func WriteJSON(logger logrus.FieldLogger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).WithField("status", status).Error("Failed to write JSON response")
	}
}

// WriteError writes {"error": <status text>, "message": msg}.
func WriteError(logger logrus.FieldLogger, w http.ResponseWriter, status int, msg string) {
	WriteJSON(logger, w, status, map[string]any{
		"error":   http.StatusText(status),
		"message": msg,
	})
}
