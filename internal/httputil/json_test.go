package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rec := httptest.NewRecorder()
	WriteJSON(logger, rec, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
	assert.Empty(t, hook.AllEntries())
}

func TestWriteJSON_EncodeFailureLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rec := httptest.NewRecorder()
	WriteJSON(logger, rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Failed to write JSON response", entry.Message)
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Error(t, entry.Data[logrus.ErrorKey].(error))
}

func TestWriteError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	rec := httptest.NewRecorder()
	WriteError(logger, rec, http.StatusNotFound, "missing data: 2024_10.csv")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "missing data: 2024_10.csv", body["message"])
}
