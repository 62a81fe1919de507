package shared_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claydesk/flowtest-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	shared.RespondWithJSON(rec, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))

	shared.RespondWithError(rec, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Task not found", body.Error)
	assert.NotEmpty(t, body.TraceID, "trace ID from context should round-trip into the response")
}

func TestRespondWithErrorAndLogSanitizes(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	internal := errors.New("store blew up: password=supersecret")
	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Internal error", internal)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "supersecret",
		"raw error detail must never reach the client")

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal error", body.Error)
}

func TestPrincipalContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	_, ok := shared.PrincipalFromContext(req.Context())
	assert.False(t, ok)

	ctx := shared.WithPrincipal(req.Context(), "alice")
	username, ok := shared.PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestGetTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	assert.Empty(t, shared.GetTraceID(req.Context()))

	ctx := shared.SetTraceID(req.Context())
	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, shared.TraceIDLength*2)
}
