package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/claydesk/flowtest-api/internal/api/shared"
	"github.com/claydesk/flowtest-api/internal/store"
)

// DecodeJSON decodes the request body into dst. Unknown fields are
// ignored, matching the original API's tolerant request parsing.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// HandleAPIError maps err to a status code and sanitized message and
// writes the response, logging the underlying error for 5xx cases.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, ErrorMessageForClient(err), err)
}

// getPathTaskID extracts the {id} path parameter as a task ID.
// A non-integer segment can never name an existing task, so it reports
// store.ErrTaskNotFound rather than a distinct parse error.
func getPathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, store.ErrTaskNotFound
	}
	return id, nil
}
