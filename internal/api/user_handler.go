package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/claydesk/flowtest-api/internal/domain"
	"github.com/claydesk/flowtest-api/internal/platform/logger"
	"github.com/claydesk/flowtest-api/internal/store"
)

// UserHandler handles user management API requests. Registration and
// listing are intentionally ungated; see the route table in cmd/server.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
	}
}

// Create handles POST /api/v1/users. The supplied password is accepted and
// discarded, never stored; see the package and README notes on the
// placeholder auth scheme.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.Username, req.Email)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	created, err := h.userStore.Create(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("user created", slog.Int64("user_id", created.ID), slog.String("username", created.Username))

	RespondWithJSON(w, r, http.StatusOK, created)
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, users)
}
