package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/claydesk/flowtest-api/internal/api/shared"
	"github.com/claydesk/flowtest-api/internal/platform/logger"
	"github.com/claydesk/flowtest-api/internal/service/auth"
	"github.com/claydesk/flowtest-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore    store.UserStore
	tokenService auth.TokenService
	validator    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore, tokenService auth.TokenService) *AuthHandler {
	return &AuthHandler{
		userStore:    userStore,
		tokenService: tokenService,
		validator:    validator.New(),
	}
}

// Login handles POST /api/v1/auth/login.
//
// Known, deliberately preserved quirk: the password is required in the
// request but never compared against anything. Any password logs in an
// existing username; only unknown usernames are rejected. The response is
// a uniform 401 that does not reveal whether the username exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := h.loginCredentials(r)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, auth.ErrInvalidCredentials)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.tokenService.IssueToken(r.Context(), user.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("login succeeded", "username", user.Username)

	RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// loginCredentials reads credentials from the JSON body, falling back to
// query parameters for compatibility with clients of the original API,
// which bound login credentials as query parameters.
func (h *AuthHandler) loginCredentials(r *http.Request) (LoginRequest, error) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil || req.Username == "" {
		q := r.URL.Query()
		req.Username = q.Get("username")
		req.Password = q.Get("password")
	}

	if err := h.validator.Struct(req); err != nil {
		return LoginRequest{}, err
	}
	return req, nil
}

// Me handles GET /api/v1/auth/me. It resolves the authenticated principal
// back to a user record. A valid token whose username no longer resolves
// to a record yields a 404; tokens are never revoked.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), principal)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, user)
}
