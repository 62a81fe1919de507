package api

// Common request/response structures

// TaskRequest defines the payload for creating or updating a task.
// The same shape serves both operations, mirroring the write surface of
// the API: update replaces exactly the fields creation sets.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// CreateUserRequest defines the payload for the user registration endpoint.
//
// Password is accepted and discarded: this service preserves the original
// placeholder auth scheme, which never stores or verifies passwords.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is a plain informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}
