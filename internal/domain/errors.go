package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the base error for all entity validation failures.
	// Check for it with errors.Is; the specific errors below wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle is returned when a task is created without a title.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrEmptyUsername is returned when a user is created without a username.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when a user is created without an email.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)
)
