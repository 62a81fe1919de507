package domain

import "time"

// User represents a registered user of the service.
//
// The password supplied at registration is deliberately never stored:
// this service preserves the original placeholder auth scheme in which
// login accepts any password for an existing username. See the README
// before assuming that is a bug.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a User with the given username and email. The store
// assigns the ID and creation timestamp.
func NewUser(username, email string) (*User, error) {
	user := &User{
		Username: username,
		Email:    email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	return nil
}
