package user

import (
	"errors"
	"time"

	"github.com/swaggest/usecase/status"
)

// PasswordMinLen is the weakest password accepted at registration.
const PasswordMinLen = 6

// Identity identifies a user.
type Identity struct {
	ID int `json:"id"`
}

// Credentials carry a username/password pair.
type Credentials struct {
	Username string `json:"username" minLength:"1" required:"true"`
	Password string `json:"password" minLength:"6" required:"true"`
}

// Validate checks credentials for registration.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return status.Wrap(errors.New("username is required"), status.InvalidArgument)
	}

	if len(c.Password) < PasswordMinLen {
		return status.Wrap(errors.New("password is too short"), status.InvalidArgument)
	}

	return nil
}

// Token is an opaque value issued on login and presented with every
// authenticated request.
type Token string

// Entity is a registered user, password material excluded.
type Entity struct {
	Identity
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
