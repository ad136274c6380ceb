package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bool64/ctxd"
	"github.com/google/uuid"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// User is an in-memory user repository issuing opaque tokens.
type User struct {
	cost int

	mu     sync.Mutex
	lastID int
	byName map[string]user.Entity
	hashes map[int][]byte
	tokens map[user.Token]int
	byUser map[int]user.Token
}

// NewUser creates a user repository, cost tunes password hashing and 0 keeps
// the library default.
func NewUser(cost int) *User {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &User{
		cost:   cost,
		byName: make(map[string]user.Entity),
		hashes: make(map[int][]byte),
		tokens: make(map[user.Token]int),
		byUser: make(map[int]user.Token),
	}
}

// UserRegistrar is a service provider.
func (ur *User) UserRegistrar() user.Registrar {
	return ur
}

// Register creates a user, storing only a hash of the password.
func (ur *User) Register(ctx context.Context, c user.Credentials) (user.Entity, error) {
	if err := c.Validate(); err != nil {
		return user.Entity{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), ur.cost)
	if err != nil {
		return user.Entity{}, err
	}

	ur.mu.Lock()
	defer ur.mu.Unlock()

	if _, taken := ur.byName[c.Username]; taken {
		return user.Entity{}, status.Wrap(
			ctxd.NewError(ctx, "username is already taken", "username", c.Username),
			status.InvalidArgument)
	}

	ur.lastID++

	u := user.Entity{}
	u.ID = ur.lastID
	u.Username = c.Username
	u.CreatedAt = time.Now()
	ur.byName[c.Username] = u
	ur.hashes[u.ID] = hash

	return u, nil
}

// UserAuthenticator is a service provider.
func (ur *User) UserAuthenticator() user.Authenticator {
	return ur
}

// Login verifies credentials and returns the user's token, issuing one on
// first login and reusing it afterwards.
func (ur *User) Login(_ context.Context, c user.Credentials) (user.Token, error) {
	ur.mu.Lock()
	u, found := ur.byName[c.Username]

	var hash []byte
	if found {
		hash = ur.hashes[u.ID]
	}
	ur.mu.Unlock()

	// Bad credentials are reported as invalid input, not as a missing token.
	if !found || bcrypt.CompareHashAndPassword(hash, []byte(c.Password)) != nil {
		return "", status.Wrap(errors.New("unable to log in with provided credentials"), status.InvalidArgument)
	}

	ur.mu.Lock()
	defer ur.mu.Unlock()

	if t, ok := ur.byUser[u.ID]; ok {
		return t, nil
	}

	t := user.Token(uuid.NewString())
	ur.tokens[t] = u.ID
	ur.byUser[u.ID] = t

	return t, nil
}

// UserResolver is a service provider.
func (ur *User) UserResolver() user.Resolver {
	return ur
}

// Resolve maps a token to the identity it was issued to.
func (ur *User) Resolve(_ context.Context, t user.Token) (user.Identity, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	id, ok := ur.tokens[t]
	if !ok {
		return user.Identity{}, status.Wrap(errors.New("invalid token"), status.Unauthenticated)
	}

	return user.Identity{ID: id}, nil
}
