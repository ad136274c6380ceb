// Package user describes the identity domain.
package user

import "context"

// Registrar registers users.
type Registrar interface {
	Register(context.Context, Credentials) (Entity, error)
}

// Authenticator verifies credentials and issues tokens.
type Authenticator interface {
	Login(context.Context, Credentials) (Token, error)
}

// Resolver maps tokens back to the identities they were issued to.
type Resolver interface {
	Resolve(context.Context, Token) (Identity, error)
}
