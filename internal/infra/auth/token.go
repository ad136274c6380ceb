// Package auth authenticates requests with opaque bearer tokens.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/swaggest/rest"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// TokenPrefix is the expected Authorization header scheme.
const TokenPrefix = "Token "

type identityKey struct{}

// Middleware resolves the Authorization header into a caller identity stored
// in request context, responding 401 when the token is missing or invalid.
func Middleware(resolver user.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, TokenPrefix) {
				writeError(w, status.Wrap(
					errors.New("authentication credentials were not provided"), status.Unauthenticated))

				return
			}

			identity, err := resolver.Resolve(r.Context(), user.Token(strings.TrimPrefix(h, TokenPrefix)))
			if err != nil {
				writeError(w, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), identityKey{}, identity)))
		})
	}
}

// IdentityFromContext returns the authenticated caller of the request.
func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(user.Identity)

	return identity, ok
}

func writeError(w http.ResponseWriter, err error) {
	code, er := rest.Err(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(er)
}
