package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Authenticate gates every protected endpoint: it extracts the bearer token,
// exchanges it with the identity provider, and rejects the request with 401
// on any failure. No persistence work happens before this middleware passes.
func Authenticate(auth services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := parseBearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			identity, err := auth.Verify(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the verified identity stored by Authenticate.
func IdentityFromContext(ctx context.Context) (*services.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*services.Identity)
	return identity, ok
}

func parseBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}` + "\n"))
}
