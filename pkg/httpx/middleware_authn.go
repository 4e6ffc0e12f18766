package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
)

// SessionMiddleware resolves the session cookie into claims when it is
// present and valid. It never rejects a request; an invalid cookie is treated
// as no session at all.
func SessionMiddleware(v jwtx.Verifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(cookie.Value)
			if err != nil {
				slogx.FromContext(r.Context()).Debug("session cookie rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			ctx = slogx.WithUser(ctx, claims.Subject, claims.Admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests without a resolved session by calling deny.
func RequireSession(deny http.HandlerFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); !ok {
				deny(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
