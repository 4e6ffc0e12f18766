package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
)

// AuthenticatedHandler is called with the caller's resolved session claims.
type AuthenticatedHandler func(w http.ResponseWriter, r *http.Request, c jwtx.Claims)

// RequireAnonymous sends callers that already hold a session to redirect
// instead of next. Used for login, registration and password reset.
func RequireAnonymous(redirect AuthenticatedHandler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, ok := ClaimsFromContext(r.Context()); ok {
				redirect(w, r, c)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
