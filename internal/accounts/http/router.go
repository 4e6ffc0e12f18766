package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/store"
	"github.com/aussiebroadwan/freelancehub/pkg/httpx"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"

	_ "github.com/aussiebroadwan/freelancehub/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	Cookie SessionCookie

	AccountService *service.AccountService
	Sessions       *service.Sessions

	// ResetLedger is checked by /readyz when used reset tokens live outside
	// the database. Optional.
	ResetLedger Pinger
}

func NewRouter(
	verifier jwtx.Verifier,
	cookie SessionCookie,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		Cookie:       cookie,
		logger:       logger,
	}

	// Set default middleware chain; the session is resolved for every route
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SessionMiddleware(r.verifier, r.Cookie.Name),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccount()
	r.registerPasswordReset()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FreelanceHub Accounts Service API
//	@version		0.1.0
//	@description	Login, registration and self-service account management for FreelanceHub.
//	@description
//	@description	Requests are form-encoded. Every response is a JSON envelope with a flash status,
//	@description	an optional message, a redirect hint and per-field validation errors.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/freelancehub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						fh_session
//	@description				Signed session set by POST /v1/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	anonymous := httpx.RequireAnonymous(redirectAuthenticated)

	// POST /login - strict rate limit by IP (brute force)
	loginHandler := &LoginHandler{
		Accounts: r.AccountService,
		Sessions: r.Sessions,
		Cookie:   r.Cookie,
	}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			anonymous,
			httpx.RateLimitByIP(httpx.LoginLimit),
		),
	)

	// POST /register - very strict rate limit by IP (account farming)
	registerHandler := &RegisterHandler{Accounts: r.AccountService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			anonymous,
			httpx.RateLimitByIP(httpx.RegisterLimit),
		),
	)

	// POST /logout - needs a session, moderate limit
	logoutHandler := &LogoutHandler{Accounts: r.AccountService, Cookie: r.Cookie}
	r.Mux.Handle("POST /v1/logout",
		httpx.Chain(logoutHandler,
			httpx.RequireSession(r.Cookie.deny),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAccount() {
	authenticated := httpx.RequireSession(r.Cookie.deny)

	profileHandler := &ProfileHandler{Accounts: r.AccountService, Cookie: r.Cookie}
	r.Mux.Handle("GET /v1/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandleGet),
			authenticated,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/profile",
		httpx.Chain(http.HandlerFunc(profileHandler.HandlePost),
			authenticated,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /password/change - strict per-user limit (current password guessing)
	changeHandler := &PasswordChangeHandler{Accounts: r.AccountService, Cookie: r.Cookie}
	r.Mux.Handle("POST /v1/password/change",
		httpx.Chain(changeHandler,
			authenticated,
			httpx.RateLimitByUser(httpx.PasswordChangeLimit),
		),
	)

	deleteHandler := &DeleteAccountHandler{Accounts: r.AccountService, Cookie: r.Cookie}
	r.Mux.Handle("POST /v1/account/delete",
		httpx.Chain(deleteHandler,
			authenticated,
			httpx.RateLimitByUser(httpx.DeleteAccountLimit),
		),
	)
}

func (r *Router) registerPasswordReset() {
	anonymous := httpx.RequireAnonymous(redirectAuthenticated)
	h := &PasswordResetHandler{Accounts: r.AccountService}

	// POST /password/reset - strict by IP + email (mail flooding)
	r.Mux.Handle("POST /v1/password/reset",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			anonymous,
			httpx.RateLimitByIPAndFormField(httpx.ResetLimit, "email"),
		),
	)

	// GET /password/reset/{token} - just a check, moderate limit
	r.Mux.Handle("GET /v1/password/reset/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			anonymous,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/password/reset/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleComplete),
			anonymous,
			httpx.RateLimitByIP(httpx.ResetLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.ResetLedger),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
