package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/domain"
	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
	"github.com/aussiebroadwan/freelancehub/pkg/httpx"
	"github.com/aussiebroadwan/freelancehub/pkg/jwtx"
	"github.com/aussiebroadwan/freelancehub/pkg/slogx"
)

// Paths the envelope points callers at.
const (
	PathHome         = "/"
	PathAdmin        = "/admin"
	PathLogin        = "/v1/login"
	PathProfile      = "/v1/profile"
	PathResetRequest = "/v1/password/reset"
)

// Flash messages.
const (
	MsgInvalidLogin    = "Invalid email/username or password"
	MsgLoginRequired   = "Please log in to access this page."
	MsgRegistered      = "Registration successful! Please log in."
	MsgLoggedOut       = "You have been logged out successfully."
	MsgProfileUpdated  = "Your profile has been updated successfully!"
	MsgPasswordChanged = "Your password has been changed successfully!"
	MsgAdminNoDelete   = "Admin accounts cannot be deleted through this interface."
	MsgAccountDeleted  = "Your account has been deleted successfully. We're sorry to see you go!"
	MsgResetSent       = "Check your email for instructions to reset your password"
	MsgResetInvalid    = "That is an invalid or expired token"
	MsgResetDone       = "Your password has been reset! You can now log in"
	MsgInvalidForm     = "The submitted form could not be read."
	MsgInternal        = "Something went wrong. Please try again."
)

// SessionCookie describes the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// set writes s as the session cookie. Only persistent sessions get an
// explicit lifetime; the rest end with the browser.
func (c SessionCookie) set(w http.ResponseWriter, s service.Session) {
	ck := &http.Cookie{
		Name:     c.Name,
		Value:    s.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.Persistent {
		ck.Expires = s.ExpiresAt
		ck.MaxAge = int(time.Until(s.ExpiresAt).Seconds())
	}
	http.SetCookie(w, ck)
}

func (c SessionCookie) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// deny answers a request that reached a session-only route without a usable
// session. A cookie that failed to resolve is cleared along the way.
func (c SessionCookie) deny(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(c.Name); err == nil {
		c.clear(w)
	}
	denySession(w, r)
}

// writeError is writeServiceError for routes behind a session. When the
// session outlived its user the cookie goes too, otherwise the stale cookie
// keeps the caller locked out of login and registration.
func (c SessionCookie) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUnauthenticated) {
		c.clear(w)
	}
	writeServiceError(w, r, err)
}

func writeEnvelope(w http.ResponseWriter, code int, resp accountsdk.Response) {
	httpx.WriteJSON(w, code, resp)
}

// writeServiceError maps a service error to its envelope. Anything
// unexpected is logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs service.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		writeEnvelope(w, http.StatusBadRequest, accountsdk.Response{
			Status: accountsdk.StatusError,
			Errors: fieldErrs,
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeEnvelope(w, http.StatusUnauthorized, accountsdk.Response{
			Status:  accountsdk.StatusError,
			Message: MsgInvalidLogin,
		})
	case errors.Is(err, service.ErrUnauthenticated):
		denySession(w, r)
	case errors.Is(err, service.ErrAdminForbidden):
		writeEnvelope(w, http.StatusForbidden, accountsdk.Response{
			Status:   accountsdk.StatusInfo,
			Redirect: PathAdmin,
		})
	case errors.Is(err, service.ErrInvalidResetToken):
		writeEnvelope(w, http.StatusBadRequest, accountsdk.Response{
			Status:   accountsdk.StatusWarning,
			Message:  MsgResetInvalid,
			Redirect: PathResetRequest,
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeEnvelope(w, http.StatusInternalServerError, accountsdk.Response{
			Status:  accountsdk.StatusError,
			Message: MsgInternal,
		})
	}
}

// denySession answers requests that need a session but have none.
func denySession(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusUnauthorized, accountsdk.Response{
		Status:   accountsdk.StatusError,
		Message:  MsgLoginRequired,
		Redirect: PathLogin + "?" + url.Values{accountsdk.FormNext: {r.URL.Path}}.Encode(),
	})
}

// redirectAuthenticated sends callers that are already logged in to their
// landing page.
func redirectAuthenticated(w http.ResponseWriter, _ *http.Request, c jwtx.Claims) {
	target := landingPage(c.Admin)
	w.Header().Set("Location", target)
	writeEnvelope(w, http.StatusSeeOther, accountsdk.Response{
		Status:   accountsdk.StatusInfo,
		Redirect: target,
	})
}

func landingPage(admin bool) string {
	if admin {
		return PathAdmin
	}
	return PathHome
}

// parseForm reads the form body, answering 400 itself on failure.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid form body", "err", err)
		writeEnvelope(w, http.StatusBadRequest, accountsdk.Response{
			Status:  accountsdk.StatusError,
			Message: MsgInvalidForm,
		})
		return false
	}
	return true
}

// formBool reads an HTML checkbox. Absent and explicit false values are unchecked.
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "n", "no":
		return false
	default:
		return true
	}
}

// identity returns the caller resolved by the session middleware.
func identity(r *http.Request) service.Identity {
	c, _ := httpx.ClaimsFromContext(r.Context())
	return service.IdentityFromClaims(c)
}

func userInfo(u domain.User) *accountsdk.UserInfo {
	return &accountsdk.UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
