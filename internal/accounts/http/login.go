package http

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
	"github.com/aussiebroadwan/freelancehub/pkg/httpx"
)

type LoginHandler struct {
	Accounts *service.AccountService
	Sessions *service.Sessions
	Cookie   SessionCookie
}

// ServeHTTP handles login form submissions.
//
//	@Summary		Log in
//	@Description	Authenticates with a username or email and sets the session cookie.
//	@Description	Admins are sent to /admin; everyone else to the same-origin "next" path or /.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			login		formData	string	true	"Username or email ('email' is accepted as an alias)"
//	@Param			password	formData	string	true	"Password"
//	@Param			remember_me	formData	boolean	false	"Keep the session for 30 days"
//	@Param			next		query		string	false	"Same-origin path to return to"
//	@Success		200			{object}	accountsdk.Response	"Logged in; user and redirect set"
//	@Success		303			{object}	accountsdk.Response	"Already logged in"
//	@Failure		400			{object}	accountsdk.Response	"Missing fields"
//	@Failure		401			{object}	accountsdk.Response	"Invalid email/username or password"
//	@Failure		429			{object}	accountsdk.Response	"Rate limit exceeded"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	login := r.PostForm.Get(accountsdk.FormLogin)
	if login == "" {
		login = r.PostForm.Get(accountsdk.FormEmailAlias)
	}
	form := service.LoginForm{
		Login:    login,
		Password: r.PostForm.Get(accountsdk.FormPassword),
		Remember: formBool(r.PostForm.Get(accountsdk.FormRemember)),
	}

	u, err := h.Accounts.Login(r.Context(), form)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.Sessions.Issue(u, form.Remember)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.Cookie.set(w, sess)

	redirect := PathAdmin
	if !u.IsAdmin {
		redirect = httpx.SafeRedirect(r.Form.Get(accountsdk.FormNext), PathHome)
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusSuccess,
		Redirect: redirect,
		User:     userInfo(u),
	})
}
