package http

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
)

type RegisterHandler struct {
	Accounts *service.AccountService
}

// ServeHTTP handles registration form submissions.
//
//	@Summary		Register
//	@Description	Creates a new account and sends a best-effort welcome email. Does not log in.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username			formData	string	true	"3-20 letters, digits or underscores"
//	@Param			email				formData	string	true	"Email address"
//	@Param			first_name			formData	string	true	"First name"
//	@Param			last_name			formData	string	true	"Last name"
//	@Param			password			formData	string	true	"Password"
//	@Param			confirm_password	formData	string	true	"Password again"
//	@Success		200					{object}	accountsdk.Response	"Registered; redirect to /v1/login"
//	@Success		303					{object}	accountsdk.Response	"Already logged in"
//	@Failure		400					{object}	accountsdk.Response	"Field errors"
//	@Failure		429					{object}	accountsdk.Response	"Rate limit exceeded"
//	@Failure		500					{object}	accountsdk.Response	"Internal server error"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	u, err := h.Accounts.Register(r.Context(), service.RegisterForm{
		Username:        r.PostForm.Get(accountsdk.FormUsername),
		Email:           r.PostForm.Get(accountsdk.FormEmail),
		FirstName:       r.PostForm.Get(accountsdk.FormFirstName),
		LastName:        r.PostForm.Get(accountsdk.FormLastName),
		Password:        r.PostForm.Get(accountsdk.FormPassword),
		ConfirmPassword: r.PostForm.Get(accountsdk.FormConfirmPassword),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusSuccess,
		Message:  MsgRegistered,
		Redirect: PathLogin,
		User:     userInfo(u),
	})
}
