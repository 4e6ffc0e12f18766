package http

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
)

type PasswordChangeHandler struct {
	Accounts *service.AccountService
	Cookie   SessionCookie
}

// ServeHTTP changes the caller's password.
//
//	@Summary		Change password
//	@Description	Verifies the current password and stores the new one. Other sessions stay valid.
//	@Tags			Accounts
//	@Security		SessionCookie
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			current_password	formData	string	true	"Current password"
//	@Param			new_password		formData	string	true	"New password"
//	@Param			confirm_password	formData	string	true	"New password again"
//	@Success		200					{object}	accountsdk.Response	"Changed; redirect to /v1/profile"
//	@Failure		400					{object}	accountsdk.Response	"Field errors"
//	@Failure		401					{object}	accountsdk.Response	"Not logged in"
//	@Failure		403					{object}	accountsdk.Response	"Admin account; redirect to /admin"
//	@Failure		429					{object}	accountsdk.Response	"Rate limit exceeded"
//	@Router			/v1/password/change [post].
func (h *PasswordChangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	err := h.Accounts.ChangePassword(r.Context(), identity(r), service.ChangePasswordForm{
		CurrentPassword: r.PostForm.Get(accountsdk.FormCurrentPassword),
		NewPassword:     r.PostForm.Get(accountsdk.FormNewPassword),
		ConfirmPassword: r.PostForm.Get(accountsdk.FormConfirmPassword),
	})
	if err != nil {
		h.Cookie.writeError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusSuccess,
		Message:  MsgPasswordChanged,
		Redirect: PathProfile,
	})
}
