package http

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
)

type PasswordResetHandler struct {
	Accounts *service.AccountService
}

// HandleRequest mails a reset link.
//
//	@Summary		Request password reset
//	@Description	Sends a reset link valid for 30 minutes to the account registered with the email.
//	@Tags			Password Reset
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email	formData	string	true	"Email address"
//	@Success		200		{object}	accountsdk.Response	"Link sent; redirect to /v1/login"
//	@Success		303		{object}	accountsdk.Response	"Already logged in"
//	@Failure		400		{object}	accountsdk.Response	"Field errors, including unknown email"
//	@Failure		429		{object}	accountsdk.Response	"Rate limit exceeded"
//	@Router			/v1/password/reset [post].
func (h *PasswordResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	err := h.Accounts.RequestPasswordReset(r.Context(), service.ResetRequestForm{
		Email: r.PostForm.Get(accountsdk.FormEmail),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusInfo,
		Message:  MsgResetSent,
		Redirect: PathLogin,
	})
}

// HandleCheck reports whether a reset token is still usable.
//
//	@Summary		Check reset token
//	@Description	Verifies the token from a reset link without using it.
//	@Tags			Password Reset
//	@Produce		json
//	@Param			token	path		string	true	"Reset token"
//	@Success		200		{object}	accountsdk.Response	"Token usable"
//	@Success		303		{object}	accountsdk.Response	"Already logged in"
//	@Failure		400		{object}	accountsdk.Response	"That is an invalid or expired token"
//	@Router			/v1/password/reset/{token} [get].
func (h *PasswordResetHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Accounts.CheckResetToken(r.Context(), r.PathValue("token")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{Status: accountsdk.StatusSuccess})
}

// HandleComplete sets a new password with a reset token.
//
//	@Summary		Reset password
//	@Description	Verifies the token, then stores the new password.
//	@Tags			Password Reset
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			token				path		string	true	"Reset token"
//	@Param			password			formData	string	true	"New password"
//	@Param			confirm_password	formData	string	true	"New password again"
//	@Success		200					{object}	accountsdk.Response	"Password reset; redirect to /v1/login"
//	@Success		303					{object}	accountsdk.Response	"Already logged in"
//	@Failure		400					{object}	accountsdk.Response	"Invalid token or field errors"
//	@Failure		429					{object}	accountsdk.Response	"Rate limit exceeded"
//	@Router			/v1/password/reset/{token} [post].
func (h *PasswordResetHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	err := h.Accounts.CompletePasswordReset(r.Context(), r.PathValue("token"), service.ResetPasswordForm{
		Password:        r.PostForm.Get(accountsdk.FormPassword),
		ConfirmPassword: r.PostForm.Get(accountsdk.FormConfirmPassword),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusSuccess,
		Message:  MsgResetDone,
		Redirect: PathLogin,
	})
}
