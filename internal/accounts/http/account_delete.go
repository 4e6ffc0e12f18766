package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
)

type DeleteAccountHandler struct {
	Accounts *service.AccountService
	Cookie   SessionCookie
}

// ServeHTTP permanently deletes the caller's account.
//
//	@Summary		Delete account
//	@Description	Deletes the logged-in user with their portfolios and projects, then ends the session.
//	@Tags			Accounts
//	@Security		SessionCookie
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			password		formData	string	true	"Current password"
//	@Param			confirm_delete	formData	boolean	true	"Must be checked"
//	@Success		200				{object}	accountsdk.Response	"Deleted; redirect to /"
//	@Failure		400				{object}	accountsdk.Response	"Field errors"
//	@Failure		401				{object}	accountsdk.Response	"Not logged in"
//	@Failure		403				{object}	accountsdk.Response	"Admin accounts cannot be deleted"
//	@Failure		429				{object}	accountsdk.Response	"Rate limit exceeded"
//	@Router			/v1/account/delete [post].
func (h *DeleteAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	_, err := h.Accounts.DeleteAccount(r.Context(), identity(r), service.DeleteAccountForm{
		Password:      r.PostForm.Get(accountsdk.FormPassword),
		ConfirmDelete: formBool(r.PostForm.Get(accountsdk.FormConfirmDelete)),
	})
	if errors.Is(err, service.ErrAdminForbidden) {
		writeEnvelope(w, http.StatusForbidden, accountsdk.Response{
			Status:   accountsdk.StatusError,
			Message:  MsgAdminNoDelete,
			Redirect: PathAdmin,
		})
		return
	}
	if err != nil {
		h.Cookie.writeError(w, r, err)
		return
	}

	h.Cookie.clear(w)
	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusInfo,
		Message:  MsgAccountDeleted,
		Redirect: PathHome,
	})
}
