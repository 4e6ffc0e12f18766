package http

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
)

type LogoutHandler struct {
	Accounts *service.AccountService
	Cookie   SessionCookie
}

// ServeHTTP ends the caller's session.
//
//	@Summary		Log out
//	@Description	Clears the session cookie.
//	@Tags			Accounts
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	accountsdk.Response	"Logged out"
//	@Failure		401	{object}	accountsdk.Response	"Not logged in"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Accounts.Logout(r.Context(), identity(r)); err != nil {
		h.Cookie.writeError(w, r, err)
		return
	}

	h.Cookie.clear(w)
	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusInfo,
		Message:  MsgLoggedOut,
		Redirect: PathHome,
	})
}
