package http

import (
	"net/http"

	"github.com/aussiebroadwan/freelancehub/internal/accounts/service"
	"github.com/aussiebroadwan/freelancehub/pkg/accountsdk"
)

type ProfileHandler struct {
	Accounts *service.AccountService
	Cookie   SessionCookie
}

// HandleGet returns the caller's profile.
//
//	@Summary		Get profile
//	@Description	Returns the logged-in user and the number of portfolios they own. Admins are sent to /admin.
//	@Tags			Accounts
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	accountsdk.Response	"user with portfolio_count"
//	@Failure		401	{object}	accountsdk.Response	"Not logged in"
//	@Failure		403	{object}	accountsdk.Response	"Admin account; redirect to /admin"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.Accounts.Profile(r.Context(), identity(r))
	if err != nil {
		h.Cookie.writeError(w, r, err)
		return
	}

	info := userInfo(view.User)
	info.PortfolioCount = &view.PortfolioCount
	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status: accountsdk.StatusSuccess,
		User:   info,
	})
}

// HandlePost updates the caller's profile.
//
//	@Summary		Update profile
//	@Description	Rewrites username, email, first and last name. Unchanged values never conflict with themselves.
//	@Tags			Accounts
//	@Security		SessionCookie
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			email		formData	string	true	"Email address"
//	@Param			first_name	formData	string	true	"First name"
//	@Param			last_name	formData	string	true	"Last name"
//	@Success		200			{object}	accountsdk.Response	"Updated; redirect to /v1/profile"
//	@Failure		400			{object}	accountsdk.Response	"Field errors"
//	@Failure		401			{object}	accountsdk.Response	"Not logged in"
//	@Failure		403			{object}	accountsdk.Response	"Admin account; redirect to /admin"
//	@Router			/v1/profile [post].
func (h *ProfileHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	u, err := h.Accounts.UpdateProfile(r.Context(), identity(r), service.ProfileForm{
		Username:  r.PostForm.Get(accountsdk.FormUsername),
		Email:     r.PostForm.Get(accountsdk.FormEmail),
		FirstName: r.PostForm.Get(accountsdk.FormFirstName),
		LastName:  r.PostForm.Get(accountsdk.FormLastName),
	})
	if err != nil {
		h.Cookie.writeError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, accountsdk.Response{
		Status:   accountsdk.StatusSuccess,
		Message:  MsgProfileUpdated,
		Redirect: PathProfile,
		User:     userInfo(u),
	})
}
