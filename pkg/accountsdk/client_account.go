package accountsdk

import (
	"context"
	"net/url"
)

// Login authenticates with a username or email. On success the session
// cookie is stored in the client's jar.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*Response, error) {
	form := url.Values{
		FormLogin:    {req.Login},
		FormPassword: {req.Password},
	}
	if req.Remember {
		form.Set(FormRemember, checkbox(true))
	}

	path := "/v1/login"
	if req.Next != "" {
		path += "?" + url.Values{FormNext: {req.Next}}.Encode()
	}
	return c.postForm(ctx, path, form)
}

// Register creates a new account. It does not log in.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Response, error) {
	return c.postForm(ctx, "/v1/register", url.Values{
		FormUsername:        {req.Username},
		FormEmail:           {req.Email},
		FormFirstName:       {req.FirstName},
		FormLastName:        {req.LastName},
		FormPassword:        {req.Password},
		FormConfirmPassword: {req.ConfirmPassword},
	})
}

// Logout ends the session and drops the cookie.
func (c *SDKClient) Logout(ctx context.Context) (*Response, error) {
	return c.postForm(ctx, "/v1/logout", url.Values{})
}

// Profile returns the logged-in user with their portfolio count.
func (c *SDKClient) Profile(ctx context.Context) (*UserInfo, error) {
	resp, err := c.get(ctx, "/v1/profile")
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UpdateProfile edits the logged-in user's username, email and names.
func (c *SDKClient) UpdateProfile(ctx context.Context, req ProfileRequest) (*Response, error) {
	return c.postForm(ctx, "/v1/profile", url.Values{
		FormUsername:  {req.Username},
		FormEmail:     {req.Email},
		FormFirstName: {req.FirstName},
		FormLastName:  {req.LastName},
	})
}

// ChangePassword replaces the logged-in user's password.
func (c *SDKClient) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*Response, error) {
	return c.postForm(ctx, "/v1/password/change", url.Values{
		FormCurrentPassword: {req.CurrentPassword},
		FormNewPassword:     {req.NewPassword},
		FormConfirmPassword: {req.ConfirmPassword},
	})
}

// DeleteAccount permanently removes the logged-in user.
func (c *SDKClient) DeleteAccount(ctx context.Context, req DeleteAccountRequest) (*Response, error) {
	form := url.Values{FormPassword: {req.Password}}
	if req.ConfirmDelete {
		form.Set(FormConfirmDelete, checkbox(true))
	}
	return c.postForm(ctx, "/v1/account/delete", form)
}

// RequestPasswordReset asks for a reset link to be mailed to email.
func (c *SDKClient) RequestPasswordReset(ctx context.Context, email string) (*Response, error) {
	return c.postForm(ctx, "/v1/password/reset", url.Values{FormEmail: {email}})
}

// CheckResetToken reports whether token can still be used. An invalid or
// expired token returns an *APIError with a warning envelope.
func (c *SDKClient) CheckResetToken(ctx context.Context, token string) (*Response, error) {
	return c.get(ctx, "/v1/password/reset/"+url.PathEscape(token))
}

// CompletePasswordReset sets a new password using a reset token.
func (c *SDKClient) CompletePasswordReset(ctx context.Context, token string, req ResetPasswordRequest) (*Response, error) {
	return c.postForm(ctx, "/v1/password/reset/"+url.PathEscape(token), url.Values{
		FormPassword:        {req.Password},
		FormConfirmPassword: {req.ConfirmPassword},
	})
}
