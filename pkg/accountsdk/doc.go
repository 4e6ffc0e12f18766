/*
Package accountsdk provides a client SDK for the FreelanceHub accounts service.

# Overview

The accounts service speaks form-encoded requests and answers with a JSON
envelope (see Response) carrying a flash status, an optional message, a
redirect hint, per-field validation errors and, for some endpoints, the
affected user. The same types are used by the service to write responses.

An SDKClient behaves like one browser: it keeps the session cookie in its
own jar, so Login followed by Profile works without passing tokens around.

	client := accountsdk.NewSDKClient("https://accounts.example.com")

	_, err := client.Register(ctx, accountsdk.RegisterRequest{
		Username:        "jane_doe",
		Email:           "jane@example.com",
		FirstName:       "Jane",
		LastName:        "Doe",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	})

	resp, err := client.Login(ctx, accountsdk.LoginRequest{
		Login:    "jane@example.com",
		Password: "Str0ng!Pass",
		Remember: true,
	})
	fmt.Println(resp.Redirect) // "/"

	user, err := client.Profile(ctx)

# Password Reset

A reset is two steps. RequestPasswordReset mails a link whose last path
segment is the token; CheckResetToken and CompletePasswordReset take that
token:

	_, err := client.RequestPasswordReset(ctx, "jane@example.com")

	_, err = client.CompletePasswordReset(ctx, token, accountsdk.ResetPasswordRequest{
		Password:        "N3w!Password",
		ConfirmPassword: "N3w!Password",
	})

# Error Handling

Any response other than 200 is returned as an *APIError holding the status
code and the decoded envelope:

	_, err := client.Register(ctx, req)
	var apiErr *accountsdk.APIError
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		for field, msgs := range apiErr.Response.Errors {
			fmt.Println(field, msgs)
		}
	}

Admins calling the self-service endpoints get 403 with a redirect to
/admin (IsForbidden). Callers that already hold a session and hit login,
registration or reset get 303 (IsRedirect). Throttled requests get 429
(IsRateLimited).

# Health Checks

	health, err := client.GetLiveness(ctx)
	ready, err := client.GetReadiness(ctx)
*/
package accountsdk
