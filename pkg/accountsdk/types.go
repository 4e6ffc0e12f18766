package accountsdk

import "time"

// ============================================================================
// Envelope
// ============================================================================

// Envelope status values. They mirror the flash categories of the pages
// that render these responses.
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Response is the JSON envelope returned by every account endpoint.
type Response struct {
	// Status is the flash category (success, info, warning, error)
	Status string `json:"status"`

	// Message is the human-readable flash message, if any
	Message string `json:"message,omitempty"`

	// Redirect is the path the caller should navigate to next
	Redirect string `json:"redirect,omitempty"`

	// Errors holds per-field validation messages, in rule order
	Errors map[string][]string `json:"errors,omitempty"`

	// User is the affected account, when the endpoint returns one
	User *UserInfo `json:"user,omitempty"`
}

// HasFieldError reports whether field has at least one validation message.
func (r *Response) HasFieldError(field string) bool {
	return len(r.Errors[field]) > 0
}

// ============================================================================
// Account Types
// ============================================================================

// UserInfo is the public view of an account. The password hash never leaves
// the service.
type UserInfo struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`

	// PortfolioCount is only populated by the profile endpoint
	PortfolioCount *int64 `json:"portfolio_count,omitempty"`
}

// ============================================================================
// Form Requests
// ============================================================================

// LoginRequest is the body of POST /v1/login. Login accepts a username or an
// email address.
type LoginRequest struct {
	Login    string
	Password string
	Remember bool

	// Next is the same-origin path to return to after login
	Next string
}

// RegisterRequest is the body of POST /v1/register.
type RegisterRequest struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

// ProfileRequest is the body of POST /v1/profile.
type ProfileRequest struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// ChangePasswordRequest is the body of POST /v1/password/change.
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// DeleteAccountRequest is the body of POST /v1/account/delete.
type DeleteAccountRequest struct {
	Password      string
	ConfirmDelete bool
}

// ResetPasswordRequest is the body of POST /v1/password/reset/{token}.
type ResetPasswordRequest struct {
	Password        string
	ConfirmPassword string
}

// Form field names shared by the service and this SDK.
const (
	FormLogin           = "login"
	FormEmailAlias      = "email"
	FormPassword        = "password"
	FormRemember        = "remember_me"
	FormNext            = "next"
	FormUsername        = "username"
	FormEmail           = "email"
	FormFirstName       = "first_name"
	FormLastName        = "last_name"
	FormConfirmPassword = "confirm_password"
	FormCurrentPassword = "current_password"
	FormNewPassword     = "new_password"
	FormConfirmDelete   = "confirm_delete"
)

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// ResetLedger is the used reset token store status, present only when it
	// lives outside the database
	ResetLedger string `json:"reset_ledger,omitempty"`
}
