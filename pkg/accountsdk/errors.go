package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-success envelope returned by the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Response is the decoded envelope; Status and Message may be empty when
	// the body was not an envelope
	Response Response
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Response.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Response.Message)
	}
	if len(e.Response.Errors) > 0 {
		fields := make([]string, 0, len(e.Response.Errors))
		for f := range e.Response.Errors {
			fields = append(fields, f)
		}
		return fmt.Sprintf("HTTP %d: invalid fields %s", e.StatusCode, strings.Join(fields, ", "))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsValidation reports whether the request failed field validation.
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest && len(e.Response.Errors) > 0
}

// IsUnauthorized reports whether the credentials or session were rejected.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports whether the caller is an admin excluded from the
// self-service account pages.
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsRateLimited reports whether the request was throttled.
func (e *APIError) IsRateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

// IsRedirect reports whether the caller already holds a session and was sent
// elsewhere.
func (e *APIError) IsRedirect() bool { return e.StatusCode == http.StatusSeeOther }

// parseErrorResponse turns a non-expected response into an *APIError,
// keeping whatever envelope fields the body carries.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &apiErr.Response); err != nil {
		apiErr.Response = Response{Status: StatusError}
	}
	if apiErr.Response.Redirect == "" {
		apiErr.Response.Redirect = resp.Header.Get("Location")
	}
	return apiErr
}
