package accountsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SessionCookieName is the cookie that carries the signed session.
const SessionCookieName = "fh_session"

// SDKClient is a client for the FreelanceHub accounts service. Its cookie jar
// holds the session cookie set by Login, so one SDKClient is one browser.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with its own cookie jar. Redirects are not
// followed; the 303 envelope is returned to the caller as an *APIError.
func NewSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil)
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SessionToken returns the session cookie currently held by the client, or
// "" when logged out.
func (c *SDKClient) SessionToken() string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	req, err := http.NewRequest(http.MethodGet, c.url("/"), nil)
	if err != nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(req.URL) {
		if ck.Name == SessionCookieName {
			return ck.Value
		}
	}
	return ""
}
