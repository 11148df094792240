// Package nextcloud is a client for Nextcloud's WebDAV, CalDAV and
// CardDAV endpoints and the Notes, Deck and Cookbook REST APIs.
//
// The client is stateless per call: it holds only the base URL, the
// credentials and an HTTP client, all of which are safe for concurrent
// use by independent calls. Callers get plain value records back and
// decide themselves how to present them.
package nextcloud

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a single Nextcloud instance with HTTP basic auth.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Useful for tests
// and for callers that need custom timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithInsecureTLS disables certificate verification. Only for
// development against self-signed instances.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.client = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
			Timeout: 30 * time.Second,
		}
	}
}

// New creates a client for the given instance. The base URL is
// normalized to end with exactly one slash. ErrMissingConfig is
// returned before any network traffic when a field is empty.
func New(baseURL, username, password string, opts ...Option) (*Client, error) {
	if baseURL == "" || username == "" || password == "" {
		return nil, ErrMissingConfig
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/") + "/",
		username: username,
		password: password,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
			Timeout: 30 * time.Second,
		}
	}

	return c, nil
}

// Username returns the account name the client authenticates as.
func (c *Client) Username() string {
	return c.username
}

// BaseURL returns the normalized instance URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// webdavURL maps a user-relative file path to its WebDAV endpoint.
// Path segments are percent-encoded individually so slashes survive.
func (c *Client) webdavURL(path string) string {
	path = strings.TrimPrefix(path, "/")
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return c.baseURL + "remote.php/dav/files/" + c.username + "/" + strings.Join(segments, "/")
}

// notesURL builds a Notes app REST endpoint.
func (c *Client) notesURL(endpoint string) string {
	return c.baseURL + "index.php/apps/notes/api/v1/" + strings.TrimPrefix(endpoint, "/")
}

// deckURL builds a Deck app REST endpoint.
func (c *Client) deckURL(endpoint string) string {
	return c.baseURL + "index.php/apps/deck/api/v1.0/" + strings.TrimPrefix(endpoint, "/")
}

// cookbookURL builds a Cookbook app REST endpoint.
func (c *Client) cookbookURL(endpoint string) string {
	return c.baseURL + "index.php/apps/cookbook/api/v1/" + strings.TrimPrefix(endpoint, "/")
}

// caldavURL builds a CalDAV endpoint under the user's calendar home.
func (c *Client) caldavURL(endpoint string) string {
	return c.baseURL + "remote.php/dav/calendars/" + c.username + "/" + strings.TrimPrefix(endpoint, "/")
}

// carddavURL builds a CardDAV endpoint under the user's address book home.
func (c *Client) carddavURL(endpoint string) string {
	return c.baseURL + "remote.php/dav/addressbooks/users/" + c.username + "/" + strings.TrimPrefix(endpoint, "/")
}

// do creates and executes an authenticated request.
func (c *Client) do(method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.username, c.password)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// checkResponse maps HTTP failure statuses to RequestErrors. When
// allowedStatuses is given, only those count as success; otherwise any
// 2xx does. There is no retry anywhere: a failed call fails once.
func (c *Client) checkResponse(resp *http.Response, op string, allowedStatuses ...int) error {
	if len(allowedStatuses) > 0 {
		for _, status := range allowedStatuses {
			if resp.StatusCode == status {
				return nil
			}
		}
	} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case 401, 403:
		return NewRequestError(op, resp.StatusCode, "authentication failed, check username and password").
			WithBody(string(body))
	case 404:
		return NewRequestError(op, resp.StatusCode, "resource not found").
			WithBody(string(body))
	case 405:
		return NewRequestError(op, resp.StatusCode, "operation not allowed or resource already exists").
			WithBody(string(body))
	default:
		return NewRequestError(op, resp.StatusCode, resp.Status).
			WithBody(string(body))
	}
}
