package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/careerai/go-careerai/users"
	"github.com/pkg/errors"
)

// Client provides a typed interface to the CareerAI REST API. It is
// transport-agnostic: pass an http.Client carrying the auth round tripper to
// get bearer attachment and silent renewal on every call.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOptions configures client construction.
type ClientOptions struct {
	HTTPClient *http.Client
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// New creates a client for the API server at baseURL. An http.Client is
// created automatically when one is not supplied.
func New(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    opts.HTTPClient,
	}
}

// Login exchanges credentials for a token pair and the account record.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenGrant, error) {
	var grant TokenGrant
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login/", payload, &grant); err != nil {
		return nil, errors.Wrap(err, "[Client.Login] credential exchange")
	}
	return &grant, nil
}

// Register exchanges a new-account payload for a token pair and the account
// record.
func (c *Client) Register(ctx context.Context, reg RegistrationRequest) (*TokenGrant, error) {
	var grant TokenGrant
	if err := c.do(ctx, http.MethodPost, "/api/auth/register/", reg, &grant); err != nil {
		return nil, errors.Wrap(err, "[Client.Register] registration exchange")
	}
	return &grant, nil
}

// Me fetches the current account record for the presented access token.
func (c *Client) Me(ctx context.Context) (*users.User, error) {
	var user users.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me/", nil, &user); err != nil {
		return nil, errors.Wrap(err, "[Client.Me] current-user fetch")
	}
	return &user, nil
}

// SetProfileCompleted performs the lightweight partial update that flips the
// onboarding-complete flag on the account record.
func (c *Client) SetProfileCompleted(ctx context.Context, completed bool) (*users.User, error) {
	var user users.User
	payload := map[string]bool{"is_profile_completed": completed}
	if err := c.do(ctx, http.MethodPatch, "/api/auth/me/", payload, &user); err != nil {
		return nil, errors.Wrap(err, "[Client.SetProfileCompleted] partial update")
	}
	return &user, nil
}

// ReplaceProfile replaces the full profile. Callers that need the canonical
// account record afterwards should re-fetch it with Me.
func (c *Client) ReplaceProfile(ctx context.Context, profile Profile) error {
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile/", profile, nil); err != nil {
		return errors.Wrap(err, "[Client.ReplaceProfile] profile replace")
	}
	return nil
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token itself stays valid until logout or server-side expiry.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var resp struct {
		AccessToken string `json:"access"`
	}
	payload := map[string]string{"refresh": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh/", payload, &resp); err != nil {
		return "", errors.Wrap(err, "[Client.Refresh] token renewal")
	}
	return resp.AccessToken, nil
}

// Logout asks the server to blacklist the refresh token. Best-effort on the
// caller's side: local cleanup must proceed regardless of the outcome.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	payload := map[string]string{"refresh": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout/", payload, nil); err != nil {
		return errors.Wrap(err, "[Client.Logout] logout notification")
	}
	return nil
}

// Courses returns the course catalog.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.do(ctx, http.MethodGet, "/api/courses/", nil, &courses); err != nil {
		return nil, errors.Wrap(err, "[Client.Courses] catalog fetch")
	}
	return courses, nil
}

// Jobs searches job postings. An empty query returns all postings.
func (c *Client) Jobs(ctx context.Context, query string) ([]Job, error) {
	path := "/api/jobs/"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, errors.Wrap(err, "[Client.Jobs] job search")
	}
	return jobs, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decode response body")
		}
	}
	return nil
}
