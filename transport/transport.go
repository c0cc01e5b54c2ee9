// Package transport carries the access token on outgoing API requests and
// retries a request once after a silent renewal when the server rejects the
// token.
package transport

import (
	"context"
	"io"
	"net/http"
)

// TokenSource yields the current access token. An empty string means the
// request goes out anonymously.
type TokenSource interface {
	AccessToken() string
}

// Renewer obtains a fresh access token. Implementations must be safe for
// concurrent use; a burst of rejected requests should trigger a single
// renewal.
type Renewer interface {
	Renew(ctx context.Context) error
}

// AuthTransport is an http.RoundTripper that attaches the bearer token and
// performs the renew-and-retry dance on a 401. At most one retry per request:
// a second 401 is returned to the caller untouched.
type AuthTransport struct {
	Base    http.RoundTripper
	Source  TokenSource
	Renewer Renewer
}

var _ http.RoundTripper = (*AuthTransport)(nil)

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip sends the request with the current access token attached. On a
// 401 it renews once and replays the request with the new token. Requests
// whose body cannot be replayed (Body set but GetBody nil) are never retried.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	attempt, err := t.cloneWithToken(req)
	if err != nil {
		return nil, err
	}

	resp, err := t.base().RoundTrip(attempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}
	if t.Renewer == nil {
		return resp, nil
	}

	if err := t.Renewer.Renew(req.Context()); err != nil {
		// The renewal failed; the original rejection stands.
		return resp, nil
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	retry, err := t.cloneWithToken(req)
	if err != nil {
		return nil, err
	}
	return t.base().RoundTrip(retry)
}

// cloneWithToken copies the request so retries never mutate the caller's
// request, rewinds the body via GetBody, and sets the Authorization header.
func (t *AuthTransport) cloneWithToken(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	if t.Source != nil {
		if token := t.Source.AccessToken(); token != "" {
			clone.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return clone, nil
}
