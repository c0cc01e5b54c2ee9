package transport_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerai/go-careerai/transport"
)

type staticSource struct {
	token atomic.Value
}

func newStaticSource(token string) *staticSource {
	s := &staticSource{}
	s.token.Store(token)
	return s
}

func (s *staticSource) AccessToken() string {
	return s.token.Load().(string)
}

type renewerFunc func(ctx context.Context) error

func (f renewerFunc) Renew(ctx context.Context) error { return f(ctx) }

func TestAuthTransport_AttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := &http.Client{Transport: &transport.AuthTransport{
		Source: newStaticSource("token-1"),
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "Bearer token-1", gotAuth)
}

func TestAuthTransport_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
	}))
	defer srv.Close()

	client := &http.Client{Transport: &transport.AuthTransport{
		Source: newStaticSource(""),
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Empty(t, gotAuth)
	require.False(t, hadHeader)
}

func TestAuthTransport_RenewsAndRetriesOn401(t *testing.T) {
	source := newStaticSource("stale")
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	var renewals int32
	client := &http.Client{Transport: &transport.AuthTransport{
		Source: source,
		Renewer: renewerFunc(func(ctx context.Context) error {
			atomic.AddInt32(&renewals, 1)
			source.token.Store("fresh")
			return nil
		}),
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
	require.Equal(t, int32(2), atomic.LoadInt32(&requests))
	require.Equal(t, int32(1), atomic.LoadInt32(&renewals))
}

func TestAuthTransport_RetriesAtMostOnce(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var renewals int32
	client := &http.Client{Transport: &transport.AuthTransport{
		Source: newStaticSource("whatever"),
		Renewer: renewerFunc(func(ctx context.Context) error {
			atomic.AddInt32(&renewals, 1)
			return nil
		}),
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, int32(2), atomic.LoadInt32(&requests))
	require.Equal(t, int32(1), atomic.LoadInt32(&renewals))
}

func TestAuthTransport_RenewFailureReturnsOriginal401(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &transport.AuthTransport{
		Source: newStaticSource("stale"),
		Renewer: renewerFunc(func(ctx context.Context) error {
			return context.DeadlineExceeded
		}),
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, string(body), "token expired")
	require.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestAuthTransport_BodyReplayedOnRetry(t *testing.T) {
	source := newStaticSource("stale")
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}))
	defer srv.Close()

	client := &http.Client{Transport: &transport.AuthTransport{
		Source: source,
		Renewer: renewerFunc(func(ctx context.Context) error {
			source.token.Store("fresh")
			return nil
		}),
	}}

	resp, err := client.Post(srv.URL, "application/json", bytes.NewReader([]byte(`{"k":"v"}`)))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{`{"k":"v"}`, `{"k":"v"}`}, bodies)
}

func TestAuthTransport_UnreplayableBodyNotRetried(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var renewals int32
	tr := &transport.AuthTransport{
		Source: newStaticSource("stale"),
		Renewer: renewerFunc(func(ctx context.Context) error {
			atomic.AddInt32(&renewals, 1)
			return nil
		}),
	}

	// Streams have no GetBody, so the rejection must pass through untouched.
	req, err := http.NewRequest(http.MethodPost, srv.URL, io.NopCloser(strings.NewReader("stream")))
	require.NoError(t, err)
	require.Nil(t, req.GetBody)

	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, int32(1), atomic.LoadInt32(&requests))
	require.Equal(t, int32(0), atomic.LoadInt32(&renewals))
}

func TestAuthTransport_NonUnauthorizedPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &transport.AuthTransport{
		Source: newStaticSource("token"),
		Renewer: renewerFunc(func(ctx context.Context) error {
			t.Fatal("renew should not be called for non-401 responses")
			return nil
		}),
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
