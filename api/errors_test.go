package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerai/go-careerai/api"
)

func errorServer(t *testing.T, statusCode int, body string) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL)
}

func TestError_DetailShape(t *testing.T) {
	client := errorServer(t, http.StatusUnauthorized, `{"detail":"Given token not valid for any token type","code":"token_not_valid"}`)

	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Given token not valid for any token type", apiErr.Detail)
	require.True(t, apiErr.Unauthorized())
	require.True(t, api.IsUnauthorized(err))
}

func TestError_FieldMapShape(t *testing.T) {
	client := errorServer(t, http.StatusBadRequest, `{"email":["A user with this email already exists."],"password":["This password is too common."]}`)

	_, err := client.Register(context.Background(), api.RegistrationRequest{})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, []string{"A user with this email already exists."}, apiErr.Fields["email"])
	require.Equal(t, []string{"This password is too common."}, apiErr.Fields["password"])
	require.False(t, api.IsUnauthorized(err))
}

func TestError_NonFieldErrorsBecomeDetail(t *testing.T) {
	client := errorServer(t, http.StatusBadRequest, `{"non_field_errors":["Invalid email or password."]}`)

	_, err := client.Login(context.Background(), "a@b.com", "pw")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid email or password.", apiErr.Detail)
	require.Contains(t, err.Error(), "Invalid email or password.")
}

func TestError_ErrorKeyShape(t *testing.T) {
	client := errorServer(t, http.StatusBadRequest, `{"error":"Refresh token is required."}`)

	err := client.Logout(context.Background(), "")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Refresh token is required.", apiErr.Detail)
}

func TestError_NonJSONBody(t *testing.T) {
	client := errorServer(t, http.StatusBadGateway, `upstream timeout`)

	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "upstream timeout", apiErr.Detail)
}
