package cli_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerai/go-careerai/cmd/careerai/internal/cli"
	"github.com/careerai/go-careerai/internal/config"
	"github.com/careerai/go-careerai/mockapi"
	"github.com/careerai/go-careerai/users"
	fakeuserrepo "github.com/careerai/go-careerai/users/repofake"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := fakeuserrepo.NewFakeUserRepo()
	hash, err := users.HashPassword("password1")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(&users.User{
		Email:        "jane@example.com",
		Username:     "jane",
		PasswordHash: hash,
	}))

	srv := httptest.NewServer(mockapi.New(config.New(), repo))
	t.Cleanup(srv.Close)
	return srv
}

func TestProvider_UsesDataFolderForCredentials(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLDER", dir)

	srv := newAPIServer(t)
	provider := cli.NewProvider(srv.URL)

	manager, err := provider.Manager(context.Background())
	require.NoError(t, err)
	require.NoError(t, manager.Login(context.Background(), "jane@example.com", "password1"))

	// The credential store landed in the configured folder, not the home dir.
	_, err = os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
}

func TestProvider_ManagerIsShared(t *testing.T) {
	t.Setenv("FOLDER", t.TempDir())

	srv := newAPIServer(t)
	provider := cli.NewProvider(srv.URL)

	first, err := provider.Manager(context.Background())
	require.NoError(t, err)
	second, err := provider.Manager(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
}
