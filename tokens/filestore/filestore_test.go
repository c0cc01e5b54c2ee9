package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerai/go-careerai/tokens"
	"github.com/careerai/go-careerai/tokens/filestore"
)

func TestStore_SaveLoadClear(t *testing.T) {
	store, err := filestore.NewAt(t.TempDir())
	require.NoError(t, err)

	creds := &tokens.Credentials{
		Pair: tokens.Pair{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
		},
		ProfileCompleted: true,
	}
	require.NoError(t, store.Save(creds))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, creds, loaded)

	require.NoError(t, store.Clear())

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestStore_LoadMissingFileIsNotAnError(t *testing.T) {
	store, err := filestore.NewAt(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestStore_ClearMissingFileIsNoop(t *testing.T) {
	store, err := filestore.NewAt(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.NewAt(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(&tokens.Credentials{
		Pair: tokens.Pair{AccessToken: "a", RefreshToken: "r"},
	}))

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, err := filestore.NewAt(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(&tokens.Credentials{
		Pair: tokens.Pair{AccessToken: "old", RefreshToken: "old"},
	}))
	require.NoError(t, store.Save(&tokens.Credentials{
		Pair:             tokens.Pair{AccessToken: "new", RefreshToken: "new"},
		ProfileCompleted: true,
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "new", loaded.AccessToken)
	require.True(t, loaded.ProfileCompleted)
}
