package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "token")

	store, err := NewFileTokenStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.Token())

	require.NoError(t, store.Save("tok-abc"))
	assert.Equal(t, "tok-abc", store.Token())

	// A fresh store sees the persisted token
	reopened, err := NewFileTokenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", reopened.Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "clear removes the credential file")

	// Clearing an already-clean store is fine
	require.NoError(t, store.Clear())
}

func TestFileTokenStore_TrimsStoredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-xyz\n"), 0o600))

	store, err := NewFileTokenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", store.Token())
}

func TestFileTokenStore_OnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	changes := 0
	store.OnChange(func() { changes++ })

	require.NoError(t, store.Save("tok"))
	assert.Equal(t, 1, changes)

	require.NoError(t, store.Clear())
	assert.Equal(t, 2, changes)
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore("seed")
	assert.Equal(t, "seed", store.Token())
	require.NoError(t, store.Save("next"))
	assert.Equal(t, "next", store.Token())
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}
