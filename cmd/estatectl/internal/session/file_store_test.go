package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nested", sessionFile), nil)
	require.NoError(t, err)
	return store
}

func TestFileStore_EmptyIsAnonymous(t *testing.T) {
	store := newTestStore(t)

	s := store.Session()
	assert.False(t, s.Authenticated())
	assert.Equal(t, sdk.DefaultRole, s.Role)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetToken("abc"))
	require.NoError(t, store.SetRole(sdk.RoleAgent))

	s := store.Session()
	assert.Equal(t, "abc", s.Token)
	assert.Equal(t, sdk.RoleAgent, s.Role)

	// survives a new store over the same file
	reopened, err := NewFileStore(store.Path(), nil)
	require.NoError(t, err)
	assert.Equal(t, s, reopened.Session())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role_id": "2"`)
	assert.Contains(t, string(data), `"token": "abc"`)
}

func TestFileStore_ClearRemovesFileAndIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken("abc"))
	require.NoError(t, store.SetRole(sdk.RoleAdmin))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	assert.False(t, store.Session().Authenticated())
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_ClearKeepsUnrelatedKeys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"token":"abc","role_id":"1","theme":"dark"}`), 0600))

	require.NoError(t, store.Clear())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(data))
}

func TestFileStore_CorruptFileReadsAsNoSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	s := store.Session()
	assert.False(t, s.Authenticated())
	assert.Equal(t, sdk.DefaultRole, s.Role)

	// a write replaces the corrupt file
	require.NoError(t, store.SetToken("fresh"))
	assert.Equal(t, "fresh", store.Session().Token)
}

func TestFileStore_NonNumericRoleDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"token":"abc","role_id":"admin"}`), 0600))

	assert.Equal(t, sdk.DefaultRole, store.Session().Role)
}
