package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "profiles.json"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	profiles := store.Load()
	assert.Equal(t, 0, profiles.Len())
}

func TestStore_LoadMalformedFileIsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	profiles := store.Load()
	assert.Equal(t, 0, profiles.Len())
}

func TestStore_SaveAndLoadPreservesOrder(t *testing.T) {
	store := newTestStore(t)
	store.Set("zeta", Settings{APIKey: "z", Model: "m1", MaxTokens: 1})
	store.Set("alpha", Settings{APIKey: "a", Model: "m2", MaxTokens: 2})
	store.Set("mid", Settings{APIKey: "m", Model: "m3", MaxTokens: 3})
	require.NoError(t, store.Save())

	reloaded := NewStore(store.Path())
	reloaded.Refresh()

	var names []string
	for _, p := range reloaded.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)

	got, ok := reloaded.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, Settings{APIKey: "a", Model: "m2", MaxTokens: 2}, got)
}

func TestStore_SetExistingKeepsPosition(t *testing.T) {
	store := newTestStore(t)
	store.Set("one", Settings{Model: "a"})
	store.Set("two", Settings{Model: "b"})
	store.Set("one", Settings{Model: "c"})

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Name)
	assert.Equal(t, "c", list[0].Settings.Model)
}

func TestStore_RefreshPicksUpExternalEdits(t *testing.T) {
	store := newTestStore(t)
	store.Set("local", Settings{Model: "m"})
	require.NoError(t, store.Save())

	external := `{"outside": {"api_key": "k", "model": "x", "max_tokens": 5}}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(external), 0600))

	store.Refresh()
	_, ok := store.Get("local")
	assert.False(t, ok)
	got, ok := store.Get("outside")
	require.True(t, ok)
	assert.Equal(t, 5, got.MaxTokens)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	store.Set("a", Settings{})

	assert.True(t, store.Delete("a"))
	assert.False(t, store.Delete("a"))
	assert.Equal(t, 0, store.Len())
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "profiles.json"))
	store.Set("a", Settings{Model: "m"})

	require.NoError(t, store.Save())
	assert.FileExists(t, store.Path())
}
