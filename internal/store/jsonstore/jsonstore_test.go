package jsonstore

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recipebox/internal/store"
	"github.com/idilsaglam/recipebox/internal/store/storetest"
)

func TestJSONStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestFileLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("recipes", "[]"))
	b, err := os.ReadFile(filepath.Join(dir, "recipes.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp files are cleaned up")
	}
}

func TestRejectsPathKeys(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", "../x", "a/b", ".."} {
		assert.Error(t, s.Set(key, "v"), key)
	}
}

func TestOpenEmptyDir(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	err := classify(&os.PathError{Op: "write", Path: "x", Err: syscall.ENOSPC})
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
	assert.ErrorIs(t, err, syscall.ENOSPC)

	plain := classify(os.ErrPermission)
	assert.NotErrorIs(t, plain, store.ErrQuotaExceeded)
}
