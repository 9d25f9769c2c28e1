// Package storetest holds the behavior every store.Store backend must share.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recipebox/internal/store"
)

// Run exercises a fresh store returned by open.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("absent key", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get("recipes")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("recipes", `[{"id":"a"}]`))
		v, ok, err := s.Get("recipes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"a"}]`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("app-theme", "dark"))
		require.NoError(t, s.Set("app-theme", "light"))
		v, _, err := s.Get("app-theme")
		require.NoError(t, err)
		assert.Equal(t, "light", v)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("recipes", "[]"))
		require.NoError(t, s.Set("app-theme", "dark"))
		require.NoError(t, s.Remove("app-theme"))
		v, ok, err := s.Get("recipes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", v)
	})

	t.Run("remove", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("recipes", "[]"))
		require.NoError(t, s.Remove("recipes"))
		_, ok, err := s.Get("recipes")
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, s.Remove("recipes"), "removing an absent key")
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("recipes", ""))
		_, ok, err := s.Get("recipes")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
