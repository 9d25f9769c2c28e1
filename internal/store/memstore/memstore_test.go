package memstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recipebox/internal/store"
	"github.com/idilsaglam/recipebox/internal/store/storetest"
)

func TestMemStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New(0) })
}

func TestCapacity(t *testing.T) {
	s := New(10)
	require.NoError(t, s.Set("a", "12345"))
	require.NoError(t, s.Set("b", "12345"))

	err := s.Set("c", "1")
	require.ErrorIs(t, err, store.ErrQuotaExceeded)
	_, ok, _ := s.Get("c")
	assert.False(t, ok)

	// Replacing a value only counts the new size.
	require.NoError(t, s.Set("a", "54321"))
}

func TestFailWith(t *testing.T) {
	boom := errors.New("boom")
	s := New(0)
	s.FailWith = boom
	assert.ErrorIs(t, s.Set("a", "x"), boom)
}
