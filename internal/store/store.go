// Package store defines the key-value persistence contract the recipe
// repository writes through. Backends live in subpackages.
package store

import "errors"

// ErrQuotaExceeded is returned by Set when the backend has no room left
// for the value.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a string key-value store. Get reports ok=false for an absent key.
// Remove of an absent key is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
