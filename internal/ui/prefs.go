package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/recipebox/internal/store"
)

// ThemeKey is where the theme preference lives in the store.
const ThemeKey = "app-theme"

// StoredTheme returns the saved theme preference, dark when none or an
// unknown value is stored.
func StoredTheme(s store.Store) (string, error) {
	v, ok, err := s.Get(ThemeKey)
	if err != nil {
		return Dark, fmt.Errorf("read theme: %w", err)
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if !ok || !ValidTheme(v) {
		return Dark, nil
	}
	return v, nil
}

// StoreTheme saves name as the theme preference.
func StoreTheme(s store.Store, name string) error {
	name = strings.ToLower(name)
	if !ValidTheme(name) {
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes, ", "))
	}
	if err := s.Set(ThemeKey, name); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ResolveTheme picks the theme to apply: an explicit configured name wins,
// otherwise the stored preference.
func ResolveTheme(configured string, s store.Store) string {
	if ValidTheme(configured) {
		return strings.ToLower(configured)
	}
	name, err := StoredTheme(s)
	if err != nil {
		return Dark
	}
	return name
}
