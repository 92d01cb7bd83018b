package stats

import (
	"context"
	"fmt"
)

// Theme names a colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeNeon  Theme = "neon"
)

// Themes lists the themes in cycling order.
var Themes = []Theme{ThemeDark, ThemeLight, ThemeNeon}

// DefaultTheme is used until the player picks one.
const DefaultTheme = ThemeDark

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	for _, th := range Themes {
		if string(th) == s {
			return th, nil
		}
	}
	return "", fmt.Errorf("stats: unknown theme %q", s)
}

// Next returns the theme after th, wrapping around. Unknown themes
// restart the cycle.
func (th Theme) Next() Theme {
	for i, candidate := range Themes {
		if candidate == th {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Theme returns the stored theme, DefaultTheme when unset or invalid.
func (t *Tracker) Theme(ctx context.Context) Theme {
	raw, ok := t.get(ctx, KeyTheme)
	if !ok {
		return DefaultTheme
	}
	th, err := ParseTheme(raw)
	if err != nil {
		t.logger.Warn("unknown theme, using default", "key", t.key(KeyTheme), "value", raw)
		return DefaultTheme
	}
	return th
}

// SetTheme stores the theme preference.
func (t *Tracker) SetTheme(ctx context.Context, th Theme) error {
	return t.set(ctx, KeyTheme, string(th))
}
