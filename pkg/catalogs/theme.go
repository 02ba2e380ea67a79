package catalogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// Theme holds the display preferences stored alongside the tweaks.
type Theme struct {
	Mode        string `yaml:"mode,omitempty" json:"mode,omitempty"`
	AccentColor string `yaml:"accent_color,omitempty" json:"accent_color,omitempty"`
}

// DefaultTheme returns the theme used when neither catalog has one.
func DefaultTheme() *Theme {
	return &Theme{Mode: constants.ThemeModeSystem, AccentColor: constants.DefaultAccentColor}
}

// IsZero reports whether the theme block is absent or empty.
func (t *Theme) IsZero() bool {
	return t == nil || (t.Mode == "" && t.AccentColor == "")
}

// Copy returns a copy of the theme, or nil for a nil theme.
func (t *Theme) Copy() *Theme {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}

// Validate checks the mode and the accent colour.
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}
	switch t.Mode {
	case "", constants.ThemeModeSystem, constants.ThemeModeLight, constants.ThemeModeDark:
	default:
		return errors.NewValidationError("mode", t.Mode, "must be one of system, light, dark")
	}
	if t.AccentColor != "" {
		if _, _, _, err := parseHex(t.AccentColor); err != nil {
			return errors.NewValidationError("accent_color", t.AccentColor, err.Error())
		}
	}
	return nil
}

// Darker returns the accent colour scaled by factor, as used for hover states.
// Channels are clamped to [0, 255].
func (t *Theme) Darker(factor float64) (string, error) {
	accent := constants.DefaultAccentColor
	if t != nil && t.AccentColor != "" {
		accent = t.AccentColor
	}
	r, g, b, err := parseHex(accent)
	if err != nil {
		return "", errors.NewValidationError("accent_color", accent, err.Error())
	}
	scale := func(c uint8) uint8 {
		v := float64(c) * factor
		switch {
		case v <= 0:
			return 0
		case v >= 255:
			return 255
		}
		return uint8(v)
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b)), nil
}

func parseHex(s string) (r, g, b uint8, err error) {
	c := strings.TrimPrefix(s, "#")
	if len(c) != 6 {
		return 0, 0, 0, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
