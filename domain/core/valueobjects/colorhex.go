package valueobjects

import (
	"errors"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorHex is a value object for a "#RRGGBB" color string.
type ColorHex struct {
	value string
}

// NewColorHex parses and normalizes a hex color string. Shorthand "#RGB"
// and missing '#' are accepted on input; the stored form is always the
// canonical lowercase "#rrggbb".
func NewColorHex(s string) (ColorHex, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorHex{}, errors.New("color cannot be empty")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(string(s[1]), 2) +
			strings.Repeat(string(s[2]), 2) + strings.Repeat(string(s[3]), 2)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return ColorHex{}, errors.New("invalid hex color: " + s)
	}
	return ColorHex{value: c.Hex()}, nil
}

// String returns the canonical "#rrggbb" form
func (c ColorHex) String() string {
	return c.value
}

// IsZero checks if the color is unset
func (c ColorHex) IsZero() bool {
	return c.value == ""
}

// RGBA returns the color's 8-bit channels
func (c ColorHex) RGBA() (r, g, b uint8) {
	col, err := colorful.Hex(c.value)
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}

// Luminance returns the perceived lightness in [0,1], used to pick a
// readable label color on top of a swatch.
func (c ColorHex) Luminance() float64 {
	col, err := colorful.Hex(c.value)
	if err != nil {
		return 0
	}
	_, _, l := col.Hsl()
	return l
}

// MarshalJSON implements json.Marshaler
func (c ColorHex) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (c *ColorHex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("ColorHex must be a string")
	}
	c.value = string(data[1 : len(data)-1])
	return nil
}
