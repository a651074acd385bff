// Package colors holds the palette math shared by the AI proxy and the
// board renderer: hex validation/normalization and local palette
// generation used for starter boards and as a sanity check on model
// output.
package colors

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeHex validates a hex color string and returns its canonical
// "#rrggbb" form. Shorthand "#abc" and a missing '#' are accepted.
func NormalizeHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty color")
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
		return "", fmt.Errorf("invalid hex color %q", s)
	}
	return c.Hex(), nil
}

// NormalizePalette validates every entry of a palette returned by the
// model. A single bad entry invalidates the whole palette; the caller
// treats that as malformed model output.
func NormalizePalette(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		hex, err := NormalizeHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, hex)
	}
	return out, nil
}

// RandomPalette generates n harmonious colors by walking hues from a
// random start with fixed saturation/lightness bands. The palette
// service serves these when no model is configured.
func RandomPalette(r *rand.Rand, n int) []string {
	if n <= 0 {
		return nil
	}
	base := r.Float64() * 360
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hue := base + float64(i)*360/float64(n)
		for hue >= 360 {
			hue -= 360
		}
		sat := 0.45 + r.Float64()*0.3
		light := 0.45 + r.Float64()*0.25
		out = append(out, colorful.Hsl(hue, sat, light).Hex())
	}
	return out
}

// ContrastText picks black or white for text drawn over the given
// background color.
func ContrastText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	_, _, l := c.Hsl()
	if l < 0.5 {
		return "#ffffff"
	}
	return "#000000"
}
