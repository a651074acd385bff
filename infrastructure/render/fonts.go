package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontCache holds parsed fonts and the faces derived from them. Faces are
// built lazily per (weight, size) and never evicted: the set of sizes an
// export uses is tiny and a cached face saves reparsing on every render.
type fontCache struct {
	mu      sync.Mutex
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

var fonts = &fontCache{faces: make(map[faceKey]font.Face)}

// face returns a cached font face for the given weight and size
func (c *fontCache) face(bold bool, size float64) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := faceKey{bold: bold, size: size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	parsed, err := c.parsed(bold)
	if err != nil {
		return nil, err
	}
	f := truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = f
	return f, nil
}

func (c *fontCache) parsed(bold bool) (*truetype.Font, error) {
	if bold {
		if c.bold == nil {
			f, err := truetype.Parse(gobold.TTF)
			if err != nil {
				return nil, err
			}
			c.bold = f
		}
		return c.bold, nil
	}
	if c.regular == nil {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		c.regular = f
	}
	return c.regular, nil
}
