package colors

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF6F61", "#ff6f61"},
		{"ff6f61", "#ff6f61"},
		{"#abc", "#aabbcc"},
		{"ABC", "#aabbcc"},
		{" #123456 ", "#123456"},
	}
	for _, tt := range tests {
		got, err := NormalizeHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "#zzz", "#12345", "red"} {
		_, err := NormalizeHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestNormalizePalette(t *testing.T) {
	out, err := NormalizePalette([]string{"#ABC", "112233"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#aabbcc", "#112233"}, out)

	// One bad entry invalidates the whole palette.
	_, err = NormalizePalette([]string{"#aabbcc", "nope"})
	assert.Error(t, err)

	_, err = NormalizePalette(nil)
	assert.Error(t, err)
}

func TestRandomPalette(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	out := RandomPalette(r, 5)
	require.Len(t, out, 5)
	for _, hex := range out {
		normalized, err := NormalizeHex(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, normalized)
	}

	assert.Nil(t, RandomPalette(r, 0))
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, "#ffffff", ContrastText("#000000"))
	assert.Equal(t, "#ffffff", ContrastText("#1e3a8a"))
	assert.Equal(t, "#000000", ContrastText("#ffffff"))
	assert.Equal(t, "#000000", ContrastText("#fde047"))
	// Unparseable input defaults to black text.
	assert.Equal(t, "#000000", ContrastText("garbage"))
}
