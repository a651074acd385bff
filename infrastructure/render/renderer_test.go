package render

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorboard/domain/config"
	"colorboard/domain/core/aggregates"
)

func TestRenderer_RenderPNG(t *testing.T) {
	renderer := NewRenderer(config.DefaultDomainConfig(), nil)
	board := aggregates.NewStarterBoard(nil)

	data, err := renderer.RenderPNG(context.Background(), board.Snapshot())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 1200, bounds.Dx())
	assert.Equal(t, 800, bounds.Dy())
}

func TestRenderer_RenderPNG_EmptyBoard(t *testing.T) {
	renderer := NewRenderer(nil, nil)

	data, err := renderer.RenderPNG(context.Background(), aggregates.Snapshot{ID: "b1"})
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderer_RenderPNG_CanceledContext(t *testing.T) {
	renderer := NewRenderer(nil, nil)
	board := aggregates.NewStarterBoard(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := renderer.RenderPNG(ctx, board.Snapshot())
	assert.Error(t, err)
}

func TestRenderer_RenderPNG_RotatedAndDecoratedItems(t *testing.T) {
	renderer := NewRenderer(nil, nil)
	board := aggregates.NewStarterBoard(nil)
	snapshot := board.Snapshot()

	snapshot.Items[0].Rotation = 30
	snapshot.Items[0].Label = "Coral"
	snapshot.Items[0].BorderColor = "#333333"
	snapshot.Items[2].Align = "center"
	snapshot.Items[2].BgTransparent = true

	data, err := renderer.RenderPNG(context.Background(), snapshot)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
