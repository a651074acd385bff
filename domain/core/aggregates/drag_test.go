package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorboard/domain/core/valueobjects"
)

func TestMoodBoard_BeginMove_MissingID(t *testing.T) {
	b := newTestBoard(t)
	ghost, _ := valueobjects.NewItemIDFromString("color-missing")

	_, ok := b.BeginMove(ghost)
	assert.False(t, ok)
	_, ok = b.BeginResize(ghost, valueobjects.HandleSE)
	assert.False(t, ok)
}

func TestDragSession_ContinueMove_NoAccumulatedRounding(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 100, 100)

	drag, ok := b.BeginMove(id)
	require.True(t, ok)

	// Each continue recomputes from the start snapshot, so a string
	// of off-grid deltas lands exactly where the final one points.
	drag.ContinueMove(b, 7, 7)
	drag.ContinueMove(b, 14, 14)
	drag.ContinueMove(b, 33, 33)

	rect := b.Item(id).Rect()
	assert.Equal(t, 140.0, rect.X)
	assert.Equal(t, 140.0, rect.Y)
}

func TestDragSession_ContinueResize_NWShrinkPinsOpposite(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 200, 200, 200, 200)

	drag, ok := b.BeginResize(id, valueobjects.HandleNW)
	require.True(t, ok)

	drag.ContinueResize(b, 500, 500)

	rect := b.Item(id).Rect()
	assert.Equal(t, 80.0, rect.Width)
	assert.Equal(t, 80.0, rect.Height)
	assert.Equal(t, 400.0, rect.Right())
	assert.Equal(t, 400.0, rect.Bottom())
}

func TestDragSession_ContinueResize_EastGrowsOnGrid(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 200, 200, 200, 200)

	drag, _ := b.BeginResize(id, valueobjects.HandleE)
	drag.ContinueResize(b, 47, 0)

	// 247 snaps to 240.
	assert.Equal(t, 240.0, b.Item(id).Rect().Width)
	assert.Equal(t, 200.0, b.Item(id).Rect().X)
}

func TestDragSession_ContinueRotate(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 200, 200, 200, 200)

	drag, _ := b.BeginMove(id)
	drag.ContinueRotate(b, 100, 0)
	assert.Equal(t, 90.0, b.Item(id).Rotation())

	drag.ContinueRotate(b, 0, -100)
	assert.Equal(t, 0.0, b.Item(id).Rotation())
}

func TestDragSession_Accessors(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 100, 100)

	drag, _ := b.BeginMove(id)
	assert.True(t, drag.ItemID().Equals(id))
	assert.Equal(t, valueobjects.NewRect(100, 100, 100, 100), drag.Start())
}
