package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorboard/domain/core/aggregates"
	"colorboard/domain/core/entities"
	"colorboard/pkg/utils"
)

func newTestStore(t *testing.T) *BoardStore {
	t.Helper()
	store, err := NewBoardStore(filepath.Join(t.TempDir(), "boards.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testSnapshot() aggregates.Snapshot {
	return aggregates.Snapshot{
		ID:   "b1",
		Name: "Test Board",
		Items: []entities.Snapshot{
			{ID: "color-1", Type: "color", X: 80, Y: 80, Width: 220, Height: 160, ZIndex: 1, ColorHex: "#ff6f61"},
			{ID: "text-1", Type: "text", X: 340, Y: 80, Width: 220, Height: 160, ZIndex: 2, Content: "note"},
		},
	}
}

func TestBoardStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)

	snapshot, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestBoardStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "local", testSnapshot()))

	loaded, err := store.Load(ctx, "local")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "b1", loaded.ID)
	assert.Equal(t, "Test Board", loaded.Name)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "#ff6f61", loaded.Items[0].ColorHex)

	var updatedAt string
	require.NoError(t, store.db.GetContext(ctx, &updatedAt,
		`SELECT updated_at FROM boards WHERE client_id = ?`, "local"))
	_, err = utils.ParseRFC3339(updatedAt)
	assert.NoError(t, err)
}

func TestBoardStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "local", testSnapshot()))

	updated := testSnapshot()
	updated.Name = "Renamed"
	updated.Items = updated.Items[:1]
	require.NoError(t, store.Save(ctx, "local", updated))

	loaded, err := store.Load(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Name)
	assert.Len(t, loaded.Items, 1)
}

func TestBoardStore_ClientsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", testSnapshot()))

	loaded, err := store.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestBoardStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "local", testSnapshot()))
	require.NoError(t, store.Delete(ctx, "local"))

	loaded, err := store.Load(ctx, "local")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an absent slot is fine.
	assert.NoError(t, store.Delete(ctx, "local"))
}
