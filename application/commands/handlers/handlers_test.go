package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"colorboard/application/commands"
	"colorboard/application/services"
	"colorboard/domain/core/entities"
	"colorboard/infrastructure/persistence/memory"
)

const testClient = "test-client"

func newSessions(t *testing.T) *services.SessionService {
	t.Helper()
	return services.NewSessionService(memory.NewBoardStore(), nil, nil, zap.NewNop())
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

// createSwatch runs a CreateItemCommand and returns the new item's id.
func createSwatch(t *testing.T, sessions *services.SessionService, x, y float64) string {
	t.Helper()
	var created string
	cmd := commands.CreateItemCommand{
		ClientID:  testClient,
		Type:      "color",
		X:         floatPtr(x),
		Y:         floatPtr(y),
		Width:     floatPtr(100),
		Height:    floatPtr(100),
		ColorHex:  "#ff6f61",
		CreatedID: &created,
	}
	require.NoError(t, NewCreateItemHandler(sessions, zap.NewNop()).Handle(context.Background(), cmd))
	require.NotEmpty(t, created)
	return created
}

// itemSnapshot looks an item up in the client's current board snapshot,
// nil when absent.
func itemSnapshot(t *testing.T, sessions *services.SessionService, id string) *entities.Snapshot {
	t.Helper()
	snapshot, err := sessions.Snapshot(context.Background(), testClient)
	require.NoError(t, err)
	for i := range snapshot.Items {
		if snapshot.Items[i].ID == id {
			return &snapshot.Items[i]
		}
	}
	return nil
}

func TestCreateItemHandler(t *testing.T) {
	sessions := newSessions(t)
	ctx := context.Background()

	id := createSwatch(t, sessions, 100, 100)
	item := itemSnapshot(t, sessions, id)
	require.NotNil(t, item)
	assert.Equal(t, "color", item.Type)
	assert.Equal(t, "#ff6f61", item.ColorHex)

	// The new item becomes the sole selection.
	selected, err := sessions.Selection(ctx, testClient)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, selected)
}

func TestCreateItemHandler_RejectsBadPayloads(t *testing.T) {
	sessions := newSessions(t)
	handler := NewCreateItemHandler(sessions, zap.NewNop())
	ctx := context.Background()

	err := handler.Handle(ctx, commands.CreateItemCommand{
		ClientID: testClient, Type: "color", ColorHex: "#nothex",
	})
	assert.Error(t, err)

	err = handler.Handle(ctx, commands.CreateItemCommand{
		ClientID: testClient, Type: "image",
	})
	assert.Error(t, err)
}

func TestCreateItemHandler_SanitizesTextContent(t *testing.T) {
	sessions := newSessions(t)
	var created string
	cmd := commands.CreateItemCommand{
		ClientID:  testClient,
		Type:      "text",
		Content:   `<script>alert(1)</script>plain note`,
		CreatedID: &created,
	}
	require.NoError(t, NewCreateItemHandler(sessions, zap.NewNop()).Handle(context.Background(), cmd))

	item := itemSnapshot(t, sessions, created)
	require.NotNil(t, item)
	assert.Equal(t, "plain note", item.Content)
}

func TestUpdateItemHandler(t *testing.T) {
	sessions := newSessions(t)
	id := createSwatch(t, sessions, 100, 100)

	cmd := commands.UpdateItemCommand{
		ClientID: testClient,
		ItemID:   id,
		Label:    strPtr("Coral"),
		ColorHex: strPtr("ABC"),
	}
	require.NoError(t, NewUpdateItemHandler(sessions).Handle(context.Background(), cmd))

	item := itemSnapshot(t, sessions, id)
	assert.Equal(t, "Coral", item.Label)
	assert.Equal(t, "#aabbcc", item.ColorHex)
}

func TestMoveItemHandler_SnapsAndClamps(t *testing.T) {
	sessions := newSessions(t)
	id := createSwatch(t, sessions, 100, 100)

	cmd := commands.MoveItemCommand{ClientID: testClient, ItemID: id, X: 1190, Y: 5}
	require.NoError(t, NewMoveItemHandler(sessions).Handle(context.Background(), cmd))

	item := itemSnapshot(t, sessions, id)
	assert.Equal(t, 1100.0, item.X)
	assert.Equal(t, 0.0, item.Y)
}

func TestResizeItemHandler_AbsoluteBox(t *testing.T) {
	sessions := newSessions(t)
	id := createSwatch(t, sessions, 100, 100)

	cmd := commands.ResizeItemCommand{
		ClientID: testClient, ItemID: id,
		X: floatPtr(15), Y: floatPtr(25), Width: floatPtr(95), Height: floatPtr(105),
	}
	require.NoError(t, NewResizeItemHandler(sessions).Handle(context.Background(), cmd))

	item := itemSnapshot(t, sessions, id)
	assert.Equal(t, 20.0, item.X)
	assert.Equal(t, 20.0, item.Y)
	assert.Equal(t, 100.0, item.Width)
	assert.Equal(t, 100.0, item.Height)
}

func TestResizeItemHandler_HandleDrag(t *testing.T) {
	sessions := newSessions(t)
	id := createSwatch(t, sessions, 200, 200)

	// Drag the north-west handle far past the opposite corner: the item
	// floors at the minimum size with its bottom-right edge fixed.
	cmd := commands.ResizeItemCommand{
		ClientID: testClient, ItemID: id,
		Handle: "nw", DX: 500, DY: 500,
	}
	require.NoError(t, NewResizeItemHandler(sessions).Handle(context.Background(), cmd))

	item := itemSnapshot(t, sessions, id)
	assert.Equal(t, 80.0, item.Width)
	assert.Equal(t, 80.0, item.Height)
	assert.Equal(t, 300.0, item.X+item.Width)
	assert.Equal(t, 300.0, item.Y+item.Height)
}

func TestRotateItemHandler(t *testing.T) {
	sessions := newSessions(t)
	id := createSwatch(t, sessions, 100, 100)
	ctx := context.Background()
	handler := NewRotateItemHandler(sessions)

	require.NoError(t, handler.Handle(ctx, commands.RotateItemCommand{
		ClientID: testClient, ItemID: id, Degrees: floatPtr(725),
	}))
	assert.Equal(t, 725.0, itemSnapshot(t, sessions, id).Rotation)

	require.NoError(t, handler.Handle(ctx, commands.RotateItemCommand{
		ClientID: testClient, ItemID: id, DX: floatPtr(100), DY: floatPtr(0),
	}))
	assert.Equal(t, 90.0, itemSnapshot(t, sessions, id).Rotation)
}

func TestBringToFrontAndDeleteHandlers(t *testing.T) {
	sessions := newSessions(t)
	ctx := context.Background()
	first := createSwatch(t, sessions, 100, 100)
	second := createSwatch(t, sessions, 300, 100)

	require.NoError(t, NewBringToFrontHandler(sessions).Handle(ctx, commands.BringToFrontCommand{
		ClientID: testClient, ItemID: first,
	}))
	assert.Greater(t, itemSnapshot(t, sessions, first).ZIndex, itemSnapshot(t, sessions, second).ZIndex)

	require.NoError(t, NewDeleteItemHandler(sessions).Handle(ctx, commands.DeleteItemCommand{
		ClientID: testClient, ItemID: first,
	}))
	assert.Nil(t, itemSnapshot(t, sessions, first))

	// Deleting the same id again stays a no-op.
	require.NoError(t, NewDeleteItemHandler(sessions).Handle(ctx, commands.DeleteItemCommand{
		ClientID: testClient, ItemID: first,
	}))
}

func TestGroupHandlers(t *testing.T) {
	sessions := newSessions(t)
	ctx := context.Background()
	first := createSwatch(t, sessions, 100, 100)
	second := createSwatch(t, sessions, 300, 100)

	var groupID string
	require.NoError(t, NewGroupItemsHandler(sessions).Handle(ctx, commands.GroupItemsCommand{
		ClientID: testClient, ItemIDs: []string{first, second}, CreatedGroupID: &groupID,
	}))
	require.NotEmpty(t, groupID)
	assert.Equal(t, groupID, itemSnapshot(t, sessions, first).GroupID)

	// Raw delta, no snapping.
	require.NoError(t, NewMoveGroupHandler(sessions).Handle(ctx, commands.MoveGroupCommand{
		ClientID: testClient, GroupID: groupID, DX: 7, DY: 13,
	}))
	assert.Equal(t, 107.0, itemSnapshot(t, sessions, first).X)
	assert.Equal(t, 307.0, itemSnapshot(t, sessions, second).X)

	require.NoError(t, NewUngroupItemsHandler(sessions).Handle(ctx, commands.UngroupItemsCommand{
		ClientID: testClient, ItemIDs: []string{first, second},
	}))
	assert.Empty(t, itemSnapshot(t, sessions, first).GroupID)
}

func TestGroupItemsHandler_DegradesToNoOp(t *testing.T) {
	sessions := newSessions(t)
	first := createSwatch(t, sessions, 100, 100)

	var groupID string
	require.NoError(t, NewGroupItemsHandler(sessions).Handle(context.Background(), commands.GroupItemsCommand{
		ClientID: testClient, ItemIDs: []string{first, "color-missing"}, CreatedGroupID: &groupID,
	}))
	assert.Empty(t, groupID)
}

func TestMoveGroupHandler_RequiresGroupID(t *testing.T) {
	sessions := newSessions(t)

	err := NewMoveGroupHandler(sessions).Handle(context.Background(), commands.MoveGroupCommand{
		ClientID: testClient, GroupID: "", DX: 10, DY: 10,
	})
	assert.Error(t, err)
}

func TestAlignItemsHandler(t *testing.T) {
	sessions := newSessions(t)
	first := createSwatch(t, sessions, 100, 100)
	second := createSwatch(t, sessions, 300, 200)

	require.NoError(t, NewAlignItemsHandler(sessions).Handle(context.Background(), commands.AlignItemsCommand{
		ClientID: testClient, ItemIDs: []string{first, second}, Direction: "left",
	}))

	assert.Equal(t, 100.0, itemSnapshot(t, sessions, first).X)
	assert.Equal(t, 100.0, itemSnapshot(t, sessions, second).X)
}

func TestAlignItemsHandler_RejectsUnknownDirection(t *testing.T) {
	sessions := newSessions(t)
	first := createSwatch(t, sessions, 100, 100)

	err := NewAlignItemsHandler(sessions).Handle(context.Background(), commands.AlignItemsCommand{
		ClientID: testClient, ItemIDs: []string{first}, Direction: "diagonal",
	})
	assert.Error(t, err)
}

func TestBoardHandlers_RenameUndoRedoReset(t *testing.T) {
	sessions := newSessions(t)
	ctx := context.Background()

	require.NoError(t, NewRenameBoardHandler(sessions).Handle(ctx, commands.RenameBoardCommand{
		ClientID: testClient, Name: "Autumn Moods",
	}))
	snapshot, err := sessions.Snapshot(ctx, testClient)
	require.NoError(t, err)
	assert.Equal(t, "Autumn Moods", snapshot.Name)

	require.NoError(t, NewUndoHandler(sessions).Handle(ctx, commands.UndoCommand{ClientID: testClient}))
	snapshot, _ = sessions.Snapshot(ctx, testClient)
	assert.Equal(t, "My Mood Board", snapshot.Name)

	require.NoError(t, NewRedoHandler(sessions).Handle(ctx, commands.RedoCommand{ClientID: testClient}))
	snapshot, _ = sessions.Snapshot(ctx, testClient)
	assert.Equal(t, "Autumn Moods", snapshot.Name)

	createSwatch(t, sessions, 100, 100)
	require.NoError(t, NewResetBoardHandler(sessions).Handle(ctx, commands.ResetBoardCommand{ClientID: testClient}))
	snapshot, _ = sessions.Snapshot(ctx, testClient)
	assert.Len(t, snapshot.Items, 3)
	assert.Equal(t, "My Mood Board", snapshot.Name)
}
