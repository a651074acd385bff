package aggregates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorboard/domain/config"
	"colorboard/domain/core/entities"
	"colorboard/domain/core/valueobjects"
)

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func newTestBoard(t *testing.T) *MoodBoard {
	t.Helper()
	return NewMoodBoard("Test Board", config.DefaultDomainConfig())
}

func mustHex(t *testing.T, s string) valueobjects.ColorHex {
	t.Helper()
	hex, err := valueobjects.NewColorHex(s)
	require.NoError(t, err)
	return hex
}

// createColorAt places a color swatch with explicit geometry.
func createColorAt(t *testing.T, b *MoodBoard, x, y, w, h float64) valueobjects.ItemID {
	t.Helper()
	id, err := b.CreateItem(entities.KindColor, CreateSpec{
		X: floatPtr(x), Y: floatPtr(y), Width: floatPtr(w), Height: floatPtr(h),
		Color: &entities.ColorAttrs{ColorHex: mustHex(t, "#ff6f61")},
	})
	require.NoError(t, err)
	return id
}

func TestMoodBoard_CreateItem_Defaults(t *testing.T) {
	b := newTestBoard(t)
	id, err := b.CreateItem(entities.KindColor, CreateSpec{
		Color: &entities.ColorAttrs{ColorHex: mustHex(t, "#abc")},
	})
	require.NoError(t, err)

	item := b.Item(id)
	require.NotNil(t, item)
	assert.Equal(t, valueobjects.NewRect(80, 80, 220, 160), item.Rect())
	assert.Equal(t, 1, item.ZIndex())
	assert.Equal(t, 0.0, item.Rotation())
	assert.True(t, strings.HasPrefix(id.String(), "color-"))
	assert.Equal(t, "#aabbcc", item.Color().ColorHex.String())
	assert.Equal(t, 8.0, item.Color().Radius)
}

func TestMoodBoard_CreateItem_FloorsTinySizes(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 30, 50)

	rect := b.Item(id).Rect()
	assert.Equal(t, 80.0, rect.Width)
	assert.Equal(t, 80.0, rect.Height)
}

func TestMoodBoard_CreateItem_RequiresVariantPayload(t *testing.T) {
	b := newTestBoard(t)

	_, err := b.CreateItem(entities.KindColor, CreateSpec{})
	assert.Error(t, err)
	_, err = b.CreateItem(entities.KindImage, CreateSpec{})
	assert.Error(t, err)
	_, err = b.CreateItem(entities.KindText, CreateSpec{})
	assert.Error(t, err)
	_, err = b.CreateItem(entities.Kind("sticker"), CreateSpec{})
	assert.Error(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestMoodBoard_CreateItem_NewItemOnTop(t *testing.T) {
	b := NewStarterBoard(nil)
	require.Equal(t, 3, b.Len())

	first := createColorAt(t, b, 100, 100, 100, 100)
	assert.Equal(t, 4, b.Item(first).ZIndex())

	second := createColorAt(t, b, 200, 200, 100, 100)
	assert.Equal(t, 5, b.Item(second).ZIndex())

	ordered := b.ItemsByZ()
	assert.Equal(t, second, ordered[len(ordered)-1].ID())
}

func TestMoodBoard_MoveItem_SnapsThenClamps(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 15, 15, 100, 100)

	// 1190 snaps up to 1200 and then clamps to 1100 so the 100-wide
	// item stays on the canvas; 5 snaps down to 0.
	b.MoveItem(id, 1190, 5)

	rect := b.Item(id).Rect()
	assert.Equal(t, 1100.0, rect.X)
	assert.Equal(t, 0.0, rect.Y)
	assert.Equal(t, 100.0, rect.Width)
	assert.Equal(t, 100.0, rect.Height)
}

func TestMoodBoard_MoveItem_MissingIDIsNoOp(t *testing.T) {
	b := newTestBoard(t)
	createColorAt(t, b, 100, 100, 100, 100)
	b.MarkEventsAsCommitted()
	before := b.UpdatedAt()

	ghost, _ := valueobjects.NewItemIDFromString("color-missing")
	b.MoveItem(ghost, 500, 500)

	assert.Equal(t, before, b.UpdatedAt())
	assert.Empty(t, b.GetUncommittedEvents())
}

func TestMoodBoard_MoveGroup_RawDeltaNoSnap(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 100, 100, 100, 100)
	c := createColorAt(t, b, 300, 100, 100, 100)
	groupID := b.GroupItems([]valueobjects.ItemID{a, c})
	require.False(t, groupID.IsZero())

	// Off-grid delta: members keep their exact relative offsets. A
	// single-item move of the same target would have snapped.
	b.MoveGroup(groupID, 7, 13)

	assert.Equal(t, valueobjects.NewRect(107, 113, 100, 100), b.Item(a).Rect())
	assert.Equal(t, valueobjects.NewRect(307, 113, 100, 100), b.Item(c).Rect())
}

func TestMoodBoard_MoveGroup_ClampsEachMember(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 1000, 100, 100, 100)
	c := createColorAt(t, b, 1100, 100, 100, 100)
	groupID := b.GroupItems([]valueobjects.ItemID{a, c})

	// The right member hits the canvas edge and pins there; the left
	// one keeps moving. The formation shears and that is accepted.
	b.MoveGroup(groupID, 60, 0)

	assert.Equal(t, 1060.0, b.Item(a).Rect().X)
	assert.Equal(t, 1100.0, b.Item(c).Rect().X)
}

func TestMoodBoard_MoveGroup_ZeroGroupIsNoOp(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 100, 100, 100, 100)
	b.MarkEventsAsCommitted()

	b.MoveGroup(valueobjects.GroupID(""), 50, 50)

	assert.Equal(t, 100.0, b.Item(a).Rect().X)
	assert.Empty(t, b.GetUncommittedEvents())
}

func TestMoodBoard_ResizeItem_Normalizes(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 100, 100)

	b.ResizeItem(id, valueobjects.NewRect(15, 25, 95, 105))
	assert.Equal(t, valueobjects.NewRect(20, 20, 100, 100), b.Item(id).Rect())

	// Shrinking below the floor near an edge: minimum size wins over
	// strict containment.
	b.ResizeItem(id, valueobjects.NewRect(1160, 100, 60, 160))
	rect := b.Item(id).Rect()
	assert.Equal(t, 80.0, rect.Width)
	assert.Greater(t, rect.Right(), 1200.0)
}

func TestMoodBoard_RotateItem_StoresVerbatim(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 100, 100)

	b.RotateItem(id, 725)
	assert.Equal(t, 725.0, b.Item(id).Rotation())

	b.RotateItem(id, -45)
	assert.Equal(t, -45.0, b.Item(id).Rotation())
}

func TestMoodBoard_BringToFront(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 100, 100, 100, 100)
	c := createColorAt(t, b, 200, 100, 100, 100)
	require.Less(t, b.Item(a).ZIndex(), b.Item(c).ZIndex())

	b.BringToFront(a)

	assert.Greater(t, b.Item(a).ZIndex(), b.Item(c).ZIndex())
	ordered := b.ItemsByZ()
	assert.Equal(t, a, ordered[len(ordered)-1].ID())
}

func TestMoodBoard_UpdateItem_PatchAndTouch(t *testing.T) {
	b := newTestBoard(t)
	id, err := b.CreateItem(entities.KindText, CreateSpec{
		X: floatPtr(100), Y: floatPtr(100),
		Text: &entities.TextAttrs{Content: "hello"},
	})
	require.NoError(t, err)

	b.UpdateItem(id, entities.Patch{Content: strPtr("goodbye"), Rotation: floatPtr(15)})
	item := b.Item(id)
	assert.Equal(t, "goodbye", item.Text().Content)
	assert.Equal(t, 15.0, item.Rotation())

	// An empty patch against a live id still counts as a change.
	before := b.UpdatedAt()
	b.UpdateItem(id, entities.Patch{})
	assert.False(t, b.UpdatedAt().Before(before))

	// A missing id does not.
	b.MarkEventsAsCommitted()
	stamp := b.UpdatedAt()
	ghost, _ := valueobjects.NewItemIDFromString("text-missing")
	b.UpdateItem(ghost, entities.Patch{Content: strPtr("nope")})
	assert.Equal(t, stamp, b.UpdatedAt())
	assert.Empty(t, b.GetUncommittedEvents())
}

func TestMoodBoard_DeleteItem(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 100, 100, 100, 100)
	c := createColorAt(t, b, 200, 100, 100, 100)

	b.DeleteItem(a)
	assert.Nil(t, b.Item(a))
	assert.Equal(t, 1, b.Len())

	// Deleting again is a tolerant no-op.
	b.MarkEventsAsCommitted()
	b.DeleteItem(a)
	assert.Equal(t, 1, b.Len())
	assert.Empty(t, b.GetUncommittedEvents())
	assert.NotNil(t, b.Item(c))
}

func TestMoodBoard_AlignItems(t *testing.T) {
	t.Run("left aligns to the bounding box edge", func(t *testing.T) {
		b := newTestBoard(t)
		a := createColorAt(t, b, 100, 100, 100, 100)
		c := createColorAt(t, b, 300, 200, 120, 100)

		b.AlignItems([]valueobjects.ItemID{a, c}, AlignLeft)

		assert.Equal(t, 100.0, b.Item(a).Rect().X)
		assert.Equal(t, 100.0, b.Item(c).Rect().X)
		// Vertical positions untouched.
		assert.Equal(t, 100.0, b.Item(a).Rect().Y)
		assert.Equal(t, 200.0, b.Item(c).Rect().Y)
	})

	t.Run("right aligns trailing edges", func(t *testing.T) {
		b := newTestBoard(t)
		a := createColorAt(t, b, 100, 100, 100, 100)
		c := createColorAt(t, b, 300, 200, 120, 100)

		b.AlignItems([]valueobjects.ItemID{a, c}, AlignRight)

		assert.Equal(t, 420.0, b.Item(a).Rect().Right())
		assert.Equal(t, 420.0, b.Item(c).Rect().Right())
	})

	t.Run("fewer than two resolvable ids is a no-op", func(t *testing.T) {
		b := newTestBoard(t)
		a := createColorAt(t, b, 100, 100, 100, 100)
		ghost, _ := valueobjects.NewItemIDFromString("color-missing")
		b.MarkEventsAsCommitted()

		b.AlignItems([]valueobjects.ItemID{a, ghost}, AlignLeft)

		assert.Equal(t, 100.0, b.Item(a).Rect().X)
		assert.Empty(t, b.GetUncommittedEvents())
	})
}

func TestMoodBoard_GroupAndUngroup(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 100, 100, 100, 100)
	c := createColorAt(t, b, 300, 100, 100, 100)

	groupID := b.GroupItems([]valueobjects.ItemID{a, c})
	require.False(t, groupID.IsZero())
	assert.True(t, strings.HasPrefix(groupID.String(), "group-"))
	assert.Equal(t, groupID, b.Item(a).GroupID())
	assert.Equal(t, groupID, b.Item(c).GroupID())
	assert.Len(t, b.GroupMembers(groupID), 2)

	b.UngroupItems([]valueobjects.ItemID{a, c})
	assert.True(t, b.Item(a).GroupID().IsZero())
	assert.True(t, b.Item(c).GroupID().IsZero())
	assert.Empty(t, b.GroupMembers(groupID))
}

func TestMoodBoard_GroupItems_RequiresTwoResolvable(t *testing.T) {
	b := newTestBoard(t)
	a := createColorAt(t, b, 100, 100, 100, 100)
	ghost, _ := valueobjects.NewItemIDFromString("color-missing")

	groupID := b.GroupItems([]valueobjects.ItemID{a, ghost})

	assert.True(t, groupID.IsZero())
	assert.True(t, b.Item(a).GroupID().IsZero())
}

func TestMoodBoard_Rename(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.Rename("Autumn Moods"))
	assert.Equal(t, "Autumn Moods", b.Name())
	assert.Error(t, b.Rename(""))
}

func TestMoodBoard_Clone_Independence(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 100, 100)

	clone := b.Clone()
	// Clones never carry uncommitted events.
	assert.Empty(t, clone.GetUncommittedEvents())

	b.MoveItem(id, 500, 500)
	b.Item(id).Color().Label = "changed"

	assert.Equal(t, 100.0, clone.Item(id).Rect().X)
	assert.Equal(t, "", clone.Item(id).Color().Label)
}

func TestMoodBoard_SnapshotRoundTrip(t *testing.T) {
	b := NewStarterBoard(nil)
	id := createColorAt(t, b, 100, 100, 100, 100)
	b.RotateItem(id, 30)

	snapshot := b.Snapshot()
	require.Len(t, snapshot.Items, 4)
	// Items serialize bottom to top.
	assert.Equal(t, id.String(), snapshot.Items[3].ID)

	restored, err := ReconstructBoard(snapshot, nil)
	require.NoError(t, err)
	assert.Equal(t, b.ID(), restored.ID())
	assert.Equal(t, b.Name(), restored.Name())
	assert.Equal(t, b.Len(), restored.Len())
	assert.Equal(t, 30.0, restored.Item(id).Rotation())
	assert.NoError(t, restored.Validate())
}

func TestReconstructBoard_Rejects(t *testing.T) {
	_, err := ReconstructBoard(Snapshot{}, nil)
	assert.Error(t, err)

	_, err = ReconstructBoard(Snapshot{
		ID: "b1",
		Items: []entities.Snapshot{
			{ID: "sticker-1", Type: "sticker", Width: 100, Height: 100},
		},
	}, nil)
	assert.Error(t, err)

	_, err = ReconstructBoard(Snapshot{
		ID: "b1",
		Items: []entities.Snapshot{
			{ID: "color-1", Type: "color", Width: 100, Height: 100, ColorHex: "#ff0000"},
			{ID: "color-1", Type: "color", Width: 100, Height: 100, ColorHex: "#00ff00"},
		},
	}, nil)
	assert.Error(t, err)
}

func TestNewStarterBoard(t *testing.T) {
	b := NewStarterBoard(nil)
	require.Equal(t, 3, b.Len())

	ordered := b.ItemsByZ()
	assert.Equal(t, entities.KindColor, ordered[0].Kind())
	assert.Equal(t, entities.KindImage, ordered[1].Kind())
	assert.Equal(t, entities.KindText, ordered[2].Kind())
	assert.Equal(t, 1, ordered[0].ZIndex())
	assert.Equal(t, 3, ordered[2].ZIndex())
	assert.NoError(t, b.Validate())
}

func TestMoodBoard_Events(t *testing.T) {
	b := newTestBoard(t)
	id := createColorAt(t, b, 100, 100, 100, 100)
	b.MoveItem(id, 200, 200)

	raised := b.GetUncommittedEvents()
	require.Len(t, raised, 2)
	assert.Equal(t, "board.item_created", raised[0].GetEventType())
	assert.Equal(t, "board.item_moved", raised[1].GetEventType())
	assert.Equal(t, b.ID().String(), raised[0].GetAggregateID())

	b.MarkEventsAsCommitted()
	assert.Empty(t, b.GetUncommittedEvents())
}
