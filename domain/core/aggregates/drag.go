package aggregates

import (
	"colorboard/domain/core/valueobjects"
)

// DragSession models one pointer gesture as a begin/continue/end triplet.
// Begin captures the item's starting geometry; every continue recomputes
// the target from that snapshot and the total pointer delta, so grid
// rounding never accumulates across a drag. End simply discards the
// session.
type DragSession struct {
	itemID valueobjects.ItemID
	start  valueobjects.Rect
	handle valueobjects.Handle
}

// BeginMove starts a move gesture on the item; false when the id is absent
func (b *MoodBoard) BeginMove(id valueobjects.ItemID) (*DragSession, bool) {
	item := b.Item(id)
	if item == nil {
		return nil, false
	}
	return &DragSession{itemID: id, start: item.Rect()}, true
}

// BeginResize starts a resize gesture from one of the eight handles
func (b *MoodBoard) BeginResize(id valueobjects.ItemID, handle valueobjects.Handle) (*DragSession, bool) {
	item := b.Item(id)
	if item == nil {
		return nil, false
	}
	return &DragSession{itemID: id, start: item.Rect(), handle: handle}, true
}

// ContinueMove applies the current pointer delta against the start
// snapshot and moves the item through the normal snap-and-clamp path.
func (s *DragSession) ContinueMove(b *MoodBoard, dx, dy float64) {
	b.MoveItem(s.itemID, s.start.X+dx, s.start.Y+dy)
}

// ContinueResize recomputes the target rect from the start snapshot, the
// handle, and the pointer delta, then resizes through the normal path.
func (s *DragSession) ContinueResize(b *MoodBoard, dx, dy float64) {
	target := s.handle.ApplyDrag(s.start, dx, dy, b.Config().MinItemSize)
	b.ResizeItem(s.itemID, target)
}

// ContinueRotate sets the rotation from the pointer's angle around the
// item's center.
func (s *DragSession) ContinueRotate(b *MoodBoard, dx, dy float64) {
	b.RotateItem(s.itemID, valueobjects.RotationFromDrag(dx, dy))
}

// ItemID returns the id of the item under the gesture
func (s *DragSession) ItemID() valueobjects.ItemID { return s.itemID }

// Start returns the geometry captured when the gesture began
func (s *DragSession) Start() valueobjects.Rect { return s.start }
