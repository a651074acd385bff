package aggregates

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"colorboard/domain/config"
	"colorboard/domain/core/entities"
	"colorboard/domain/core/valueobjects"
	"colorboard/domain/events"
	pkgerrors "colorboard/pkg/errors"
)

// BoardID represents a unique board identifier
type BoardID string

// NewBoardID creates a new random BoardID
func NewBoardID() BoardID {
	return BoardID(uuid.New().String())
}

// String returns the string representation
func (id BoardID) String() string {
	return string(id)
}

// AlignDirection names one of the six alignment operations
type AlignDirection string

const (
	AlignLeft   AlignDirection = "left"
	AlignCenter AlignDirection = "center"
	AlignRight  AlignDirection = "right"
	AlignTop    AlignDirection = "top"
	AlignMiddle AlignDirection = "middle"
	AlignBottom AlignDirection = "bottom"
)

// ParseAlignDirection validates an alignment direction
func ParseAlignDirection(s string) (AlignDirection, error) {
	switch AlignDirection(s) {
	case AlignLeft, AlignCenter, AlignRight, AlignTop, AlignMiddle, AlignBottom:
		return AlignDirection(s), nil
	}
	return "", pkgerrors.NewValidationError("unknown align direction: " + s)
}

// MoodBoard is the aggregate root for the editor. It owns the item
// collection and is the single place where the geometric rules live: grid
// snapping, canvas clamping, the minimum-size floor, and z-ordering.
//
// Mutations with a well-formed target are total; a missing item id is a
// silent no-op. The tolerant policy keeps the editor responsive — a stale
// gesture against a deleted item must not fail the session.
type MoodBoard struct {
	id        BoardID
	name      string
	items     map[valueobjects.ItemID]*entities.Item
	order     []valueobjects.ItemID // insertion order, breaks zIndex ties
	cfg       *config.DomainConfig
	createdAt time.Time
	updatedAt time.Time

	events []events.DomainEvent
}

// NewMoodBoard creates an empty board
func NewMoodBoard(name string, cfg *config.DomainConfig) *MoodBoard {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if name == "" {
		name = cfg.DefaultBoardName
	}
	now := time.Now()
	return &MoodBoard{
		id:        NewBoardID(),
		name:      name,
		items:     make(map[valueobjects.ItemID]*entities.Item),
		cfg:       cfg,
		createdAt: now,
		updatedAt: now,
	}
}

// ID returns the board's unique identifier
func (b *MoodBoard) ID() BoardID { return b.id }

// Name returns the board's name
func (b *MoodBoard) Name() string { return b.name }

// CreatedAt returns when the board was created
func (b *MoodBoard) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns when the board last changed
func (b *MoodBoard) UpdatedAt() time.Time { return b.updatedAt }

// Config returns the board's domain configuration
func (b *MoodBoard) Config() *config.DomainConfig { return b.cfg }

// Len returns the number of items on the board
func (b *MoodBoard) Len() int { return len(b.items) }

// Item returns the item with the given id, nil when absent
func (b *MoodBoard) Item(id valueobjects.ItemID) *entities.Item {
	return b.items[id]
}

// ItemsByZ returns all items ordered bottom to top: ascending zIndex,
// insertion order breaking ties.
func (b *MoodBoard) ItemsByZ() []*entities.Item {
	out := make([]*entities.Item, 0, len(b.items))
	for _, id := range b.order {
		out = append(out, b.items[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex() < out[j].ZIndex()
	})
	return out
}

// Rename changes the board's name
func (b *MoodBoard) Rename(name string) error {
	if name == "" {
		return pkgerrors.NewValidationError("board name cannot be empty")
	}
	b.name = name
	b.touch()
	b.addEvent(events.NewBoardRenamed(b.id.String(), name, b.updatedAt))
	return nil
}

// CreateSpec carries the variant payload and optional geometry overrides
// for a new item.
type CreateSpec struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64

	Color *entities.ColorAttrs
	Image *entities.ImageAttrs
	Text  *entities.TextAttrs
}

// CreateItem places a new item on the board. Unset geometry falls back to
// the configured defaults, and the item receives a zIndex strictly above
// every existing item so it renders on top.
func (b *MoodBoard) CreateItem(kind entities.Kind, spec CreateSpec) (valueobjects.ItemID, error) {
	if len(b.items) >= b.cfg.MaxItemsPerBoard {
		return valueobjects.ItemID{}, pkgerrors.NewValidationError("board is full")
	}

	rect := valueobjects.NewRect(
		b.cfg.DefaultItemX, b.cfg.DefaultItemY,
		b.cfg.DefaultItemWidth, b.cfg.DefaultItemHeight,
	)
	if spec.X != nil {
		rect.X = *spec.X
	}
	if spec.Y != nil {
		rect.Y = *spec.Y
	}
	if spec.Width != nil {
		rect.Width = *spec.Width
	}
	if spec.Height != nil {
		rect.Height = *spec.Height
	}
	if rect.Width < b.cfg.MinItemSize {
		rect.Width = b.cfg.MinItemSize
	}
	if rect.Height < b.cfg.MinItemSize {
		rect.Height = b.cfg.MinItemSize
	}

	z := b.nextZIndex()

	var item *entities.Item
	var err error
	switch kind {
	case entities.KindColor:
		if spec.Color == nil {
			return valueobjects.ItemID{}, pkgerrors.NewValidationError("color payload required")
		}
		item, err = entities.NewColorItem(rect, z, *spec.Color, b.cfg)
	case entities.KindImage:
		if spec.Image == nil {
			return valueobjects.ItemID{}, pkgerrors.NewValidationError("image payload required")
		}
		item, err = entities.NewImageItem(rect, z, *spec.Image, b.cfg)
	case entities.KindText:
		if spec.Text == nil {
			return valueobjects.ItemID{}, pkgerrors.NewValidationError("text payload required")
		}
		item, err = entities.NewTextItem(rect, z, *spec.Text, b.cfg)
	default:
		return valueobjects.ItemID{}, pkgerrors.NewValidationError("unknown item type")
	}
	if err != nil {
		return valueobjects.ItemID{}, err
	}
	if spec.Rotation != nil {
		item.SetRotation(*spec.Rotation)
	}

	b.items[item.ID()] = item
	b.order = append(b.order, item.ID())
	b.touch()
	b.addEvent(events.NewItemCreated(b.id.String(), item.ID().String(), string(kind), b.updatedAt))
	return item.ID(), nil
}

// UpdateItem shallow-merges the patch into the item. Missing id is a
// no-op. Geometry in the patch is not re-validated; the explicit move and
// resize paths are the validated ones.
func (b *MoodBoard) UpdateItem(id valueobjects.ItemID, patch entities.Patch) {
	item, ok := b.items[id]
	if !ok {
		return
	}
	item.Apply(patch)
	b.touch()
	b.addEvent(events.NewItemUpdated(b.id.String(), id.String(), b.updatedAt))
}

// MoveItem moves an item to the target position: both coordinates snap to
// the nearest grid multiple, then clamp to the canvas. This is the single
// source of truth for drag-move semantics.
func (b *MoodBoard) MoveItem(id valueobjects.ItemID, x, y float64) {
	item, ok := b.items[id]
	if !ok {
		return
	}
	rect := item.Rect()
	rect.X = x
	rect.Y = y
	rect = rect.SnapPosition(b.cfg.GridSize).ClampPosition(b.cfg.CanvasWidth, b.cfg.CanvasHeight)
	item.SetRect(rect)
	b.touch()
	b.addEvent(events.NewItemMoved(b.id.String(), id.String(), rect.X, rect.Y, b.updatedAt))
}

// MoveGroup applies a raw delta to every item sharing groupID, each clamped
// to the canvas independently. No snapping here: group moves deliberately
// keep the members' relative offsets, so a snap on each member would shear
// the group. An item pinned by a canvas edge may fall out of formation;
// that matches the single-item clamp rule and is accepted.
func (b *MoodBoard) MoveGroup(groupID valueobjects.GroupID, dx, dy float64) {
	if groupID.IsZero() {
		return
	}
	moved := false
	for _, id := range b.order {
		item := b.items[id]
		if item.GroupID() != groupID {
			continue
		}
		rect := item.Rect().Translate(dx, dy).ClampPosition(b.cfg.CanvasWidth, b.cfg.CanvasHeight)
		item.SetRect(rect)
		b.addEvent(events.NewItemMoved(b.id.String(), id.String(), rect.X, rect.Y, time.Now()))
		moved = true
	}
	if moved {
		b.touch()
	}
}

// ResizeItem sets the item's bounding box after snapping all four values to
// the grid, trimming edges that overflow the canvas, and flooring the size
// at the minimum. See Rect.NormalizeResize for the exact rules.
func (b *MoodBoard) ResizeItem(id valueobjects.ItemID, target valueobjects.Rect) {
	item, ok := b.items[id]
	if !ok {
		return
	}
	rect := target.NormalizeResize(b.cfg.GridSize, b.cfg.CanvasWidth, b.cfg.CanvasHeight, b.cfg.MinItemSize)
	item.SetRect(rect)
	b.touch()
	b.addEvent(events.NewItemResized(b.id.String(), id.String(), rect.Width, rect.Height, b.updatedAt))
}

// RotateItem stores the rotation verbatim; no normalization to [0,360)
func (b *MoodBoard) RotateItem(id valueobjects.ItemID, degrees float64) {
	item, ok := b.items[id]
	if !ok {
		return
	}
	item.SetRotation(degrees)
	b.touch()
	b.addEvent(events.NewItemUpdated(b.id.String(), id.String(), b.updatedAt))
}

// BringToFront gives the item a zIndex strictly above all others
func (b *MoodBoard) BringToFront(id valueobjects.ItemID) {
	item, ok := b.items[id]
	if !ok {
		return
	}
	item.SetZIndex(b.nextZIndex())
	b.touch()
	b.addEvent(events.NewItemUpdated(b.id.String(), id.String(), b.updatedAt))
}

// DeleteItem removes the item; missing id is a no-op. Callers also prune
// the id from any selection they hold.
func (b *MoodBoard) DeleteItem(id valueobjects.ItemID) {
	if _, ok := b.items[id]; !ok {
		return
	}
	delete(b.items, id)
	for i, oid := range b.order {
		if oid.Equals(id) {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.touch()
	b.addEvent(events.NewItemDeleted(b.id.String(), id.String(), b.updatedAt))
}

// AlignItems repositions the selected items against their shared bounding
// box. Requires at least two resolvable ids; otherwise a no-op. Each new
// position snaps to the grid and clamps to the canvas.
func (b *MoodBoard) AlignItems(ids []valueobjects.ItemID, dir AlignDirection) {
	selected := make([]*entities.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := b.items[id]; ok {
			selected = append(selected, item)
		}
	}
	if len(selected) < 2 {
		return
	}

	first := selected[0].Rect()
	minX, maxX := first.X, first.Right()
	minY, maxY := first.Y, first.Bottom()
	for _, item := range selected[1:] {
		r := item.Rect()
		if r.X < minX {
			minX = r.X
		}
		if r.Right() > maxX {
			maxX = r.Right()
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Bottom() > maxY {
			maxY = r.Bottom()
		}
	}
	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2

	for _, item := range selected {
		rect := item.Rect()
		switch dir {
		case AlignLeft:
			rect.X = minX
		case AlignRight:
			rect.X = maxX - rect.Width
		case AlignCenter:
			rect.X = centerX - rect.Width/2
		case AlignTop:
			rect.Y = minY
		case AlignBottom:
			rect.Y = maxY - rect.Height
		case AlignMiddle:
			rect.Y = centerY - rect.Height/2
		}
		rect = rect.SnapPosition(b.cfg.GridSize).ClampPosition(b.cfg.CanvasWidth, b.cfg.CanvasHeight)
		item.SetRect(rect)
		b.addEvent(events.NewItemMoved(b.id.String(), item.ID().String(), rect.X, rect.Y, time.Now()))
	}
	b.touch()
}

// GroupItems assigns a fresh shared group id to the items. Requires at
// least two resolvable ids; otherwise a no-op and the zero GroupID is
// returned.
func (b *MoodBoard) GroupItems(ids []valueobjects.ItemID) valueobjects.GroupID {
	selected := make([]*entities.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := b.items[id]; ok {
			selected = append(selected, item)
		}
	}
	if len(selected) < 2 {
		return ""
	}
	groupID := valueobjects.NewGroupID()
	memberIDs := make([]string, 0, len(selected))
	for _, item := range selected {
		item.SetGroup(groupID)
		memberIDs = append(memberIDs, item.ID().String())
	}
	b.touch()
	b.addEvent(events.NewItemsGrouped(b.id.String(), groupID.String(), memberIDs, b.updatedAt))
	return groupID
}

// UngroupItems clears the group id on the items. Requires at least one
// resolvable id; otherwise a no-op.
func (b *MoodBoard) UngroupItems(ids []valueobjects.ItemID) {
	cleared := make([]string, 0, len(ids))
	for _, id := range ids {
		if item, ok := b.items[id]; ok {
			item.ClearGroup()
			cleared = append(cleared, id.String())
		}
	}
	if len(cleared) == 0 {
		return
	}
	b.touch()
	b.addEvent(events.NewItemsGrouped(b.id.String(), "", cleared, b.updatedAt))
}

// GroupMembers returns the ids of all items sharing groupID
func (b *MoodBoard) GroupMembers(groupID valueobjects.GroupID) []valueobjects.ItemID {
	var out []valueobjects.ItemID
	for _, id := range b.order {
		if b.items[id].GroupID() == groupID {
			out = append(out, id)
		}
	}
	return out
}

// Validate ensures board invariants hold
func (b *MoodBoard) Validate() error {
	if len(b.items) != len(b.order) {
		return pkgerrors.NewInternalError("item count mismatch")
	}
	for _, id := range b.order {
		item, ok := b.items[id]
		if !ok {
			return pkgerrors.NewInternalError("order references missing item")
		}
		r := item.Rect()
		if r.Width < b.cfg.MinItemSize || r.Height < b.cfg.MinItemSize {
			return pkgerrors.NewInternalError("item below minimum size: " + id.String())
		}
	}
	return nil
}

// Clone returns a deep copy of the board. Uncommitted events are not
// carried over: a clone is a snapshot for history, not a live aggregate
// mid-transaction.
func (b *MoodBoard) Clone() *MoodBoard {
	c := &MoodBoard{
		id:        b.id,
		name:      b.name,
		items:     make(map[valueobjects.ItemID]*entities.Item, len(b.items)),
		order:     append([]valueobjects.ItemID(nil), b.order...),
		cfg:       b.cfg,
		createdAt: b.createdAt,
		updatedAt: b.updatedAt,
	}
	for id, item := range b.items {
		c.items[id] = item.Clone()
	}
	return c
}

// GetUncommittedEvents returns all uncommitted domain events
func (b *MoodBoard) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(b.events))
	copy(out, b.events)
	return out
}

// MarkEventsAsCommitted clears the uncommitted events
func (b *MoodBoard) MarkEventsAsCommitted() {
	b.events = nil
}

// Snapshot is the serialized form of a board.
type Snapshot struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Items     []entities.Snapshot `json:"items"`
}

// Snapshot converts the board to its serialized form, items bottom to top
func (b *MoodBoard) Snapshot() Snapshot {
	items := b.ItemsByZ()
	s := Snapshot{
		ID:        b.id.String(),
		Name:      b.name,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
		Items:     make([]entities.Snapshot, 0, len(items)),
	}
	for _, item := range items {
		s.Items = append(s.Items, item.Snapshot())
	}
	return s
}

// ReconstructBoard rebuilds a board from a stored snapshot
func ReconstructBoard(s Snapshot, cfg *config.DomainConfig) (*MoodBoard, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if s.ID == "" {
		return nil, pkgerrors.NewValidationError("board snapshot missing id")
	}
	b := &MoodBoard{
		id:        BoardID(s.ID),
		name:      s.Name,
		items:     make(map[valueobjects.ItemID]*entities.Item, len(s.Items)),
		cfg:       cfg,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
	for _, is := range s.Items {
		item, err := entities.ReconstructItem(is)
		if err != nil {
			return nil, err
		}
		if _, exists := b.items[item.ID()]; exists {
			return nil, pkgerrors.NewValidationError("duplicate item id: " + is.ID)
		}
		b.items[item.ID()] = item
		b.order = append(b.order, item.ID())
	}
	return b, nil
}

// NewStarterBoard builds the board a fresh session starts from: one swatch,
// one image, one note, stacked 1..3.
func NewStarterBoard(cfg *config.DomainConfig) *MoodBoard {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	now := time.Now()
	snapshot := Snapshot{
		ID:        uuid.New().String(),
		Name:      cfg.DefaultBoardName,
		CreatedAt: now,
		UpdatedAt: now,
		Items: []entities.Snapshot{
			{
				ID: "starter-color", Type: string(entities.KindColor),
				X: 80, Y: 80, Width: 220, Height: 160, ZIndex: 1,
				ColorHex: "#ff6f61", Label: "Coral", Radius: cfg.DefaultCornerRadius,
			},
			{
				ID: "starter-image", Type: string(entities.KindImage),
				X: 340, Y: 80, Width: 220, Height: 160, ZIndex: 2,
				Src: "https://picsum.photos/seed/moodboard/440/320",
				Alt: "Inspiration",
			},
			{
				ID: "starter-text", Type: string(entities.KindText),
				X: 600, Y: 80, Width: 220, Height: 160, ZIndex: 3,
				Content: "Drop colors, images and notes here.",
				Align:   string(entities.AlignTextLeft),
			},
		},
	}
	b, err := ReconstructBoard(snapshot, cfg)
	if err != nil {
		// The starter snapshot is static and always valid.
		panic(err)
	}
	return b
}

// Private helpers

func (b *MoodBoard) nextZIndex() int {
	max := 0
	for _, item := range b.items {
		if item.ZIndex() > max {
			max = item.ZIndex()
		}
	}
	return max + 1
}

func (b *MoodBoard) touch() {
	b.updatedAt = time.Now()
}

func (b *MoodBoard) addEvent(event events.DomainEvent) {
	b.events = append(b.events, event)
}
