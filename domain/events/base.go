package events

import "time"

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

func newBase(boardID, eventType string, ts time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: boardID,
		EventType:   eventType,
		Timestamp:   ts,
		Version:     1,
	}
}

// Board events

// ItemCreated is raised when a new item is placed on the board
type ItemCreated struct {
	BaseEvent
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
}

// NewItemCreated creates an ItemCreated event
func NewItemCreated(boardID, itemID, itemType string, ts time.Time) ItemCreated {
	return ItemCreated{
		BaseEvent: newBase(boardID, "board.item_created", ts),
		ItemID:    itemID,
		ItemType:  itemType,
	}
}

// ItemUpdated is raised when an item's attributes are patched
type ItemUpdated struct {
	BaseEvent
	ItemID string `json:"item_id"`
}

// NewItemUpdated creates an ItemUpdated event
func NewItemUpdated(boardID, itemID string, ts time.Time) ItemUpdated {
	return ItemUpdated{
		BaseEvent: newBase(boardID, "board.item_updated", ts),
		ItemID:    itemID,
	}
}

// ItemMoved is raised when an item or group changes position
type ItemMoved struct {
	BaseEvent
	ItemID string  `json:"item_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// NewItemMoved creates an ItemMoved event
func NewItemMoved(boardID, itemID string, x, y float64, ts time.Time) ItemMoved {
	return ItemMoved{
		BaseEvent: newBase(boardID, "board.item_moved", ts),
		ItemID:    itemID,
		X:         x,
		Y:         y,
	}
}

// ItemResized is raised when an item's bounding box changes size
type ItemResized struct {
	BaseEvent
	ItemID string  `json:"item_id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewItemResized creates an ItemResized event
func NewItemResized(boardID, itemID string, width, height float64, ts time.Time) ItemResized {
	return ItemResized{
		BaseEvent: newBase(boardID, "board.item_resized", ts),
		ItemID:    itemID,
		Width:     width,
		Height:    height,
	}
}

// ItemDeleted is raised when an item is removed from the board
type ItemDeleted struct {
	BaseEvent
	ItemID string `json:"item_id"`
}

// NewItemDeleted creates an ItemDeleted event
func NewItemDeleted(boardID, itemID string, ts time.Time) ItemDeleted {
	return ItemDeleted{
		BaseEvent: newBase(boardID, "board.item_deleted", ts),
		ItemID:    itemID,
	}
}

// ItemsGrouped is raised when items are grouped or ungrouped
type ItemsGrouped struct {
	BaseEvent
	GroupID string   `json:"group_id,omitempty"`
	ItemIDs []string `json:"item_ids"`
}

// NewItemsGrouped creates an ItemsGrouped event; groupID is empty on ungroup
func NewItemsGrouped(boardID, groupID string, itemIDs []string, ts time.Time) ItemsGrouped {
	return ItemsGrouped{
		BaseEvent: newBase(boardID, "board.items_grouped", ts),
		GroupID:   groupID,
		ItemIDs:   itemIDs,
	}
}

// BoardRenamed is raised when the board name changes
type BoardRenamed struct {
	BaseEvent
	Name string `json:"name"`
}

// NewBoardRenamed creates a BoardRenamed event
func NewBoardRenamed(boardID, name string, ts time.Time) BoardRenamed {
	return BoardRenamed{
		BaseEvent: newBase(boardID, "board.renamed", ts),
		Name:      name,
	}
}
