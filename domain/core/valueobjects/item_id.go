package valueobjects

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ItemID is a value object identifying a board item. The string form is
// "{kind}-{uuid}": the kind prefix lets render sites dispatch without a
// lookup, the uuid part makes ids collision-free even when many items are
// inserted in the same clock tick (template and shape insertion do that).
type ItemID struct {
	value string
}

// NewItemID creates a fresh ItemID for the given item kind
func NewItemID(kind string) ItemID {
	return ItemID{value: kind + "-" + uuid.New().String()}
}

// NewItemIDFromString creates an ItemID from an existing string
func NewItemIDFromString(id string) (ItemID, error) {
	if id == "" {
		return ItemID{}, errors.New("item ID cannot be empty")
	}
	if !strings.Contains(id, "-") {
		return ItemID{}, errors.New("item ID must have a kind prefix")
	}
	return ItemID{value: id}, nil
}

// String returns the string representation of the ItemID
func (id ItemID) String() string {
	return id.value
}

// Kind returns the item-kind prefix of the ID
func (id ItemID) Kind() string {
	if i := strings.Index(id.value, "-"); i > 0 {
		return id.value[:i]
	}
	return ""
}

// Equals checks if two ItemIDs are equal
func (id ItemID) Equals(other ItemID) bool {
	return id.value == other.value
}

// IsZero checks if the ItemID is the zero value
func (id ItemID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ItemID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ItemID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("ItemID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// GroupID identifies a set of items moved together.
type GroupID string

// NewGroupID creates a fresh GroupID
func NewGroupID() GroupID {
	return GroupID("group-" + uuid.New().String())
}

// String returns the string representation
func (g GroupID) String() string {
	return string(g)
}

// IsZero checks if the GroupID is unset
func (g GroupID) IsZero() bool {
	return g == ""
}
