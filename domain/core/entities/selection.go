package entities

import "colorboard/domain/core/valueobjects"

// Selection is the set of currently selected item ids. It is session state:
// it lives beside the board, is never persisted, and tolerates ids of items
// that have since been deleted (callers prune on delete).
type Selection struct {
	ids map[valueobjects.ItemID]struct{}
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{ids: make(map[valueobjects.ItemID]struct{})}
}

// Replace makes id the sole selected item
func (s *Selection) Replace(id valueobjects.ItemID) {
	s.ids = map[valueobjects.ItemID]struct{}{id: {}}
}

// Toggle flips membership of id (modifier-key multi-select)
func (s *Selection) Toggle(id valueobjects.ItemID) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection (click on empty canvas)
func (s *Selection) Clear() {
	s.ids = make(map[valueobjects.ItemID]struct{})
}

// Remove drops id from the selection if present
func (s *Selection) Remove(id valueobjects.ItemID) {
	delete(s.ids, id)
}

// Contains reports whether id is selected
func (s *Selection) Contains(id valueobjects.ItemID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected items
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in no particular order
func (s *Selection) IDs() []valueobjects.ItemID {
	out := make([]valueobjects.ItemID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
