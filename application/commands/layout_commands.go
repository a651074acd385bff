package commands

import (
	"colorboard/pkg/utils"
)

// AlignItemsCommand aligns a set of items against their shared bounding
// box. Fewer than two resolvable ids is a no-op.
type AlignItemsCommand struct {
	ClientID  string   `json:"-" validate:"required"`
	ItemIDs   []string `json:"itemIds" validate:"required,min=1"`
	Direction string   `json:"direction" validate:"required,oneof=left center right top middle bottom"`
}

// Validate validates the command
func (cmd AlignItemsCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// GroupItemsCommand assigns a fresh shared group id to the items.
type GroupItemsCommand struct {
	ClientID string   `json:"-" validate:"required"`
	ItemIDs  []string `json:"itemIds" validate:"required,min=2"`

	// CreatedGroupID receives the new group id after the handler runs;
	// empty when the command degraded to a no-op.
	CreatedGroupID *string `json:"-"`
}

// Validate validates the command
func (cmd GroupItemsCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// UngroupItemsCommand clears the group membership of the items.
type UngroupItemsCommand struct {
	ClientID string   `json:"-" validate:"required"`
	ItemIDs  []string `json:"itemIds" validate:"required,min=1"`
}

// Validate validates the command
func (cmd UngroupItemsCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// MoveGroupCommand translates every member of a group by a raw delta.
// Members clamp to the canvas independently and are not snapped.
type MoveGroupCommand struct {
	ClientID string  `json:"-" validate:"required"`
	GroupID  string  `json:"-" validate:"required"`
	DX       float64 `json:"dx"`
	DY       float64 `json:"dy"`
}

// Validate validates the command
func (cmd MoveGroupCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
