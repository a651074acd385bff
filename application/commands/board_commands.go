package commands

import (
	"colorboard/pkg/utils"
)

// RenameBoardCommand changes the board's display name.
type RenameBoardCommand struct {
	ClientID string `json:"-" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
}

// Validate validates the command
func (cmd RenameBoardCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// UndoCommand reverts the board to the state before the last mutation.
// An empty history is a no-op.
type UndoCommand struct {
	ClientID string `json:"-" validate:"required"`
}

// Validate validates the command
func (cmd UndoCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// RedoCommand re-applies the most recently undone mutation.
type RedoCommand struct {
	ClientID string `json:"-" validate:"required"`
}

// Validate validates the command
func (cmd RedoCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// ResetBoardCommand discards the client's board and starts over from the
// starter layout.
type ResetBoardCommand struct {
	ClientID string `json:"-" validate:"required"`
}

// Validate validates the command
func (cmd ResetBoardCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
