package handlers

import (
	"context"
	"fmt"

	"colorboard/application/commands"
	"colorboard/application/commands/bus"
	"colorboard/application/services"
	"colorboard/domain/core/aggregates"
)

// RenameBoardHandler changes the board's name
type RenameBoardHandler struct {
	sessions *services.SessionService
}

// NewRenameBoardHandler creates a new handler instance
func NewRenameBoardHandler(sessions *services.SessionService) *RenameBoardHandler {
	return &RenameBoardHandler{sessions: sessions}
}

// Handle executes the rename board command
func (h *RenameBoardHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.RenameBoardCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		return b.Rename(cmd.Name)
	})
}

// UndoHandler reverts the last board mutation
type UndoHandler struct {
	sessions *services.SessionService
}

// NewUndoHandler creates a new handler instance
func NewUndoHandler(sessions *services.SessionService) *UndoHandler {
	return &UndoHandler{sessions: sessions}
}

// Handle executes the undo command
func (h *UndoHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.UndoCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	return h.sessions.Undo(ctx, cmd.ClientID)
}

// RedoHandler re-applies the last undone mutation
type RedoHandler struct {
	sessions *services.SessionService
}

// NewRedoHandler creates a new handler instance
func NewRedoHandler(sessions *services.SessionService) *RedoHandler {
	return &RedoHandler{sessions: sessions}
}

// Handle executes the redo command
func (h *RedoHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.RedoCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	return h.sessions.Redo(ctx, cmd.ClientID)
}

// ResetBoardHandler reseeds the starter board
type ResetBoardHandler struct {
	sessions *services.SessionService
}

// NewResetBoardHandler creates a new handler instance
func NewResetBoardHandler(sessions *services.SessionService) *ResetBoardHandler {
	return &ResetBoardHandler{sessions: sessions}
}

// Handle executes the reset board command
func (h *ResetBoardHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.ResetBoardCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	return h.sessions.Reset(ctx, cmd.ClientID)
}
