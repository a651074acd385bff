package handlers

import (
	"context"
	"fmt"

	"colorboard/application/commands"
	"colorboard/application/commands/bus"
	"colorboard/application/services"
	"colorboard/domain/core/aggregates"
	"colorboard/domain/core/valueobjects"
	pkgerrors "colorboard/pkg/errors"
)

// parseItemIDs converts raw id strings, dropping malformed ones. The
// layout operations are tolerant: unresolvable ids degrade the operation,
// they never fail it.
func parseItemIDs(raw []string) []valueobjects.ItemID {
	out := make([]valueobjects.ItemID, 0, len(raw))
	for _, r := range raw {
		if id, err := valueobjects.NewItemIDFromString(r); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// AlignItemsHandler aligns items against their shared bounding box
type AlignItemsHandler struct {
	sessions *services.SessionService
}

// NewAlignItemsHandler creates a new handler instance
func NewAlignItemsHandler(sessions *services.SessionService) *AlignItemsHandler {
	return &AlignItemsHandler{sessions: sessions}
}

// Handle executes the align items command
func (h *AlignItemsHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.AlignItemsCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	dir, err := aggregates.ParseAlignDirection(cmd.Direction)
	if err != nil {
		return err
	}
	ids := parseItemIDs(cmd.ItemIDs)
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.AlignItems(ids, dir)
		return nil
	})
}

// GroupItemsHandler assigns a fresh shared group id
type GroupItemsHandler struct {
	sessions *services.SessionService
}

// NewGroupItemsHandler creates a new handler instance
func NewGroupItemsHandler(sessions *services.SessionService) *GroupItemsHandler {
	return &GroupItemsHandler{sessions: sessions}
}

// Handle executes the group items command
func (h *GroupItemsHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.GroupItemsCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	ids := parseItemIDs(cmd.ItemIDs)
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		groupID := b.GroupItems(ids)
		if cmd.CreatedGroupID != nil {
			*cmd.CreatedGroupID = groupID.String()
		}
		return nil
	})
}

// UngroupItemsHandler clears group membership
type UngroupItemsHandler struct {
	sessions *services.SessionService
}

// NewUngroupItemsHandler creates a new handler instance
func NewUngroupItemsHandler(sessions *services.SessionService) *UngroupItemsHandler {
	return &UngroupItemsHandler{sessions: sessions}
}

// Handle executes the ungroup items command
func (h *UngroupItemsHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.UngroupItemsCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	ids := parseItemIDs(cmd.ItemIDs)
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.UngroupItems(ids)
		return nil
	})
}

// MoveGroupHandler translates a whole group
type MoveGroupHandler struct {
	sessions *services.SessionService
}

// NewMoveGroupHandler creates a new handler instance
func NewMoveGroupHandler(sessions *services.SessionService) *MoveGroupHandler {
	return &MoveGroupHandler{sessions: sessions}
}

// Handle executes the move group command
func (h *MoveGroupHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.MoveGroupCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	groupID := valueobjects.GroupID(cmd.GroupID)
	if groupID.IsZero() {
		return pkgerrors.NewValidationError("group id is required")
	}
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.MoveGroup(groupID, cmd.DX, cmd.DY)
		return nil
	})
}
