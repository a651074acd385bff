package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"colorboard/application/commands"
	"colorboard/application/commands/bus"
	"colorboard/application/services"
	"colorboard/domain/core/aggregates"
	"colorboard/domain/core/entities"
	"colorboard/domain/core/valueobjects"
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/sanitize"
)

// CreateItemHandler handles item creation
type CreateItemHandler struct {
	sessions *services.SessionService
	logger   *zap.Logger
}

// NewCreateItemHandler creates a new handler instance
func NewCreateItemHandler(sessions *services.SessionService, logger *zap.Logger) *CreateItemHandler {
	return &CreateItemHandler{sessions: sessions, logger: logger}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.CreateItemCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}

	kind, err := entities.ParseKind(cmd.Type)
	if err != nil {
		return err
	}

	spec := aggregates.CreateSpec{
		X:        cmd.X,
		Y:        cmd.Y,
		Width:    cmd.Width,
		Height:   cmd.Height,
		Rotation: cmd.Rotation,
	}

	switch kind {
	case entities.KindColor:
		hex, err := valueobjects.NewColorHex(cmd.ColorHex)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		attrs := entities.ColorAttrs{ColorHex: hex, Label: cmd.Label}
		if cmd.Radius != nil {
			attrs.Radius = *cmd.Radius
		}
		if cmd.BorderColor != "" {
			border, err := valueobjects.NewColorHex(cmd.BorderColor)
			if err != nil {
				return pkgerrors.NewValidationError(err.Error())
			}
			attrs.BorderColor = border
		}
		spec.Color = &attrs
	case entities.KindImage:
		if cmd.Src == "" {
			return pkgerrors.NewValidationError("image item requires src")
		}
		spec.Image = &entities.ImageAttrs{Src: cmd.Src, Alt: cmd.Alt}
	case entities.KindText:
		attrs := entities.TextAttrs{
			Content:       sanitize.Content(cmd.Content),
			Align:         entities.TextAlign(cmd.Align),
			FontFamily:    cmd.FontFamily,
			FontSize:      cmd.FontSize,
			BgTransparent: cmd.BgTransparent,
		}
		if cmd.TextColor != "" {
			tc, err := valueobjects.NewColorHex(cmd.TextColor)
			if err != nil {
				return pkgerrors.NewValidationError(err.Error())
			}
			attrs.TextColor = tc
		}
		spec.Text = &attrs
	}

	var createdID valueobjects.ItemID
	err = h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		id, err := b.CreateItem(kind, spec)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return err
	}

	// A new item becomes the sole selection.
	if err := h.sessions.SelectOnly(ctx, cmd.ClientID, createdID.String()); err != nil {
		h.logger.Warn("failed to select created item", zap.Error(err))
	}

	if cmd.CreatedID != nil {
		*cmd.CreatedID = createdID.String()
	}
	return nil
}

// UpdateItemHandler handles shallow item updates
type UpdateItemHandler struct {
	sessions *services.SessionService
}

// NewUpdateItemHandler creates a new handler instance
func NewUpdateItemHandler(sessions *services.SessionService) *UpdateItemHandler {
	return &UpdateItemHandler{sessions: sessions}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.UpdateItemCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}

	id, err := valueobjects.NewItemIDFromString(cmd.ItemID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	patch := entities.Patch{
		X:          cmd.X,
		Y:          cmd.Y,
		Width:      cmd.Width,
		Height:     cmd.Height,
		Rotation:   cmd.Rotation,
		Label:      cmd.Label,
		Radius:     cmd.Radius,
		Src:        cmd.Src,
		Alt:        cmd.Alt,
		FontFamily: cmd.FontFamily,
		FontSize:   cmd.FontSize,
	}
	if cmd.ColorHex != nil {
		hex, err := valueobjects.NewColorHex(*cmd.ColorHex)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		patch.ColorHex = &hex
	}
	if cmd.BorderColor != nil {
		border, err := valueobjects.NewColorHex(*cmd.BorderColor)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		patch.BorderColor = &border
	}
	if cmd.TextColor != nil {
		tc, err := valueobjects.NewColorHex(*cmd.TextColor)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		patch.TextColor = &tc
	}
	if cmd.Content != nil {
		clean := sanitize.Content(*cmd.Content)
		patch.Content = &clean
	}
	if cmd.Align != nil {
		align := entities.TextAlign(*cmd.Align)
		patch.Align = &align
	}
	if cmd.BgTransparent != nil {
		patch.BgTransparent = cmd.BgTransparent
	}

	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.UpdateItem(id, patch)
		return nil
	})
}

// MoveItemHandler handles single-item moves
type MoveItemHandler struct {
	sessions *services.SessionService
}

// NewMoveItemHandler creates a new handler instance
func NewMoveItemHandler(sessions *services.SessionService) *MoveItemHandler {
	return &MoveItemHandler{sessions: sessions}
}

// Handle executes the move item command
func (h *MoveItemHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.MoveItemCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	id, err := valueobjects.NewItemIDFromString(cmd.ItemID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.MoveItem(id, cmd.X, cmd.Y)
		return nil
	})
}

// ResizeItemHandler handles item resizes
type ResizeItemHandler struct {
	sessions *services.SessionService
}

// NewResizeItemHandler creates a new handler instance
func NewResizeItemHandler(sessions *services.SessionService) *ResizeItemHandler {
	return &ResizeItemHandler{sessions: sessions}
}

// Handle executes the resize item command
func (h *ResizeItemHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.ResizeItemCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	id, err := valueobjects.NewItemIDFromString(cmd.ItemID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	if cmd.Handle != "" {
		handle, err := valueobjects.ParseHandle(cmd.Handle)
		if err != nil {
			return pkgerrors.NewValidationError(err.Error())
		}
		return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
			drag, ok := b.BeginResize(id, handle)
			if !ok {
				return nil
			}
			drag.ContinueResize(b, cmd.DX, cmd.DY)
			return nil
		})
	}

	target := valueobjects.NewRect(*cmd.X, *cmd.Y, *cmd.Width, *cmd.Height)
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.ResizeItem(id, target)
		return nil
	})
}

// RotateItemHandler handles item rotation
type RotateItemHandler struct {
	sessions *services.SessionService
}

// NewRotateItemHandler creates a new handler instance
func NewRotateItemHandler(sessions *services.SessionService) *RotateItemHandler {
	return &RotateItemHandler{sessions: sessions}
}

// Handle executes the rotate item command
func (h *RotateItemHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.RotateItemCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	id, err := valueobjects.NewItemIDFromString(cmd.ItemID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		if cmd.Degrees != nil {
			b.RotateItem(id, *cmd.Degrees)
			return nil
		}
		drag, ok := b.BeginMove(id)
		if !ok {
			return nil
		}
		drag.ContinueRotate(b, *cmd.DX, *cmd.DY)
		return nil
	})
}

// BringToFrontHandler raises an item above all others
type BringToFrontHandler struct {
	sessions *services.SessionService
}

// NewBringToFrontHandler creates a new handler instance
func NewBringToFrontHandler(sessions *services.SessionService) *BringToFrontHandler {
	return &BringToFrontHandler{sessions: sessions}
}

// Handle executes the bring-to-front command
func (h *BringToFrontHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.BringToFrontCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	id, err := valueobjects.NewItemIDFromString(cmd.ItemID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.BringToFront(id)
		return nil
	})
}

// DeleteItemHandler removes an item
type DeleteItemHandler struct {
	sessions *services.SessionService
}

// NewDeleteItemHandler creates a new handler instance
func NewDeleteItemHandler(sessions *services.SessionService) *DeleteItemHandler {
	return &DeleteItemHandler{sessions: sessions}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.DeleteItemCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", c)
	}
	id, err := valueobjects.NewItemIDFromString(cmd.ItemID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return h.sessions.Mutate(ctx, cmd.ClientID, func(b *aggregates.MoodBoard) error {
		b.DeleteItem(id)
		return nil
	})
}
