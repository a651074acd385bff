package commands

import (
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/utils"
)

// CreateItemCommand places a new item on the client's board.
type CreateItemCommand struct {
	ClientID string `json:"-" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=color image text"`

	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`

	ColorHex    string   `json:"colorHex,omitempty"`
	Label       string   `json:"label,omitempty" validate:"max=200"`
	Radius      *float64 `json:"radius,omitempty"`
	BorderColor string   `json:"borderColor,omitempty"`

	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`

	Content       string  `json:"content,omitempty" validate:"max=20000"`
	Align         string  `json:"align,omitempty" validate:"omitempty,oneof=left center right"`
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	TextColor     string  `json:"textColor,omitempty"`
	BgTransparent bool    `json:"textBgTransparent,omitempty"`

	// CreatedID receives the new item's id after the handler runs.
	CreatedID *string `json:"-"`
}

// Validate validates the command
func (cmd CreateItemCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// UpdateItemCommand shallow-merges attribute changes into an item. Nil
// fields are left untouched; an unknown item id is a silent no-op.
type UpdateItemCommand struct {
	ClientID string `json:"-" validate:"required"`
	ItemID   string `json:"-" validate:"required"`

	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`

	ColorHex    *string  `json:"colorHex,omitempty"`
	Label       *string  `json:"label,omitempty"`
	Radius      *float64 `json:"radius,omitempty"`
	BorderColor *string  `json:"borderColor,omitempty"`

	Src *string `json:"src,omitempty"`
	Alt *string `json:"alt,omitempty"`

	Content       *string  `json:"content,omitempty"`
	Align         *string  `json:"align,omitempty" validate:"omitempty,oneof=left center right"`
	FontFamily    *string  `json:"fontFamily,omitempty"`
	FontSize      *float64 `json:"fontSize,omitempty"`
	TextColor     *string  `json:"textColor,omitempty"`
	BgTransparent *bool    `json:"textBgTransparent,omitempty"`
}

// Validate validates the command
func (cmd UpdateItemCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// MoveItemCommand moves an item to a target position. The domain snaps
// the position to the grid and clamps it to the canvas.
type MoveItemCommand struct {
	ClientID string  `json:"-" validate:"required"`
	ItemID   string  `json:"-" validate:"required"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Validate validates the command
func (cmd MoveItemCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// ResizeItemCommand sets an item's bounding box, either as an absolute
// target box or as a handle drag (handle plus pointer delta from the
// gesture start). The domain snaps, trims overflow and floors the size at
// the minimum either way.
type ResizeItemCommand struct {
	ClientID string `json:"-" validate:"required"`
	ItemID   string `json:"-" validate:"required"`

	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	Handle string  `json:"handle,omitempty" validate:"omitempty,oneof=n s e w ne nw se sw"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
}

// Validate validates the command
func (cmd ResizeItemCommand) Validate() error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return err
	}
	if cmd.Handle != "" {
		return nil
	}
	if cmd.X == nil || cmd.Y == nil || cmd.Width == nil || cmd.Height == nil {
		return pkgerrors.NewValidationError("either a handle or a full target box (x, y, width, height) is required")
	}
	return nil
}

// RotateItemCommand stores an item's rotation, either as explicit degrees
// or derived from a rotation-handle pointer delta.
type RotateItemCommand struct {
	ClientID string `json:"-" validate:"required"`
	ItemID   string `json:"-" validate:"required"`

	Degrees *float64 `json:"degrees,omitempty"`
	DX      *float64 `json:"dx,omitempty"`
	DY      *float64 `json:"dy,omitempty"`
}

// Validate validates the command
func (cmd RotateItemCommand) Validate() error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return err
	}
	if cmd.Degrees == nil && (cmd.DX == nil || cmd.DY == nil) {
		return pkgerrors.NewValidationError("either degrees or a pointer delta (dx, dy) is required")
	}
	return nil
}

// BringToFrontCommand raises an item above all others.
type BringToFrontCommand struct {
	ClientID string `json:"-" validate:"required"`
	ItemID   string `json:"-" validate:"required"`
}

// Validate validates the command
func (cmd BringToFrontCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// DeleteItemCommand removes an item from the board.
type DeleteItemCommand struct {
	ClientID string `json:"-" validate:"required"`
	ItemID   string `json:"-" validate:"required"`
}

// Validate validates the command
func (cmd DeleteItemCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
