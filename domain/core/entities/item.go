package entities

import (
	"colorboard/domain/config"
	"colorboard/domain/core/valueobjects"
	pkgerrors "colorboard/pkg/errors"
)

// Kind discriminates the board item variants
type Kind string

const (
	KindColor Kind = "color"
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// ParseKind validates an item kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindColor, KindImage, KindText:
		return Kind(s), nil
	}
	return "", pkgerrors.NewValidationError("unknown item type: " + s)
}

// TextAlign is the horizontal alignment of a text note
type TextAlign string

const (
	AlignTextLeft   TextAlign = "left"
	AlignTextCenter TextAlign = "center"
	AlignTextRight  TextAlign = "right"
)

// ColorAttrs are the fields specific to a color swatch item
type ColorAttrs struct {
	ColorHex    valueobjects.ColorHex
	Label       string
	Radius      float64
	BorderColor valueobjects.ColorHex
}

// ImageAttrs are the fields specific to an image item
type ImageAttrs struct {
	Src string
	Alt string
}

// TextAttrs are the fields specific to a text note item
type TextAttrs struct {
	Content       string
	Align         TextAlign
	FontFamily    string
	FontSize      float64
	TextColor     valueobjects.ColorHex
	BgTransparent bool
}

// Item is one placed element on the mood board. The three kinds share
// geometry and stacking fields; exactly one of the variant attribute structs
// is set, matching the kind.
type Item struct {
	id       valueobjects.ItemID
	kind     Kind
	rect     valueobjects.Rect
	zIndex   int
	rotation float64
	groupID  valueobjects.GroupID

	color *ColorAttrs
	image *ImageAttrs
	text  *TextAttrs
}

// NewColorItem creates a color swatch item
func NewColorItem(rect valueobjects.Rect, zIndex int, attrs ColorAttrs, cfg *config.DomainConfig) (*Item, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if attrs.ColorHex.IsZero() {
		return nil, pkgerrors.NewValidationError("color item requires colorHex")
	}
	if attrs.Radius == 0 {
		attrs.Radius = cfg.DefaultCornerRadius
	}
	if len(attrs.Label) > cfg.MaxLabelLength {
		return nil, pkgerrors.NewValidationError("label too long")
	}
	return &Item{
		id:     valueobjects.NewItemID(string(KindColor)),
		kind:   KindColor,
		rect:   rect,
		zIndex: zIndex,
		color:  &attrs,
	}, nil
}

// NewImageItem creates an image item
func NewImageItem(rect valueobjects.Rect, zIndex int, attrs ImageAttrs, cfg *config.DomainConfig) (*Item, error) {
	if attrs.Src == "" {
		return nil, pkgerrors.NewValidationError("image item requires src")
	}
	return &Item{
		id:     valueobjects.NewItemID(string(KindImage)),
		kind:   KindImage,
		rect:   rect,
		zIndex: zIndex,
		image:  &attrs,
	}, nil
}

// NewTextItem creates a text note item
func NewTextItem(rect valueobjects.Rect, zIndex int, attrs TextAttrs, cfg *config.DomainConfig) (*Item, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if len(attrs.Content) > cfg.MaxContentLength {
		return nil, pkgerrors.NewValidationError("content too long")
	}
	if attrs.Align == "" {
		attrs.Align = AlignTextLeft
	}
	return &Item{
		id:     valueobjects.NewItemID(string(KindText)),
		kind:   KindText,
		rect:   rect,
		zIndex: zIndex,
		text:   &attrs,
	}, nil
}

// ID returns the item's unique identifier
func (i *Item) ID() valueobjects.ItemID { return i.id }

// Kind returns the variant discriminator
func (i *Item) Kind() Kind { return i.kind }

// Rect returns the item's bounding box
func (i *Item) Rect() valueobjects.Rect { return i.rect }

// ZIndex returns the stacking order; higher renders on top
func (i *Item) ZIndex() int { return i.zIndex }

// Rotation returns the rotation in degrees. The range is unconstrained:
// values are stored verbatim and never normalized to [0,360).
func (i *Item) Rotation() float64 { return i.rotation }

// GroupID returns the group the item belongs to, zero when ungrouped
func (i *Item) GroupID() valueobjects.GroupID { return i.groupID }

// Color returns the color variant attributes, nil for other kinds
func (i *Item) Color() *ColorAttrs { return i.color }

// Image returns the image variant attributes, nil for other kinds
func (i *Item) Image() *ImageAttrs { return i.image }

// Text returns the text variant attributes, nil for other kinds
func (i *Item) Text() *TextAttrs { return i.text }

// SetRect replaces the bounding box. Geometry rules (snapping, clamping,
// minimum size) are the aggregate's responsibility; the entity stores what
// it is given.
func (i *Item) SetRect(r valueobjects.Rect) { i.rect = r }

// SetZIndex replaces the stacking order
func (i *Item) SetZIndex(z int) { i.zIndex = z }

// SetRotation stores the rotation verbatim
func (i *Item) SetRotation(deg float64) { i.rotation = deg }

// SetGroup assigns the item to a group
func (i *Item) SetGroup(g valueobjects.GroupID) { i.groupID = g }

// ClearGroup removes the item from its group
func (i *Item) ClearGroup() { i.groupID = "" }

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	c := *i
	if i.color != nil {
		attrs := *i.color
		c.color = &attrs
	}
	if i.image != nil {
		attrs := *i.image
		c.image = &attrs
	}
	if i.text != nil {
		attrs := *i.text
		c.text = &attrs
	}
	return &c
}

// Patch is a shallow update to an item. Nil fields are left untouched.
// Variant fields that do not match the item's kind are ignored.
type Patch struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64

	// color variant
	ColorHex    *valueobjects.ColorHex
	Label       *string
	Radius      *float64
	BorderColor *valueobjects.ColorHex

	// image variant
	Src *string
	Alt *string

	// text variant
	Content       *string
	Align         *TextAlign
	FontFamily    *string
	FontSize      *float64
	TextColor     *valueobjects.ColorHex
	BgTransparent *bool
}

// Apply shallow-merges the patch into the item. Geometry values are taken
// as-is: explicit move/resize paths validate, patch callers are responsible
// for their own values.
func (i *Item) Apply(p Patch) {
	if p.X != nil {
		i.rect.X = *p.X
	}
	if p.Y != nil {
		i.rect.Y = *p.Y
	}
	if p.Width != nil {
		i.rect.Width = *p.Width
	}
	if p.Height != nil {
		i.rect.Height = *p.Height
	}
	if p.Rotation != nil {
		i.rotation = *p.Rotation
	}

	switch i.kind {
	case KindColor:
		if p.ColorHex != nil {
			i.color.ColorHex = *p.ColorHex
		}
		if p.Label != nil {
			i.color.Label = *p.Label
		}
		if p.Radius != nil {
			i.color.Radius = *p.Radius
		}
		if p.BorderColor != nil {
			i.color.BorderColor = *p.BorderColor
		}
	case KindImage:
		if p.Src != nil {
			i.image.Src = *p.Src
		}
		if p.Alt != nil {
			i.image.Alt = *p.Alt
		}
	case KindText:
		if p.Content != nil {
			i.text.Content = *p.Content
		}
		if p.Align != nil {
			i.text.Align = *p.Align
		}
		if p.FontFamily != nil {
			i.text.FontFamily = *p.FontFamily
		}
		if p.FontSize != nil {
			i.text.FontSize = *p.FontSize
		}
		if p.TextColor != nil {
			i.text.TextColor = *p.TextColor
		}
		if p.BgTransparent != nil {
			i.text.BgTransparent = *p.BgTransparent
		}
	}
}

// Snapshot is the serialized form of an item, shared by persistence and the
// HTTP layer.
type Snapshot struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ZIndex   int     `json:"zIndex"`
	Rotation float64 `json:"rotation,omitempty"`
	GroupID  string  `json:"groupId,omitempty"`

	ColorHex    string  `json:"colorHex,omitempty"`
	Label       string  `json:"label,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	BorderColor string  `json:"borderColor,omitempty"`

	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`

	Content       string  `json:"content,omitempty"`
	Align         string  `json:"align,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	TextColor     string  `json:"textColor,omitempty"`
	BgTransparent bool    `json:"textBgTransparent,omitempty"`
}

// Snapshot converts the item to its serialized form
func (i *Item) Snapshot() Snapshot {
	s := Snapshot{
		ID:       i.id.String(),
		Type:     string(i.kind),
		X:        i.rect.X,
		Y:        i.rect.Y,
		Width:    i.rect.Width,
		Height:   i.rect.Height,
		ZIndex:   i.zIndex,
		Rotation: i.rotation,
		GroupID:  i.groupID.String(),
	}
	switch i.kind {
	case KindColor:
		s.ColorHex = i.color.ColorHex.String()
		s.Label = i.color.Label
		s.Radius = i.color.Radius
		s.BorderColor = i.color.BorderColor.String()
	case KindImage:
		s.Src = i.image.Src
		s.Alt = i.image.Alt
	case KindText:
		s.Content = i.text.Content
		s.Align = string(i.text.Align)
		s.FontFamily = i.text.FontFamily
		s.FontSize = i.text.FontSize
		s.TextColor = i.text.TextColor.String()
		s.BgTransparent = i.text.BgTransparent
	}
	return s
}

// ReconstructItem rebuilds an item from its serialized form with no
// validation beyond the kind check; the snapshot is trusted.
func ReconstructItem(s Snapshot) (*Item, error) {
	kind, err := ParseKind(s.Type)
	if err != nil {
		return nil, err
	}
	id, err := valueobjects.NewItemIDFromString(s.ID)
	if err != nil {
		return nil, err
	}
	item := &Item{
		id:       id,
		kind:     kind,
		rect:     valueobjects.NewRect(s.X, s.Y, s.Width, s.Height),
		zIndex:   s.ZIndex,
		rotation: s.Rotation,
		groupID:  valueobjects.GroupID(s.GroupID),
	}
	switch kind {
	case KindColor:
		hex, _ := valueobjects.NewColorHex(s.ColorHex)
		border := valueobjects.ColorHex{}
		if s.BorderColor != "" {
			border, _ = valueobjects.NewColorHex(s.BorderColor)
		}
		item.color = &ColorAttrs{ColorHex: hex, Label: s.Label, Radius: s.Radius, BorderColor: border}
	case KindImage:
		item.image = &ImageAttrs{Src: s.Src, Alt: s.Alt}
	case KindText:
		textColor := valueobjects.ColorHex{}
		if s.TextColor != "" {
			textColor, _ = valueobjects.NewColorHex(s.TextColor)
		}
		item.text = &TextAttrs{
			Content:       s.Content,
			Align:         TextAlign(s.Align),
			FontFamily:    s.FontFamily,
			FontSize:      s.FontSize,
			TextColor:     textColor,
			BgTransparent: s.BgTransparent,
		}
	}
	return item, nil
}
