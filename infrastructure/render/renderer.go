// Package render rasterizes board snapshots to PNG with gg. Items draw
// bottom to top in snapshot order; the aggregate already sorts them by
// zIndex.
package render

import (
	"bytes"
	"context"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"colorboard/domain/config"
	"colorboard/domain/core/aggregates"
	"colorboard/domain/core/entities"
	"colorboard/pkg/colors"
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/sanitize"
)

const (
	backgroundColor  = "#f5f5f4"
	imageFillColor   = "#e7e5e4"
	imageStrokeColor = "#a8a29e"
	defaultTextColor = "#333333"
	defaultFontSize  = 16.0
	labelFontSize    = 14.0
	textPadding      = 12.0
)

// Renderer implements ports.BoardRenderer
type Renderer struct {
	cfg    *config.DomainConfig
	logger *zap.Logger
}

// NewRenderer creates a board renderer
func NewRenderer(cfg *config.DomainConfig, logger *zap.Logger) *Renderer {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{cfg: cfg, logger: logger}
}

// RenderPNG draws the snapshot onto a canvas-sized context and encodes it
func (r *Renderer) RenderPNG(ctx context.Context, snapshot aggregates.Snapshot) ([]byte, error) {
	dc := gg.NewContext(int(r.cfg.CanvasWidth), int(r.cfg.CanvasHeight))
	dc.SetHexColor(backgroundColor)
	dc.Clear()

	for _, item := range snapshot.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.drawItem(dc, item)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode board image").WithCause(err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawItem(dc *gg.Context, item entities.Snapshot) {
	dc.Push()
	defer dc.Pop()

	if item.Rotation != 0 {
		cx := item.X + item.Width/2
		cy := item.Y + item.Height/2
		dc.RotateAbout(gg.Radians(item.Rotation), cx, cy)
	}

	switch entities.Kind(item.Type) {
	case entities.KindColor:
		r.drawColorBlock(dc, item)
	case entities.KindImage:
		r.drawImagePlaceholder(dc, item)
	case entities.KindText:
		r.drawTextNote(dc, item)
	}
}

func (r *Renderer) drawColorBlock(dc *gg.Context, item entities.Snapshot) {
	radius := item.Radius
	if radius < 0 {
		radius = 0
	}

	dc.DrawRoundedRectangle(item.X, item.Y, item.Width, item.Height, radius)
	dc.SetHexColor(item.ColorHex)
	dc.FillPreserve()
	if item.BorderColor != "" {
		dc.SetHexColor(item.BorderColor)
		dc.SetLineWidth(2)
		dc.Stroke()
	} else {
		dc.ClearPath()
	}

	if item.Label == "" {
		return
	}
	face, err := fonts.face(true, labelFontSize)
	if err != nil {
		r.logger.Warn("font load failed", zap.Error(err))
		return
	}
	dc.SetFontFace(face)
	dc.SetHexColor(colors.ContrastText(item.ColorHex))
	dc.DrawStringAnchored(item.Label, item.X+item.Width/2, item.Y+item.Height/2, 0.5, 0.5)
}

func (r *Renderer) drawImagePlaceholder(dc *gg.Context, item entities.Snapshot) {
	dc.DrawRoundedRectangle(item.X, item.Y, item.Width, item.Height, 4)
	dc.SetHexColor(imageFillColor)
	dc.FillPreserve()
	dc.SetHexColor(imageStrokeColor)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	// Diagonals mark the frame as a placeholder.
	dc.SetLineWidth(1)
	dc.DrawLine(item.X, item.Y, item.X+item.Width, item.Y+item.Height)
	dc.DrawLine(item.X+item.Width, item.Y, item.X, item.Y+item.Height)
	dc.Stroke()

	caption := item.Alt
	if caption == "" {
		caption = item.Src
	}
	if caption == "" {
		return
	}
	face, err := fonts.face(false, labelFontSize)
	if err != nil {
		r.logger.Warn("font load failed", zap.Error(err))
		return
	}
	dc.SetFontFace(face)
	dc.SetHexColor(defaultTextColor)
	dc.DrawStringWrapped(caption,
		item.X+item.Width/2, item.Y+item.Height-textPadding, 0.5, 1,
		item.Width-2*textPadding, 1.2, gg.AlignCenter)
}

func (r *Renderer) drawTextNote(dc *gg.Context, item entities.Snapshot) {
	if !item.BgTransparent {
		dc.DrawRoundedRectangle(item.X, item.Y, item.Width, item.Height, 4)
		dc.SetHexColor("#ffffff")
		dc.Fill()
	}

	content := sanitize.Plain(item.Content)
	if content == "" {
		return
	}

	size := item.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	face, err := fonts.face(false, size)
	if err != nil {
		r.logger.Warn("font load failed", zap.Error(err))
		return
	}
	dc.SetFontFace(face)

	textColor := item.TextColor
	if textColor == "" {
		textColor = defaultTextColor
	}
	dc.SetHexColor(textColor)

	align := gg.AlignLeft
	ax := 0.0
	x := item.X + textPadding
	switch entities.TextAlign(item.Align) {
	case entities.AlignTextCenter:
		align, ax = gg.AlignCenter, 0.5
		x = item.X + item.Width/2
	case entities.AlignTextRight:
		align, ax = gg.AlignRight, 1.0
		x = item.X + item.Width - textPadding
	}
	dc.DrawStringWrapped(content, x, item.Y+textPadding, ax, 0,
		item.Width-2*textPadding, 1.4, align)
}
