package valueobjects

import (
	"errors"
	"math"
	"strings"
)

// Rect is a value object for an item's axis-aligned bounding box in board
// coordinates. X,Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a Rect
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Equals checks if two rects are equal
func (r Rect) Equals(other Rect) bool {
	return r.X == other.X && r.Y == other.Y &&
		r.Width == other.Width && r.Height == other.Height
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the x coordinate of the rect's center
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the y coordinate of the rect's center
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Snap rounds v to the nearest multiple of grid
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

// Clamp limits v to [lo, hi]. When hi < lo (item larger than canvas) the
// lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapPosition snaps the rect's position to the grid, leaving size unchanged
func (r Rect) SnapPosition(grid float64) Rect {
	r.X = Snap(r.X, grid)
	r.Y = Snap(r.Y, grid)
	return r
}

// ClampPosition keeps the rect inside the canvas without changing its size
func (r Rect) ClampPosition(canvasW, canvasH float64) Rect {
	r.X = Clamp(r.X, 0, canvasW-r.Width)
	r.Y = Clamp(r.Y, 0, canvasH-r.Height)
	return r
}

// Translate moves the rect by a raw delta
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// NormalizeResize applies the resize rules: snap all four values to the
// grid, trim edges that overflow the canvas, then floor width and height at
// minSize. The floor is applied last, so a minimum-size item pressed against
// an edge may slightly exceed the canvas; the size invariant wins over
// strict containment.
func (r Rect) NormalizeResize(grid, canvasW, canvasH, minSize float64) Rect {
	r.X = Snap(r.X, grid)
	r.Y = Snap(r.Y, grid)
	r.Width = Snap(r.Width, grid)
	r.Height = Snap(r.Height, grid)

	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.Right() > canvasW {
		r.Width = canvasW - r.X
	}
	if r.Bottom() > canvasH {
		r.Height = canvasH - r.Y
	}

	if r.Width < minSize {
		r.Width = minSize
	}
	if r.Height < minSize {
		r.Height = minSize
	}
	return r
}

// Handle names one of the eight resize handles.
type Handle string

const (
	HandleN  Handle = "n"
	HandleS  Handle = "s"
	HandleE  Handle = "e"
	HandleW  Handle = "w"
	HandleNE Handle = "ne"
	HandleNW Handle = "nw"
	HandleSE Handle = "se"
	HandleSW Handle = "sw"
)

// ParseHandle validates a handle name
func ParseHandle(s string) (Handle, error) {
	switch Handle(s) {
	case HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW:
		return Handle(s), nil
	}
	return "", errors.New("invalid resize handle: " + s)
}

func (h Handle) hasEast() bool  { return strings.Contains(string(h), "e") }
func (h Handle) hasWest() bool  { return strings.Contains(string(h), "w") }
func (h Handle) hasNorth() bool { return strings.Contains(string(h), "n") }
func (h Handle) hasSouth() bool { return strings.Contains(string(h), "s") }

// ApplyDrag computes the target rect for a resize drag. start is the rect
// captured when the gesture began, dx/dy the pointer delta from that moment.
// An 'e' handle grows width from the right; 'w' grows width from the left
// while shifting X the opposite way; 'n'/'s' act the same on the vertical
// axis. When a dimension would drop below minSize, the moving edge is pinned
// so that the opposite edge stays fixed at its pre-drag position.
func (h Handle) ApplyDrag(start Rect, dx, dy, minSize float64) Rect {
	r := start

	if h.hasEast() {
		r.Width = start.Width + dx
		if r.Width < minSize {
			r.Width = minSize
		}
	}
	if h.hasWest() {
		r.X = start.X + dx
		r.Width = start.Width - dx
		if r.Width < minSize {
			r.X = start.Right() - minSize
			r.Width = minSize
		}
	}
	if h.hasSouth() {
		r.Height = start.Height + dy
		if r.Height < minSize {
			r.Height = minSize
		}
	}
	if h.hasNorth() {
		r.Y = start.Y + dy
		r.Height = start.Height - dy
		if r.Height < minSize {
			r.Y = start.Bottom() - minSize
			r.Height = minSize
		}
	}
	return r
}

// RotationFromDrag converts a pointer delta from an item's rotation handle
// into whole degrees. The +90 offset accounts for the handle sitting above
// the item's center.
func RotationFromDrag(dx, dy float64) float64 {
	return math.Round(math.Atan2(dy, dx)*180/math.Pi + 90)
}
