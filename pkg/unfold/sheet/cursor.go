// Package sheet provides the deterministic shelf-packing cursor that
// places panels on the virtual sheet.
//
// The cursor is an explicit value threaded through every generator call:
// Place returns the chosen position together with the next cursor, so
// the same panels in the same call order always land on the same
// coordinates.
package sheet

import "github.com/foldline/foldline/pkg/geom"

// Sheet layout constants, in model-scale inches.
const (
	// MaxRowWidth is the fixed maximum sheet width rows wrap at.
	MaxRowWidth = 30.0
	// Margin is the sheet margin and row-wrap left edge.
	Margin = 0.5
	// Spacing separates adjacent panels.
	Spacing = 0.25
)

// Cursor tracks the current placement position and the height of the
// tallest panel in the current row.
type Cursor struct {
	X, Y         float64
	RowMaxHeight float64
	// RowWidth overrides MaxRowWidth when positive.
	RowWidth float64
}

// NewCursor starts a cursor at the sheet margin below startY.
func NewCursor(startY float64) Cursor {
	return Cursor{X: Margin, Y: startY}
}

func (c Cursor) maxRow() float64 {
	if c.RowWidth > 0 {
		return c.RowWidth
	}
	return MaxRowWidth
}

// Place chooses the position for a panel of size w x h and returns it
// with the advanced cursor. The cursor moves right by w + Spacing; when
// the panel would cross the maximum row width, the row wraps first.
func (c Cursor) Place(w, h float64) (geom.Point, Cursor) {
	if c.X > Margin && c.X+w > c.maxRow() {
		c = c.Wrap()
	}
	pos := geom.Point{X: c.X, Y: c.Y}
	c.X += w + Spacing
	if h > c.RowMaxHeight {
		c.RowMaxHeight = h
	}
	return pos, c
}

// Wrap starts a new row below the tallest panel of the current one.
func (c Cursor) Wrap() Cursor {
	c.Y += c.RowMaxHeight + Spacing
	c.X = Margin
	c.RowMaxHeight = 0
	return c
}

// NextRowY returns the y coordinate of the row that would follow the
// current one.
func (c Cursor) NextRowY() float64 {
	return c.Y + c.RowMaxHeight + Spacing
}
