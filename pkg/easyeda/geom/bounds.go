package geom

import "strings"

// Position is a point in EasyEDA canvas units
type Position struct {
	X float64
	Y float64
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position // Minimum (top-left) corner
	Max Position // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},
		Max: Position{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// Translate returns the box shifted by (dx, dy). Empty boxes stay empty.
func (bb BoundingBox) Translate(dx, dy float64) BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	return BoundingBox{
		Min: Position{X: bb.Min.X + dx, Y: bb.Min.Y + dy},
		Max: Position{X: bb.Max.X + dx, Y: bb.Max.Y + dy},
	}
}

// PathBounds returns the extent of the coordinates in a path, using the same
// x/y pairing as OffsetPath. An unpaired trailing x is ignored.
func PathBounds(s string, sep string) BoundingBox {
	bb := NewBoundingBox()
	var x float64
	walkPath(strings.Split(s, sep), func(_ int, v float64, isY bool) {
		if !isY {
			x = v
			return
		}
		bb.Expand(Position{X: x, Y: v})
	})
	return bb
}
