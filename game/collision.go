package game

import "github.com/plus3/chomp/level"

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// CircleBox is the bounding box of a circle; all collisions use it.
func CircleBox(c level.Point, r float64) Box {
	return Box{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}
}

// RectBox converts an obstacle rect.
func RectBox(r level.Rect) Box {
	return Box{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
}

// SquareBox is the box of a size x size square anchored at its top-left corner.
func SquareBox(p level.Point, size float64) Box {
	return Box{MinX: p.X, MinY: p.Y, MaxX: p.X + size, MaxY: p.Y + size}
}

// Overlaps uses strict inequalities: boxes that only touch do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.MaxX > o.MinX && b.MinX < o.MaxX && b.MaxY > o.MinY && b.MinY < o.MaxY
}
