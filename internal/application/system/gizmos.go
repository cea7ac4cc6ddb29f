package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// Segment is a line between two world points
type Segment struct {
	From, To mgl64.Vec2
}

// Bounds is an axis-aligned rectangle centered at Center
type Bounds struct {
	Center mgl64.Vec2
	Size   mgl64.Vec2
}

// Corners returns the four corners counter-clockwise from bottom-left
func (b Bounds) Corners() [4]mgl64.Vec2 {
	half := b.Size.Mul(0.5)
	return [4]mgl64.Vec2{
		{b.Center.X() - half.X(), b.Center.Y() - half.Y()},
		{b.Center.X() + half.X(), b.Center.Y() - half.Y()},
		{b.Center.X() + half.X(), b.Center.Y() + half.Y()},
		{b.Center.X() - half.X(), b.Center.Y() + half.Y()},
	}
}

// Edges returns the rectangle outline as four segments
func (b Bounds) Edges() [4]Segment {
	c := b.Corners()
	return [4]Segment{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// GridGuides returns the delimiter lines between cells and the outer border
// of the grid. They are decoration only.
func GridGuides(l entity.GridLayout) ([]Segment, Bounds) {
	ext := l.Extent()
	lines := make([]Segment, 0, l.Cols+l.Rows-2)

	// vertical delimiters
	for i := 1; i < l.Cols; i++ {
		x := -ext.X() + float64(i)*l.Spacing
		lines = append(lines, Segment{mgl64.Vec2{x, -ext.Y()}, mgl64.Vec2{x, ext.Y()}})
	}
	// horizontal delimiters
	for j := 1; j < l.Rows; j++ {
		y := -ext.Y() + float64(j)*l.Spacing
		lines = append(lines, Segment{mgl64.Vec2{-ext.X(), y}, mgl64.Vec2{ext.X(), y}})
	}

	return lines, Bounds{Size: ext.Mul(2)}
}
