package entity

import "github.com/go-gl/mathgl/mgl64"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Tile is one cell of the grid in world space (origin at center, y-up).
// Tiles are created once at startup and never change; only the color of
// their Visual does.
type Tile struct {
	Center mgl64.Vec2
	Size   mgl64.Vec2 // full width/height
	Number int        // 1-based ordinal
	Visual EntityID   // rendered element owned by the host store
}

// HalfExtents returns half of the tile's size on each axis
func (t Tile) HalfExtents() mgl64.Vec2 {
	return t.Size.Mul(0.5)
}

// Contains reports whether p lies inside the tile.
//
// Both axes use half-open intervals [center-half, center+half), so a point on
// a shared edge belongs to exactly one tile. The price is that the grid's
// outermost right and top edges are not hittable exactly on the line.
func (t Tile) Contains(p mgl64.Vec2) bool {
	half := t.HalfExtents()
	minX, maxX := t.Center.X()-half.X(), t.Center.X()+half.X()
	minY, maxY := t.Center.Y()-half.Y(), t.Center.Y()+half.Y()
	return p.X() >= minX && p.X() < maxX &&
		p.Y() >= minY && p.Y() < maxY
}
