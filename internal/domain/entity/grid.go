package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Tile visual colors. Only these two are ever written.
var (
	ColorNone      = color.RGBA{0, 0, 0, 0}
	ColorHighlight = color.RGBA{0, 0, 255, 255}
)

// GridLayout describes a grid of equally sized cells centered at the origin
type GridLayout struct {
	Cols     int
	Rows     int
	CellSize float64 // width and height of a single tile
	Spacing  float64 // distance between neighbouring tile centers
}

// DefaultGridLayout returns the fixed 3x3 layout with 200 unit cells
func DefaultGridLayout() GridLayout {
	return GridLayout{
		Cols:     3,
		Rows:     3,
		CellSize: 200,
		Spacing:  200,
	}
}

// Count returns the number of cells in the layout
func (l GridLayout) Count() int {
	return l.Cols * l.Rows
}

// Extent returns the half width and half height covered by the grid lines
func (l GridLayout) Extent() mgl64.Vec2 {
	return mgl64.Vec2{
		float64(l.Cols) * l.Spacing / 2,
		float64(l.Rows) * l.Spacing / 2,
	}
}

// CellCenter returns the world position of cell (i, j), where i indexes
// columns (x) and j indexes rows (y).
func (l GridLayout) CellCenter(i, j int) mgl64.Vec2 {
	offsetX := float64(l.Cols-1) * l.Spacing / 2
	offsetY := float64(l.Rows-1) * l.Spacing / 2
	return mgl64.Vec2{
		float64(i)*l.Spacing - offsetX,
		float64(j)*l.Spacing - offsetY,
	}
}

// Ordinal returns the 1-based number of cell (i, j) in generation order
func (l GridLayout) Ordinal(i, j int) int {
	return i*l.Rows + j + 1
}

// GenerateTiles builds one tile per cell, column index in the outer loop.
// Visual handles are left zero for the caller to fill in.
func GenerateTiles(l GridLayout) []Tile {
	tiles := make([]Tile, 0, l.Count())
	size := mgl64.Vec2{l.CellSize, l.CellSize}
	for i := 0; i < l.Cols; i++ {
		for j := 0; j < l.Rows; j++ {
			tiles = append(tiles, Tile{
				Center: l.CellCenter(i, j),
				Size:   size,
				Number: l.Ordinal(i, j),
			})
		}
	}
	return tiles
}
