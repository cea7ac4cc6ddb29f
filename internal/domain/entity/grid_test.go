package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGridLayout(t *testing.T) {
	l := DefaultGridLayout()

	assert.Equal(t, 3, l.Cols)
	assert.Equal(t, 3, l.Rows)
	assert.Equal(t, 200.0, l.CellSize)
	assert.Equal(t, 200.0, l.Spacing)
	assert.Equal(t, 9, l.Count())
	assert.Equal(t, mgl64.Vec2{300, 300}, l.Extent())
}

func TestGenerateTiles_Ordinals(t *testing.T) {
	tiles := GenerateTiles(DefaultGridLayout())
	require.Len(t, tiles, 9)

	seen := make(map[int]bool)
	idx := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tile := tiles[idx]
			assert.Equal(t, i*3+j+1, tile.Number)
			seen[tile.Number] = true
			idx++
		}
	}

	for n := 1; n <= 9; n++ {
		assert.True(t, seen[n], "ordinal %d missing", n)
	}
}

func TestGenerateTiles_Positions(t *testing.T) {
	tiles := GenerateTiles(DefaultGridLayout())

	tests := []struct {
		number int
		center mgl64.Vec2
	}{
		{1, mgl64.Vec2{-200, -200}},
		{2, mgl64.Vec2{-200, 0}},
		{3, mgl64.Vec2{-200, 200}},
		{4, mgl64.Vec2{0, -200}},
		{5, mgl64.Vec2{0, 0}},
		{6, mgl64.Vec2{0, 200}},
		{7, mgl64.Vec2{200, -200}},
		{8, mgl64.Vec2{200, 0}},
		{9, mgl64.Vec2{200, 200}},
	}

	for _, tt := range tests {
		tile := tiles[tt.number-1]
		assert.Equal(t, tt.number, tile.Number)
		assert.Equal(t, tt.center, tile.Center, "tile %d", tt.number)
		assert.Equal(t, mgl64.Vec2{200, 200}, tile.Size)
	}
}

func TestGenerateTiles_NoOverlap(t *testing.T) {
	tiles := GenerateTiles(DefaultGridLayout())

	// Sample every 50 units across the covered area, including shared edges.
	for x := -300.0; x < 300; x += 50 {
		for y := -300.0; y < 300; y += 50 {
			p := mgl64.Vec2{x, y}
			hits := 0
			for _, tile := range tiles {
				if tile.Contains(p) {
					hits++
				}
			}
			assert.Equal(t, 1, hits, "point %v should be in exactly one tile", p)
		}
	}
}

func TestGenerateTiles_OuterEdges(t *testing.T) {
	tiles := GenerateTiles(DefaultGridLayout())

	contained := func(p mgl64.Vec2) bool {
		for _, tile := range tiles {
			if tile.Contains(p) {
				return true
			}
		}
		return false
	}

	assert.True(t, contained(mgl64.Vec2{-300, -300}), "bottom-left corner is hittable")
	assert.False(t, contained(mgl64.Vec2{300, 0}), "right outer edge is not hittable")
	assert.False(t, contained(mgl64.Vec2{0, 300}), "top outer edge is not hittable")
}

func TestGridLayout_NonSquare(t *testing.T) {
	l := GridLayout{Cols: 4, Rows: 2, CellSize: 50, Spacing: 60}
	tiles := GenerateTiles(l)

	require.Len(t, tiles, 8)
	assert.Equal(t, mgl64.Vec2{-90, -30}, tiles[0].Center)
	assert.Equal(t, mgl64.Vec2{90, 30}, tiles[7].Center)
	assert.Equal(t, 8, tiles[7].Number)
	assert.Equal(t, 2, l.Ordinal(0, 1))
	assert.Equal(t, 3, l.Ordinal(1, 0))
}
