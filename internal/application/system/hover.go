package system

import (
	"image/color"

	"github.com/younwookim/tilegrid/internal/application/state"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// TileStore is the host-owned storage the grid systems work through.
// *ecs.World implements it.
type TileStore interface {
	Tiles() []entity.Tile
	SetColor(id entity.EntityID, c color.RGBA) bool
}

// HoverSystem recolors tiles from the current pointer position
type HoverSystem struct {
	store TileStore
}

// NewHoverSystem creates a new hover system
func NewHoverSystem(store TileStore) *HoverSystem {
	return &HoverSystem{store: store}
}

// Update sets every tile's visual to the hovered or idle color and returns
// the ordinals of hovered tiles. Nothing carries over between frames.
func (s *HoverSystem) Update(input InputState) []int {
	pos, ok := input.Relative()

	var hovered []int
	for _, tile := range s.store.Tiles() {
		st := state.FromHover(ok && tile.Contains(pos))
		if st == state.StateHovered {
			hovered = append(hovered, tile.Number)
		}
		s.store.SetColor(tile.Visual, st.Color())
	}
	return hovered
}
