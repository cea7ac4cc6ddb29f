package system

import (
	"log"

	"github.com/younwookim/tilegrid/internal/domain/entity"
	"github.com/younwookim/tilegrid/internal/ecs"
)

// SetupGrid spawns one transparent mesh and one tile record per grid cell
// and returns the created tiles in generation order.
func SetupGrid(w *ecs.World, layout entity.GridLayout, logger *log.Logger) []entity.Tile {
	tiles := entity.GenerateTiles(layout)

	for i := range tiles {
		tile := &tiles[i]
		logger.Printf("position_x: %g - position_y: %g", tile.Center.X(), tile.Center.Y())

		tile.Visual = w.CreateMesh(tile.Center, tile.Size, entity.ColorNone)
		w.CreateTile(*tile)
	}

	return tiles
}
