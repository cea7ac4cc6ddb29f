package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// ClickRecord identifies a tile hit by a click
type ClickRecord struct {
	Number int
	Center mgl64.Vec2
}

// ClickSystem reports which tiles a primary-button press lands on
type ClickSystem struct {
	store  TileStore
	logger *log.Logger
}

// NewClickSystem creates a new click system
func NewClickSystem(store TileStore, logger *log.Logger) *ClickSystem {
	return &ClickSystem{store: store, logger: logger}
}

// Update logs and returns every tile containing the pointer on the frame the
// left button goes down. Overlapping tiles would all be reported.
func (s *ClickSystem) Update(input InputState) []ClickRecord {
	if !input.LeftJustPressed {
		return nil
	}
	pos, ok := input.Relative()
	if !ok {
		return nil
	}

	var records []ClickRecord
	for _, tile := range s.store.Tiles() {
		if !tile.Contains(pos) {
			continue
		}
		s.logger.Printf("Clicked on tile %d at [%g, %g]", tile.Number, tile.Center.X(), tile.Center.Y())
		records = append(records, ClickRecord{Number: tile.Number, Center: tile.Center})
	}
	return records
}
