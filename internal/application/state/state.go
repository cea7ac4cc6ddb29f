package state

import (
	"image/color"

	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// TileState represents the visual state of a tile for the current frame
type TileState int

const (
	StateIdle TileState = iota
	StateHovered
)

// FromHover returns the state for a tile given whether the pointer is over it
func FromHover(hovered bool) TileState {
	if hovered {
		return StateHovered
	}
	return StateIdle
}

// String returns the string representation of the tile state
func (s TileState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovered:
		return "Hovered"
	default:
		return "Unknown"
	}
}

// Color returns the material color a tile shows in this state
func (s TileState) Color() color.RGBA {
	if s == StateHovered {
		return entity.ColorHighlight
	}
	return entity.ColorNone
}
