package config

import "github.com/younwookim/tilegrid/internal/domain/entity"

// GridConfig is the root config for grid.json
type GridConfig struct {
	Display DisplayConfig `json:"display"`
	Layout  LayoutConfig  `json:"layout"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
}

// LayoutConfig describes the tile grid in world units
type LayoutConfig struct {
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
	CellSize float64 `json:"cellSize"` // Tile width and height
	Spacing  float64 `json:"spacing"`  // Distance between tile centers
}

// GridLayout converts the config into the domain layout
func (c LayoutConfig) GridLayout() entity.GridLayout {
	return entity.GridLayout{
		Cols:     c.Cols,
		Rows:     c.Rows,
		CellSize: c.CellSize,
		Spacing:  c.Spacing,
	}
}

// Default returns the built-in configuration: a 1280x720 window at 60 TPS
// showing the fixed 3x3 grid.
func Default() *GridConfig {
	layout := entity.DefaultGridLayout()
	return &GridConfig{
		Display: DisplayConfig{
			Title:        "Tile Grid",
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Framerate:    60,
		},
		Layout: LayoutConfig{
			Cols:     layout.Cols,
			Rows:     layout.Rows,
			CellSize: layout.CellSize,
			Spacing:  layout.Spacing,
		},
	}
}
