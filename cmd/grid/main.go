package main

import (
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilegrid/internal/application/game"
	"github.com/younwookim/tilegrid/internal/application/scene/grid"
	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/infrastructure/config"
)

// loadConfig reads grid.json from the embedded configs directory
func loadConfig(fsys fs.FS) (*config.GridConfig, error) {
	sub, err := fs.Sub(fsys, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub, "configs").LoadGrid()
}

func main() {
	cfg, err := loadConfig(configFS)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Tile positions and clicks are reported on stdout, one line each
	out := log.New(os.Stdout, "", 0)

	display := cfg.Display
	input := system.NewPointerSystem(display.ScreenWidth, display.ScreenHeight)
	g := game.New(grid.New(cfg, input, out), display)

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
