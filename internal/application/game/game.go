// Package game provides the ebiten.Game that drives the current Scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilegrid/internal/application/scene"
	"github.com/younwookim/tilegrid/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a new Game sized and timed from the display config.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	dt := 1.0 / 60.0
	if display.Framerate > 0 {
		dt = 1.0 / float64(display.Framerate)
	}

	g := &Game{
		current: initialScene,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update runs one frame of the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size, so cursor positions are
// always reported in the same coordinate space regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Frames returns the number of completed updates
func (g *Game) Frames() int {
	return g.frames
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
