// Package grid provides the tile grid scene.
package grid

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/tilegrid/internal/application/scene"
	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/domain/entity"
	"github.com/younwookim/tilegrid/internal/domain/screen"
	"github.com/younwookim/tilegrid/internal/ecs"
	"github.com/younwookim/tilegrid/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG    = color.RGBA{102, 102, 102, 255}
	colorGuide = color.RGBA{255, 255, 255, 255}
)

// Grid is the interactive tile grid scene
type Grid struct {
	world   *ecs.World
	layout  entity.GridLayout
	input   system.InputSource
	hover   *system.HoverSystem
	click   *system.ClickSystem
	logger  *log.Logger
	screenW int
	screenH int

	// Decoration
	guides []system.Segment
	border system.Bounds

	// Last frame results, for the status line
	hovered    []int
	lastClicks []system.ClickRecord
}

// New creates a new Grid scene reading pointer state from input.
// Tiles are spawned on the first OnEnter.
func New(cfg *config.GridConfig, input system.InputSource, logger *log.Logger) *Grid {
	world := ecs.NewWorld()
	layout := cfg.Layout.GridLayout()
	guides, border := system.GridGuides(layout)

	return &Grid{
		world:   world,
		layout:  layout,
		input:   input,
		hover:   system.NewHoverSystem(world),
		click:   system.NewClickSystem(world, logger),
		logger:  logger,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		guides:  guides,
		border:  border,
	}
}

// World returns the entity store backing the scene
func (g *Grid) World() *ecs.World {
	return g.world
}

// OnEnter spawns the grid the first time the scene is entered
func (g *Grid) OnEnter() {
	if g.world.CountTiles() > 0 {
		return
	}
	system.SetupGrid(g.world, g.layout, g.logger)
}

// OnExit implements scene.Scene
func (g *Grid) OnExit() {}

// Update runs click logging and hover highlighting for one frame
// (implements scene.Scene).
func (g *Grid) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}

	input := g.input.GetInput()

	if clicks := g.click.Update(input); len(clicks) > 0 {
		g.lastClicks = clicks
	}
	g.hovered = g.hover.Update(input)

	return nil, nil // nil = stay on this scene
}

// Draw renders tiles, then guide lines on top
func (g *Grid) Draw(dst *ebiten.Image) {
	dst.Fill(colorBG)

	g.drawTiles(dst)
	g.drawGuides(dst)

	ebitenutil.DebugPrint(dst, g.statusText())
}

func (g *Grid) drawTiles(dst *ebiten.Image) {
	for _, id := range g.world.Meshes() {
		mat := g.world.Material[id]
		if !mat.Visible() {
			continue
		}
		x, y, w, h := g.screenRect(g.world.Transform[id])
		ebitenutil.DrawRect(dst, x, y, w, h, mat.Color)
	}
}

func (g *Grid) drawGuides(dst *ebiten.Image) {
	for _, line := range g.guides {
		g.drawSegment(dst, line)
	}
	for _, edge := range g.border.Edges() {
		g.drawSegment(dst, edge)
	}
}

func (g *Grid) drawSegment(dst *ebiten.Image, s system.Segment) {
	from := g.toScreen(s.From)
	to := g.toScreen(s.To)
	ebitenutil.DrawLine(dst, from.X(), from.Y(), to.X(), to.Y(), colorGuide)
}

// screenRect converts a world transform to a screen rectangle (top-left
// corner and size). World y grows upward, so the top edge is origin+size.
func (g *Grid) screenRect(t ecs.Transform) (x, y, w, h float64) {
	origin, size := t.Rect()
	topLeft := g.toScreen(mgl64.Vec2{origin.X(), origin.Y() + size.Y()})
	return topLeft.X(), topLeft.Y(), size.X(), size.Y()
}

func (g *Grid) toScreen(p mgl64.Vec2) mgl64.Vec2 {
	return screen.ToAbsoluteVec(mgl64.Vec2{float64(g.screenW), float64(g.screenH)}, p)
}

func (g *Grid) statusText() string {
	text := "Hover a tile to highlight it | LClick: log tile | ESC: quit"
	if len(g.hovered) > 0 {
		text += fmt.Sprintf("\nHovered: %v", g.hovered)
	}
	if len(g.lastClicks) > 0 {
		text += fmt.Sprintf("\nLast click: tile %d", g.lastClicks[0].Number)
	}
	return text
}
