package ecs

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds all component maps and the next entity ID.
// It plays the host's entity store: the grid logic only reads tiles and
// writes material colors through it.
type World struct {
	nextID EntityID

	// Components
	Transform map[EntityID]Transform
	Material  map[EntityID]Material
	TileData  map[EntityID]entity.Tile

	// Tags
	IsMesh map[EntityID]struct{}
	IsTile map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Transform: make(map[EntityID]Transform),
		Material:  make(map[EntityID]Material),
		TileData:  make(map[EntityID]entity.Tile),
		IsMesh:    make(map[EntityID]struct{}),
		IsTile:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Material, id)
	delete(w.TileData, id)
	delete(w.IsMesh, id)
	delete(w.IsTile, id)
}

// Exists checks if an entity has any component
func (w *World) Exists(id EntityID) bool {
	if _, ok := w.Transform[id]; ok {
		return true
	}
	_, ok := w.TileData[id]
	return ok
}

// CreateMesh creates a flat colored quad centered at pos with the given size
func (w *World) CreateMesh(pos, size mgl64.Vec2, c color.RGBA) EntityID {
	id := w.NewEntity()

	w.Transform[id] = Transform{Translation: pos, Scale: size}
	w.Material[id] = Material{Color: c}
	w.IsMesh[id] = struct{}{}

	return id
}

// CreateTile creates a logical tile entity. The tile's Visual must already
// refer to a mesh in this world.
func (w *World) CreateTile(tile entity.Tile) EntityID {
	id := w.NewEntity()

	w.TileData[id] = tile
	w.IsTile[id] = struct{}{}

	return id
}

// Tiles returns every tile ordered by ordinal
func (w *World) Tiles() []entity.Tile {
	tiles := make([]entity.Tile, 0, len(w.IsTile))
	for id := range w.IsTile {
		tiles = append(tiles, w.TileData[id])
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Number < tiles[j].Number
	})
	return tiles
}

// Meshes returns every mesh entity in creation order
func (w *World) Meshes() []EntityID {
	ids := make([]EntityID, 0, len(w.IsMesh))
	for id := range w.IsMesh {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Color returns the material color of a rendered element
func (w *World) Color(id EntityID) (color.RGBA, bool) {
	m, ok := w.Material[id]
	return m.Color, ok
}

// SetColor sets the material color of a rendered element.
// Returns false if the entity has no material.
func (w *World) SetColor(id EntityID, c color.RGBA) bool {
	m, ok := w.Material[id]
	if !ok {
		return false
	}
	m.Color = c
	w.Material[id] = m
	return true
}

// CountTiles returns the number of tile entities
func (w *World) CountTiles() int {
	return len(w.IsTile)
}
