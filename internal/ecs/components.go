package ecs

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a rendered element in world space (origin at center, y-up)
type Transform struct {
	Translation mgl64.Vec2
	Scale       mgl64.Vec2 // rendered width/height of a unit quad
}

// Rect returns the element's axis-aligned bounds as min corner and size
func (t Transform) Rect() (origin, size mgl64.Vec2) {
	return t.Translation.Sub(t.Scale.Mul(0.5)), t.Scale
}

// Material holds the flat fill color of a rendered element
type Material struct {
	Color color.RGBA
}

// Visible reports whether drawing the material would change any pixel
func (m Material) Visible() bool {
	return m.Color.A > 0
}
