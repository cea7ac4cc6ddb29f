// Package screen maps between window pixel coordinates and world coordinates.
//
// Absolute coordinates have their origin at the window's top-left corner with
// y growing downward (what the input layer reports). Relative coordinates have
// their origin at the window center with y growing upward (what tiles use).
package screen

import "github.com/go-gl/mathgl/mgl64"

// ToRelative converts an absolute window position to a relative one
func ToRelative(windowW, windowH, absX, absY float64) (float64, float64) {
	return absX - windowW/2, windowH/2 - absY
}

// ToAbsolute converts a relative position back to absolute window coordinates
func ToAbsolute(windowW, windowH, relX, relY float64) (float64, float64) {
	return relX + windowW/2, windowH/2 - relY
}

// ToRelativeVec is ToRelative over vectors
func ToRelativeVec(window, abs mgl64.Vec2) mgl64.Vec2 {
	x, y := ToRelative(window.X(), window.Y(), abs.X(), abs.Y())
	return mgl64.Vec2{x, y}
}

// ToAbsoluteVec is ToAbsolute over vectors
func ToAbsoluteVec(window, rel mgl64.Vec2) mgl64.Vec2 {
	x, y := ToAbsolute(window.X(), window.Y(), rel.X(), rel.Y())
	return mgl64.Vec2{x, y}
}

// InBounds reports whether an absolute position lies inside a window of the
// given size.
func InBounds(windowW, windowH, absX, absY float64) bool {
	return absX >= 0 && absX < windowW && absY >= 0 && absY < windowH
}
