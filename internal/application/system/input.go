package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/tilegrid/internal/domain/screen"
)

// InputState holds the pointer state for the current frame.
// X and Y are absolute window coordinates (origin top-left, y-down).
type InputState struct {
	WindowW  float64
	WindowH  float64
	X        float64
	Y        float64
	InWindow bool // false when the host has no cursor position
	// Rising edge of the primary button this frame
	LeftJustPressed bool
}

// InputSource produces one InputState per frame
type InputSource interface {
	GetInput() InputState
}

// Relative returns the pointer position in world coordinates (origin at the
// window center, y-up). ok is false when there is no cursor position.
func (in InputState) Relative() (pos mgl64.Vec2, ok bool) {
	if !in.InWindow {
		return mgl64.Vec2{}, false
	}
	x, y := screen.ToRelative(in.WindowW, in.WindowH, in.X, in.Y)
	return mgl64.Vec2{x, y}, true
}

// PointerSystem reads the pointer from ebiten
type PointerSystem struct {
	screenW int
	screenH int
}

// NewPointerSystem creates a pointer system for a logical screen size
func NewPointerSystem(screenW, screenH int) *PointerSystem {
	return &PointerSystem{screenW: screenW, screenH: screenH}
}

// GetInput reads the current pointer state
func (s *PointerSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return s.makeInput(mx, my, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
}

// makeInput builds the frame state from raw cursor values.
// ebiten keeps reporting the last position once the cursor leaves the
// window, so presence is derived from the logical screen bounds.
func (s *PointerSystem) makeInput(mx, my int, justPressed bool) InputState {
	w, h := float64(s.screenW), float64(s.screenH)
	x, y := float64(mx), float64(my)
	return InputState{
		WindowW:         w,
		WindowH:         h,
		X:               x,
		Y:               y,
		InWindow:        screen.InBounds(w, h, x, y),
		LeftJustPressed: justPressed,
	}
}
