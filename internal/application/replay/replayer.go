package replay

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/younwookim/tilegrid/internal/application/system"
)

// Replayer plays back recorded pointer frames as an input source
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a JSON file in fsys
func LoadReplay(fsys fs.FS, name string) (*ReplayData, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay %s: %w", name, err)
	}

	var data ReplayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode replay %s: %w", name, err)
	}
	if data.Window.W <= 0 || data.Window.H <= 0 {
		return nil, fmt.Errorf("replay %s: window size must be positive, got %dx%d",
			name, data.Window.W, data.Window.H)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return r.idle(), false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		WindowW:         float64(r.data.Window.W),
		WindowH:         float64(r.data.Window.H),
		X:               fi.MX,
		Y:               fi.MY,
		InWindow:        !fi.Out,
		LeftJustPressed: fi.Click,
	}, true
}

// GetInput implements system.InputSource. After the last frame the pointer
// is reported as outside the window.
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

func (r *Replayer) idle() system.InputState {
	return system.InputState{
		WindowW: float64(r.data.Window.W),
		WindowH: float64(r.data.Window.H),
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data holding the pointer still
func CreateTestReplayData(frames int, mouseX, mouseY float64) ReplayData {
	data := ReplayData{
		Version: "1.0",
		Name:    "test",
		Window:  WindowSize{W: 800, H: 600},
		Frames:  make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
