package replay

// FrameInput records pointer state for a single frame
type FrameInput struct {
	F     int     `json:"f"`               // Frame number
	MX    float64 `json:"mx"`              // MouseX (absolute)
	MY    float64 `json:"my"`              // MouseY (absolute)
	Out   bool    `json:"out,omitempty"`   // Cursor outside the window
	Click bool    `json:"click,omitempty"` // Left button went down this frame
}

// WindowSize is the logical window size the frames were captured in
type WindowSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// ReplayData is a scripted pointer session
type ReplayData struct {
	Version string       `json:"version"`
	Name    string       `json:"name"`
	Window  WindowSize   `json:"window"`
	Frames  []FrameInput `json:"frames"`
}
