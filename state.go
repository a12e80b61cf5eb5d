package learngl

// RenderState is the per-window state the frame loop reads and the window
// callbacks write. One value is owned by each window; nothing here is global.
type RenderState struct {
	Width     int
	Height    int
	Wireframe bool

	// CloseRequested is set when the user asks the window to close.
	CloseRequested bool
	// ReloadRequested is set when shaders should be rebuilt this frame.
	ReloadRequested bool
}

// NewRenderState returns the state for a window of the given size.
func NewRenderState(width, height int, wireframe bool) *RenderState {
	return &RenderState{Width: width, Height: height, Wireframe: wireframe}
}

// Resize records a new framebuffer size. It reports whether the size
// changed. Zero or negative sizes, as reported while a window is minimized,
// are ignored.
func (s *RenderState) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == s.Width && height == s.Height {
		return false
	}
	s.Width = width
	s.Height = height
	return true
}

// Aspect returns width divided by height, or 1 for an empty size.
func (s *RenderState) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// ToggleWireframe flips polygon mode and returns the new setting.
func (s *RenderState) ToggleWireframe() bool {
	s.Wireframe = !s.Wireframe
	return s.Wireframe
}

// HandleInput applies one frame of input: Escape requests close, a W press
// toggles wireframe once per press, and an R press requests a shader reload.
// It reports whether the wireframe setting changed.
func (s *RenderState) HandleInput(in *InputState) bool {
	if in.KeyDown(KeyEscape) {
		s.CloseRequested = true
	}
	if in.KeyPressed(KeyR) {
		s.ReloadRequested = true
	}
	if in.KeyPressed(KeyW) {
		s.ToggleWireframe()
		return true
	}
	return false
}
