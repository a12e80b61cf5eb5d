package learngl

// Key represents a keyboard key the demos react to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyW // toggle wireframe
	KeyR // force shader reload
	KeySpace
	KeyCount
)

// InputState holds keyboard state for the current frame.
// It is populated by the window backend from GLFW callbacks.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before polling events.
func (s *InputState) Reset() {
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
// Holding the key does not report it again.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was released this frame.
func (s *InputState) KeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyEscape:
		return "Esc"
	case KeyW:
		return "W"
	case KeyR:
		return "R"
	case KeySpace:
		return "Space"
	default:
		return "--"
	}
}
