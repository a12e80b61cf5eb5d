package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// Window is a GLFW window with a current OpenGL context. Its callbacks feed
// a RenderState and an InputState owned by the window.
type Window struct {
	window *glfw.Window
	state  *learngl.RenderState
	input  *learngl.InputState
}

// WindowOption configures window creation.
type WindowOption func(*windowOptions)

type windowOptions struct {
	hidden bool
}

// Hidden creates the window invisible, for offscreen rendering.
func Hidden() WindowOption {
	return func(o *windowOptions) {
		o.hidden = true
	}
}

// OpenWindow creates a window as described by cfg, makes its context
// current and loads the OpenGL entry points. glfw.Init must have been called
// on the main thread.
func OpenWindow(cfg learngl.Config, opts ...WindowOption) (*Window, error) {
	var wo windowOptions
	for _, opt := range opts {
		opt(&wo)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if wo.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	width, height := cfg.WindowSize()
	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	w := &Window{
		window: window,
		state:  learngl.NewRenderState(width, height, cfg.Wireframe),
		input:  learngl.NewInputState(),
	}

	// The framebuffer may differ from the window size on HiDPI displays.
	fbw, fbh := window.GetFramebufferSize()
	w.state.Resize(fbw, fbh)
	Viewport(w.state.Width, w.state.Height)

	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	window.SetKeyCallback(w.keyCallback)

	return w, nil
}

// Update polls window events and returns this frame's input.
// Call this at the start of each frame.
func (w *Window) Update() *learngl.InputState {
	w.input.Reset()
	glfw.PollEvents()
	return w.input
}

// State returns the window's render state.
func (w *Window) State() *learngl.RenderState {
	return w.state
}

// Input returns the current input state.
func (w *Window) Input() *learngl.InputState {
	return w.input
}

// ShouldClose reports whether the window was asked to close, either by the
// window system or through the render state.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose() || w.state.CloseRequested
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Destroy closes the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if w.state.Resize(width, height) {
		Viewport(width, height)
	}
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == learngl.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

// glfwKeyToKey maps GLFW keys to learngl keys.
func glfwKeyToKey(key glfw.Key) learngl.Key {
	switch key {
	case glfw.KeyEscape:
		return learngl.KeyEscape
	case glfw.KeyW:
		return learngl.KeyW
	case glfw.KeyR:
		return learngl.KeyR
	case glfw.KeySpace:
		return learngl.KeySpace
	default:
		return learngl.KeyNone
	}
}
