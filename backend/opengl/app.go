package opengl

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// FrameFunc draws one frame. t is the time in seconds since GLFW started.
type FrameFunc func(t float64)

// SetupFunc creates a demo's programs and meshes and returns its frame
// function. Resources created through the App are released when Run returns.
type SetupFunc func(app *App) (FrameFunc, error)

// App owns the window, the driver and everything a demo creates through it.
type App struct {
	Config learngl.Config
	Window *Window
	Driver *Driver
	Logger *slog.Logger

	programs []*learngl.ShaderProgram
	sources  []programSource
	meshes   []*Mesh
}

type programSource struct {
	program              *learngl.ShaderProgram
	vertexPath, fragPath string
}

// Run opens a window for cfg, calls setup once and then runs the frame loop
// until the window closes:
//
//  1. poll input (Esc closes, W toggles wireframe, R reloads shaders)
//  2. rebuild file-backed programs if requested or their files changed
//  3. clear, call the frame function, swap buffers
//
// Run must be called from the main thread; demo mains lock it in init.
func Run(cfg learngl.Config, logger *slog.Logger, setup SetupFunc) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	logger.Info("context ready", "title", cfg.Title, "gl", cfg.GL.String(),
		"width", window.State().Width, "height", window.State().Height)

	app := &App{
		Config: cfg,
		Window: window,
		Driver: NewDriver(),
		Logger: logger,
	}
	defer app.release()

	frame, err := setup(app)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	var reloader *learngl.Reloader
	if cfg.Shaders.HotReload && len(app.sources) > 0 {
		reloader, err = learngl.NewReloader(logger, app.watchedPaths()...)
		if err != nil {
			return err
		}
		defer reloader.Close()
	}

	state := window.State()
	SetWireframe(state.Wireframe)

	for !window.ShouldClose() {
		in := window.Update()
		if state.HandleInput(in) {
			SetWireframe(state.Wireframe)
		}
		if state.ReloadRequested || (reloader != nil && reloader.Changed()) {
			state.ReloadRequested = false
			app.reload()
		}

		Clear(cfg.Clear())
		frame(glfw.GetTime())
		window.SwapBuffers()
	}

	return nil
}

// LoadProgram builds a program from shader files. The program takes part in
// reloading and is deleted when Run returns.
func (a *App) LoadProgram(vertexPath, fragmentPath string, opts ...learngl.Option) (*learngl.ShaderProgram, error) {
	p, err := learngl.LoadShaderProgram(a.Driver, vertexPath, fragmentPath, a.options(opts)...)
	if err != nil {
		return nil, err
	}
	a.programs = append(a.programs, p)
	a.sources = append(a.sources, programSource{program: p, vertexPath: vertexPath, fragPath: fragmentPath})
	return p, nil
}

// LoadProgramFS builds a program from shader files in fsys, for example an
// embedded directory. Such programs are not reloaded.
func (a *App) LoadProgramFS(fsys fs.FS, vertexPath, fragmentPath string, opts ...learngl.Option) (*learngl.ShaderProgram, error) {
	opts = append(opts, learngl.WithFS(fsys))
	p, err := learngl.LoadShaderProgram(a.Driver, vertexPath, fragmentPath, a.options(opts)...)
	if err != nil {
		return nil, err
	}
	a.programs = append(a.programs, p)
	return p, nil
}

// NewProgram builds a program from in-memory sources.
func (a *App) NewProgram(vertexSrc, fragmentSrc string, opts ...learngl.Option) (*learngl.ShaderProgram, error) {
	p, err := learngl.NewShaderProgram(a.Driver, vertexSrc, fragmentSrc, a.options(opts)...)
	if err != nil {
		return nil, err
	}
	a.programs = append(a.programs, p)
	return p, nil
}

// NewMesh uploads a mesh that is deleted when Run returns.
func (a *App) NewMesh(m learngl.Mesh) (*Mesh, error) {
	gm, err := NewMesh(m)
	if err != nil {
		return nil, err
	}
	a.meshes = append(a.meshes, gm)
	return gm, nil
}

func (a *App) options(opts []learngl.Option) []learngl.Option {
	return append([]learngl.Option{learngl.WithLogger(a.Logger)}, opts...)
}

func (a *App) watchedPaths() []string {
	paths := make([]string, 0, 2*len(a.sources))
	for _, s := range a.sources {
		paths = append(paths, s.vertexPath, s.fragPath)
	}
	return paths
}

// reload rebuilds every file-backed program. A program whose rebuild fails
// keeps running with its previous handle.
func (a *App) reload() {
	for _, s := range a.sources {
		if err := s.program.Reload(s.vertexPath, s.fragPath); err != nil {
			a.Logger.Error("shader reload failed, keeping previous program",
				"vertex", s.vertexPath, "fragment", s.fragPath, "err", err)
			continue
		}
		a.Logger.Info("shaders reloaded", "vertex", s.vertexPath, "fragment", s.fragPath)
	}
}

func (a *App) release() {
	for _, m := range a.meshes {
		m.Delete()
	}
	for _, p := range a.programs {
		p.Delete()
	}
}
