// Vertexcolors draws a triangle whose corner colors are interpolated across
// its surface. The shaders are loaded from disk and the triangle sways
// horizontally through the "offset" uniform.
//
// Prerequisites:
//
//	devbox shell
//	go run ./example/vertexcolors/ -reload
//
// Edit vertex.vert or fragment.frag while it runs with -reload (or press R)
// to rebuild the program. Press W to toggle wireframe, Esc to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	shaderDir  = flag.String("shaders", filepath.Join("example", "vertexcolors"), "directory containing the shader files")
	wireframe  = flag.Bool("wireframe", false, "start in wireframe mode")
	reload     = flag.Bool("reload", false, "rebuild shaders when their files change")
	verbose    = flag.Bool("v", false, "debug logging")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := learngl.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.Wireframe = cfg.Wireframe || *wireframe
	cfg.Shaders.HotReload = cfg.Shaders.HotReload || *reload

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	vertexPath := filepath.Join(*shaderDir, cfg.Shaders.Vertex)
	fragmentPath := filepath.Join(*shaderDir, cfg.Shaders.Fragment)

	return opengl.Run(cfg, logger, func(app *opengl.App) (opengl.FrameFunc, error) {
		prog, err := app.LoadProgram(vertexPath, fragmentPath, learngl.WithMissingUniformWarnings())
		if err != nil {
			return nil, err
		}
		tri, err := app.NewMesh(learngl.ColoredTriangle())
		if err != nil {
			return nil, err
		}

		return func(t float64) {
			prog.Use()
			prog.SetFloat("offset", learngl.Offset(t, 0.3))
			tri.Draw()
		}, nil
	})
}
