// Uniformcolor draws a triangle whose color is set from the host every
// frame through a vec4 uniform; the green channel pulses over time.
// The shaders are embedded in the binary.
//
// Prerequisites:
//
//	devbox shell
//	go run ./example/uniformcolor/
package main

import (
	"embed"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

//go:embed shaders
var shaders embed.FS

var (
	configPath = flag.String("config", "", "TOML configuration file")
	wireframe  = flag.Bool("wireframe", false, "start in wireframe mode")
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

	return opengl.Run(cfg, nil, func(app *opengl.App) (opengl.FrameFunc, error) {
		prog, err := app.LoadProgramFS(shaders, "shaders/uniform.vert", "shaders/uniform.frag")
		if err != nil {
			return nil, err
		}
		tri, err := app.NewMesh(learngl.Triangle())
		if err != nil {
			return nil, err
		}

		return func(t float64) {
			c := learngl.PulseColor(learngl.ColorBlack, t)
			prog.Use()
			prog.SetVec4("ourColor", c.R, c.G, c.B, c.A)
			tri.Draw()
		}, nil
	})
}
