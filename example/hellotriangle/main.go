// Hellotriangle draws a single orange triangle with shaders compiled from
// inline sources.
//
// Prerequisites:
//
//	devbox shell                       # provides Go + OpenGL/X11 headers
//	go run ./example/hellotriangle/    # run this example
//
// Press W to toggle wireframe, Esc to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentShaderSource = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

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
		prog, err := app.NewProgram(vertexShaderSource, fragmentShaderSource)
		if err != nil {
			return nil, err
		}
		tri, err := app.NewMesh(learngl.Triangle())
		if err != nil {
			return nil, err
		}

		return func(float64) {
			prog.Use()
			tri.Draw()
		}, nil
	})
}
