// Twotriangles draws two triangles side by side with two different programs,
// one draw call each, and an indexed quad behind them when Space is held.
//
// Prerequisites:
//
//	devbox shell
//	go run ./example/twotriangles/
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
    gl_Position = vec4(aPos, 1.0);
}
`

const orangeShaderSource = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const yellowShaderSource = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 1.0, 0.0, 1.0);
}
`

const quadShaderSource = `
#version 330 core
out vec4 FragColor;

uniform float shade;

void main() {
    FragColor = vec4(shade, shade, shade, 1.0);
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

type drawable struct {
	prog *learngl.ShaderProgram
	mesh *opengl.Mesh
}

func run() error {
	cfg, err := learngl.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.Wireframe = cfg.Wireframe || *wireframe

	return opengl.Run(cfg, nil, func(app *opengl.App) (opengl.FrameFunc, error) {
		left, err := newDrawable(app, orangeShaderSource, learngl.Triangle().Translate(-0.5, 0))
		if err != nil {
			return nil, fmt.Errorf("left triangle: %w", err)
		}
		right, err := newDrawable(app, yellowShaderSource, learngl.Triangle().Translate(0.5, 0))
		if err != nil {
			return nil, fmt.Errorf("right triangle: %w", err)
		}
		quad, err := newDrawable(app, quadShaderSource, learngl.Quad())
		if err != nil {
			return nil, fmt.Errorf("quad: %w", err)
		}

		input := app.Window.Input()
		return func(t float64) {
			if input.KeyDown(learngl.KeySpace) {
				quad.prog.Use()
				quad.prog.SetFloat("shade", 0.25+learngl.Pulse(t)/4)
				quad.mesh.Draw()
			}
			for _, d := range []drawable{left, right} {
				d.prog.Use()
				d.mesh.Draw()
			}
		}, nil
	})
}

func newDrawable(app *opengl.App, fragmentSrc string, m learngl.Mesh) (drawable, error) {
	prog, err := app.NewProgram(vertexShaderSource, fragmentSrc)
	if err != nil {
		return drawable{}, err
	}
	mesh, err := app.NewMesh(m)
	if err != nil {
		return drawable{}, err
	}
	return drawable{prog: prog, mesh: mesh}, nil
}
