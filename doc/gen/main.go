// Command gen renders every demo scene in a hidden window, captures the
// framebuffer, and saves JPEG screenshots to doc/imgs/. It also checks that
// the uniform color scene produces exactly the color that was set.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const passthroughVertex = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 ourColor;

void main() {
    gl_Position = vec4(aPos, 1.0);
    ourColor = aColor;
}
`

const vertexColorFragment = `
#version 330 core
in vec3 ourColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(ourColor, 1.0);
}
`

const uniformColorFragment = `
#version 330 core
out vec4 FragColor;

uniform vec4 ourColor;

void main() {
    FragColor = ourColor;
}
`

// screenshot defines a single scene to capture.
type screenshot struct {
	name     string
	fragment string
	mesh     learngl.Mesh
	uniforms func(p *learngl.ShaderProgram)
	// expect, if set, is the exact color required at the image center.
	expect *learngl.Color
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	cfg := learngl.DefaultConfig()
	cfg.Title = "screenshot-gen"
	cfg.VSync = false

	window, err := opengl.OpenWindow(cfg, opengl.Hidden())
	if err != nil {
		return err
	}
	defer window.Destroy()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	driver := opengl.NewDriver()
	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(driver, cfg, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, cfg.Width, cfg.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(driver *opengl.Driver, cfg learngl.Config, s screenshot, outDir string) error {
	prog, err := learngl.NewShaderProgram(driver, passthroughVertex, s.fragment)
	if err != nil {
		return err
	}
	defer prog.Delete()

	mesh, err := opengl.NewMesh(s.mesh)
	if err != nil {
		return err
	}
	defer mesh.Delete()

	// Draw into the back buffer and read it before swapping; the hidden
	// window stays at its initial size.
	opengl.Viewport(cfg.Width, cfg.Height)
	opengl.Clear(cfg.Clear())
	prog.Use()
	if s.uniforms != nil {
		s.uniforms(prog)
	}
	mesh.Draw()

	img := opengl.ReadPixels(cfg.Width, cfg.Height)

	if s.expect != nil {
		if err := checkCenter(img, *s.expect); err != nil {
			return err
		}
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func checkCenter(img *image.RGBA, want learngl.Color) error {
	b := img.Bounds()
	got := img.RGBAAt(b.Dx()/2, b.Dy()/2)
	r, g, bl, a := want.RGBA8()
	if got.R != r || got.G != g || got.B != bl || got.A != a {
		return fmt.Errorf("center pixel = %v, want (%d,%d,%d,%d)", got, r, g, bl, a)
	}
	return nil
}

// buildScreenshots returns the list of all scenes to capture.
func buildScreenshots() []screenshot {
	green := learngl.ColorGreen

	return []screenshot{
		{
			name:     "vertex_colors",
			fragment: vertexColorFragment,
			mesh:     learngl.ColoredTriangle(),
		},
		{
			name:     "uniform_color",
			fragment: uniformColorFragment,
			mesh:     learngl.Triangle(),
			uniforms: func(p *learngl.ShaderProgram) {
				p.SetVec4("ourColor", green.R, green.G, green.B, green.A)
			},
			expect: &green,
		},
		{
			name:     "quad",
			fragment: vertexColorFragment,
			mesh:     learngl.Quad(),
		},
	}
}
