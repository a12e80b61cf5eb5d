package learngl

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config describes a demo window and the shaders it loads.
// It is read from TOML; keys that are absent keep their defaults.
//
//	title = "LearnOpenGl"
//	width = 800
//	height = 600
//	wireframe = false
//	clear_color = [0.2, 0.3, 0.3, 1.0]
//
//	[gl]
//	major = 3
//	minor = 3
//
//	[shaders]
//	vertex = "vertex.vert"
//	fragment = "fragment.frag"
//	hot_reload = true
type Config struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Fullscreen bool       `toml:"fullscreen"`
	Wireframe  bool       `toml:"wireframe"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"`

	// Window size used when Fullscreen is set.
	FullscreenWidth  int `toml:"fullscreen_width"`
	FullscreenHeight int `toml:"fullscreen_height"`

	GL      GLVersion     `toml:"gl"`
	Shaders ShaderSources `toml:"shaders"`
}

// GLVersion is the requested context version. Only core profiles are used.
type GLVersion struct {
	Major int `toml:"major"`
	Minor int `toml:"minor"`
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d core", v.Major, v.Minor)
}

// ShaderSources names the shader files a demo loads.
type ShaderSources struct {
	Vertex    string `toml:"vertex"`
	Fragment  string `toml:"fragment"`
	HotReload bool   `toml:"hot_reload"`
}

// DefaultConfig returns the configuration the demos use without a file.
func DefaultConfig() Config {
	return Config{
		Title:            "LearnOpenGl",
		Width:            800,
		Height:           600,
		FullscreenWidth:  2560,
		FullscreenHeight: 1440,
		VSync:            true,
		ClearColor:       [4]float32{ColorTeal.R, ColorTeal.G, ColorTeal.B, ColorTeal.A},
		GL:               GLVersion{Major: 3, Minor: 3},
		Shaders: ShaderSources{
			Vertex:   "vertex.vert",
			Fragment: "fragment.frag",
		},
	}
}

// LoadConfig reads a TOML configuration file over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("parse config: %s", strict.String())
		}
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration can create a window.
func (c Config) Validate() error {
	var errs []error
	w, h := c.WindowSize()
	if w <= 0 || h <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", w, h))
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %s is older than 3.3", c.GL))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %g outside 0..1", i, v))
		}
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("shader paths must not be empty"))
	}
	return errors.Join(errs...)
}

// WindowSize returns the size the window is created with.
func (c Config) WindowSize() (width, height int) {
	if c.Fullscreen {
		return c.FullscreenWidth, c.FullscreenHeight
	}
	return c.Width, c.Height
}

// Clear returns the clear color.
func (c Config) Clear() Color {
	return Color{c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3]}
}
