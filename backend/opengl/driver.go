// Package opengl implements learngl on OpenGL 3.3 core with GLFW windows.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/learngl"
)

// Driver implements learngl.Driver with go-gl.
// A context must be current and Init must have been called.
type Driver struct{}

var _ learngl.Driver = (*Driver)(nil)

// NewDriver returns a Driver for the current context.
func NewDriver() *Driver {
	return &Driver{}
}

// Init loads the OpenGL entry points. Call it once after a context has been
// made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

var shaderTypes = map[learngl.Stage]uint32{
	learngl.StageVertex:   gl.VERTEX_SHADER,
	learngl.StageFragment: gl.FRAGMENT_SHADER,
}

func (*Driver) CreateShader(stage learngl.Stage) uint32 {
	return gl.CreateShader(shaderTypes[stage])
}

func (*Driver) CompileShader(shader uint32, source string) {
	csource, free := gl.Strs(cstr(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)
}

func (*Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*Driver) ShaderInfoLog(shader uint32, maxLen int) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	return infoLog(logLength, maxLen, func(n int32, written *int32, buf *uint8) {
		gl.GetShaderInfoLog(shader, n, written, buf)
	})
}

func (*Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*Driver) ProgramInfoLog(program uint32, maxLen int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return infoLog(logLength, maxLen, func(n int32, written *int32, buf *uint8) {
		gl.GetProgramInfoLog(program, n, written, buf)
	})
}

func (*Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*Driver) CurrentProgram() uint32 {
	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	return uint32(current)
}

func (*Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (*Driver) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (*Driver) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (*Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

// infoLog reads a driver log of logLength bytes (terminator included),
// truncated to maxLen.
func infoLog(logLength int32, maxLen int, get func(n int32, written *int32, buf *uint8)) string {
	n := min(logLength, int32(maxLen))
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var written int32
	get(n, &written, &buf[0])
	return string(buf[:written])
}

// cstr returns s with the NUL terminator go-gl expects.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
