package learngl

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name as used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// Driver is the subset of the graphics API used to build and drive shader
// programs. All calls assume a context is current on the calling thread.
//
// The OpenGL implementation lives in backend/opengl.
type Driver interface {
	// CreateShader creates an empty shader object for the stage.
	CreateShader(stage Stage) uint32
	// CompileShader sets the source of a shader object and compiles it.
	CompileShader(shader uint32, source string)
	// ShaderCompiled reports the compile status of a shader object.
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most maxLen bytes of the shader's diagnostic log.
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramLinked reports the link status of a program object.
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most maxLen bytes of the program's link log.
	ProgramInfoLog(program uint32, maxLen int) string
	DeleteProgram(program uint32)

	UseProgram(program uint32)
	// CurrentProgram returns the program bound by the last UseProgram.
	CurrentProgram() uint32

	// UniformLocation returns -1 when the name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
}
