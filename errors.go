package learngl

import "fmt"

// FileReadError is returned when a shader source file cannot be read.
type FileReadError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s shader %q: %v", e.Stage, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ShaderCompileError carries the driver's compile log for one stage.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the driver's link log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}
