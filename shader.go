package learngl

import (
	"errors"
	"io/fs"
	"os"
)

// ShaderProgram is a linked program built from one vertex and one fragment
// stage. The stage objects are released as soon as linking has been
// attempted; only the program handle is retained.
//
// A program owns its driver handle until Delete is called:
//
//	prog, err := learngl.LoadShaderProgram(driver, "vertex.vert", "fragment.frag")
//	if err != nil {
//	    return err
//	}
//	defer prog.Delete()
type ShaderProgram struct {
	driver Driver
	handle uint32
	linked bool
	errs   []error
	locs   map[string]int32
	opts   options
}

// LoadShaderProgram reads the vertex and fragment sources from the given
// paths, compiles both stages and links them.
//
// By default any failure is returned: a *FileReadError before anything is
// created on the driver, or the joined *ShaderCompileError and
// *ProgramLinkError values after the program has been released again.
// With WithBestEffort the failures are logged and the program is returned
// regardless; see Linked and Errors.
func LoadShaderProgram(d Driver, vertexPath, fragmentPath string, opts ...Option) (*ShaderProgram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var readErrs []error
	vertexSrc, err := o.readSource(StageVertex, vertexPath)
	if err != nil {
		readErrs = append(readErrs, err)
	}
	fragmentSrc, err := o.readSource(StageFragment, fragmentPath)
	if err != nil {
		readErrs = append(readErrs, err)
	}

	if len(readErrs) > 0 {
		if !o.bestEffort {
			return nil, errors.Join(readErrs...)
		}
		for _, err := range readErrs {
			o.log().Error("shader source not read", "err", err)
		}
	}

	p := build(d, vertexSrc, fragmentSrc, o)
	p.errs = append(readErrs, p.errs...)
	return p.result()
}

// NewShaderProgram compiles and links a program from in-memory sources.
// Error handling follows LoadShaderProgram.
func NewShaderProgram(d Driver, vertexSrc, fragmentSrc string, opts ...Option) (*ShaderProgram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return build(d, vertexSrc, fragmentSrc, o).result()
}

func (o *options) readSource(stage Stage, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if o.fsys != nil {
		b, err = fs.ReadFile(o.fsys, path)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", &FileReadError{Stage: stage, Path: path, Err: err}
	}
	return string(b), nil
}

func build(d Driver, vertexSrc, fragmentSrc string, o options) *ShaderProgram {
	p := &ShaderProgram{
		driver: d,
		locs:   make(map[string]int32),
		opts:   o,
	}

	// Both stages are always compiled so that every diagnostic is reported.
	vert := p.compile(StageVertex, vertexSrc)
	frag := p.compile(StageFragment, fragmentSrc)

	p.handle = d.CreateProgram()
	d.AttachShader(p.handle, vert)
	d.AttachShader(p.handle, frag)
	d.LinkProgram(p.handle)

	p.linked = d.ProgramLinked(p.handle)
	if !p.linked {
		p.fail(&ProgramLinkError{Log: d.ProgramInfoLog(p.handle, o.infoLogSize)})
	}

	d.DeleteShader(vert)
	d.DeleteShader(frag)

	return p
}

func (p *ShaderProgram) compile(stage Stage, src string) uint32 {
	shader := p.driver.CreateShader(stage)
	p.driver.CompileShader(shader, src)
	if !p.driver.ShaderCompiled(shader) {
		p.fail(&ShaderCompileError{
			Stage: stage,
			Log:   p.driver.ShaderInfoLog(shader, p.opts.infoLogSize),
		})
	}
	return shader
}

func (p *ShaderProgram) fail(err error) {
	p.errs = append(p.errs, err)
	if p.opts.bestEffort {
		p.opts.log().Error("shader program build", "err", err)
	}
}

func (p *ShaderProgram) result() (*ShaderProgram, error) {
	if len(p.errs) == 0 || p.opts.bestEffort {
		return p, nil
	}
	err := errors.Join(p.errs...)
	p.Delete()
	return nil, err
}

// Reload rebuilds the program from new source files with the options it was
// created with. The rebuild is always fail-fast: on error the current program
// is left untouched and remains usable. On success the old handle is released
// and, if it was active, the new program is activated in its place.
func (p *ShaderProgram) Reload(vertexPath, fragmentPath string) error {
	o := p.opts
	o.bestEffort = false

	vertexSrc, err := o.readSource(StageVertex, vertexPath)
	if err != nil {
		return err
	}
	fragmentSrc, err := o.readSource(StageFragment, fragmentPath)
	if err != nil {
		return err
	}
	next, err := build(p.driver, vertexSrc, fragmentSrc, o).result()
	if err != nil {
		return err
	}

	active := p.handle != 0 && p.driver.CurrentProgram() == p.handle
	p.Delete()
	p.handle = next.handle
	p.linked = next.linked
	p.errs = nil
	if active {
		p.Use()
	}
	return nil
}

// Handle returns the driver's program handle, or 0 after Delete.
func (p *ShaderProgram) Handle() uint32 {
	return p.handle
}

// Linked reports whether the last link attempt succeeded.
func (p *ShaderProgram) Linked() bool {
	return p.linked
}

// Errors returns the diagnostics collected during construction.
// Only a best-effort build can return a program with errors.
func (p *ShaderProgram) Errors() []error {
	return append([]error(nil), p.errs...)
}

// Use makes this the active program for subsequent draw calls.
func (p *ShaderProgram) Use() {
	if p.handle == 0 {
		return
	}
	p.driver.UseProgram(p.handle)
}

// UniformLocation resolves a uniform name. The boolean is false when the
// name is not an active uniform of the program, for example because the
// compiler removed it as unused.
func (p *ShaderProgram) UniformLocation(name string) (int32, bool) {
	if p.handle == 0 {
		return -1, false
	}
	loc, ok := p.locs[name]
	if !ok {
		loc = p.driver.UniformLocation(p.handle, name)
		p.locs[name] = loc
		if loc < 0 && p.opts.warnUniforms {
			p.opts.log().Warn("uniform not found", "name", name, "program", p.handle)
		}
	}
	return loc, loc >= 0
}

// The setters below write to the currently active program, so Use must be
// called first. Unknown names are ignored.

// SetInt sets an int (or sampler) uniform.
func (p *ShaderProgram) SetInt(name string, v int32) {
	if loc, ok := p.UniformLocation(name); ok {
		p.driver.Uniform1i(loc, v)
	}
}

// SetBool sets a bool uniform.
func (p *ShaderProgram) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetFloat sets a float uniform.
func (p *ShaderProgram) SetFloat(name string, v float32) {
	if loc, ok := p.UniformLocation(name); ok {
		p.driver.Uniform1f(loc, v)
	}
}

// SetVec4 sets a vec4 uniform.
func (p *ShaderProgram) SetVec4(name string, x, y, z, w float32) {
	if loc, ok := p.UniformLocation(name); ok {
		p.driver.Uniform4f(loc, x, y, z, w)
	}
}

// Delete releases the program. It is safe to call more than once.
func (p *ShaderProgram) Delete() {
	if p.handle == 0 {
		return
	}
	p.driver.DeleteProgram(p.handle)
	p.handle = 0
	p.linked = false
	clear(p.locs)
}
