package learngl

import (
	"fmt"
	"slices"
	"strings"
)

// fakeDriver is an in-memory Driver. It "compiles" GLSL by checking for a
// main function and balanced braces, and "links" by matching fragment
// inputs against vertex outputs. A uniform is active only when its name is
// referenced somewhere besides its declaration.
type fakeDriver struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32

	// longLogs pads every diagnostic log to 4096 bytes.
	longLogs bool

	useCalls      int
	uniformWrites int
}

type fakeShader struct {
	stage    Stage
	src      string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	locs     map[string]int32
	values   map[int32][]float32
}

var _ Driver = (*fakeDriver)(nil)

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (d *fakeDriver) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDriver) CompileShader(shader uint32, source string) {
	s := d.shaders[shader]
	s.src = source
	switch {
	case !strings.Contains(source, "void main"):
		s.log = "0:1(1): error: no main function found"
	case strings.Count(source, "{") != strings.Count(source, "}"):
		s.log = "0:1(1): error: syntax error, unexpected end of file"
	default:
		s.compiled = true
		s.log = ""
		return
	}
	s.log = d.pad(fmt.Sprintf("%s: %s", s.stage, s.log))
}

func (d *fakeDriver) ShaderCompiled(shader uint32) bool {
	return d.shaders[shader].compiled
}

func (d *fakeDriver) ShaderInfoLog(shader uint32, maxLen int) string {
	return truncateLog(d.shaders[shader].log, maxLen)
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	if s, ok := d.shaders[shader]; ok {
		s.deleted = true
	}
}

func (d *fakeDriver) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{
		locs:   make(map[string]int32),
		values: make(map[int32][]float32),
	}
	return id
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
}

func (d *fakeDriver) LinkProgram(program uint32) {
	p := d.programs[program]
	p.linked = false
	clear(p.locs)

	var vert, frag *fakeShader
	for _, id := range p.attached {
		s := d.shaders[id]
		if !s.compiled {
			p.log = d.pad("error: linking with uncompiled shader")
			return
		}
		switch s.stage {
		case StageVertex:
			vert = s
		case StageFragment:
			frag = s
		}
	}
	if vert == nil || frag == nil {
		p.log = d.pad("error: program lacks a vertex or fragment stage")
		return
	}

	outs := declared(vert.src, "out")
	for _, in := range declared(frag.src, "in") {
		if !slices.Contains(outs, in) {
			p.log = d.pad(fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", in))
			return
		}
	}

	var active []string
	for _, s := range []*fakeShader{vert, frag} {
		for _, u := range declared(s.src, "uniform") {
			if strings.Count(s.src, u) > 1 && !slices.Contains(active, u) {
				active = append(active, u)
			}
		}
	}
	slices.Sort(active)
	for i, u := range active {
		p.locs[u] = int32(i)
	}
	p.linked = true
	p.log = ""
}

func (d *fakeDriver) ProgramLinked(program uint32) bool {
	return d.programs[program].linked
}

func (d *fakeDriver) ProgramInfoLog(program uint32, maxLen int) string {
	return truncateLog(d.programs[program].log, maxLen)
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	delete(d.programs, program)
	if d.current == program {
		d.current = 0
	}
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.useCalls++
	d.current = program
}

func (d *fakeDriver) CurrentProgram() uint32 {
	return d.current
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return -1
	}
	loc, ok := p.locs[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *fakeDriver) write(location int32, v ...float32) {
	if location < 0 {
		return
	}
	p, ok := d.programs[d.current]
	if !ok {
		return
	}
	d.uniformWrites++
	p.values[location] = v
}

func (d *fakeDriver) Uniform1i(location int32, v int32) {
	d.write(location, float32(v))
}

func (d *fakeDriver) Uniform1f(location int32, v float32) {
	d.write(location, v)
}

func (d *fakeDriver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	d.write(location, v0, v1, v2, v3)
}

// uniform returns the value last written to a named uniform of a program.
func (d *fakeDriver) uniform(program uint32, name string) []float32 {
	p, ok := d.programs[program]
	if !ok {
		return nil
	}
	loc, ok := p.locs[name]
	if !ok {
		return nil
	}
	return p.values[loc]
}

// liveShaders counts shader objects that were created but not deleted.
func (d *fakeDriver) liveShaders() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

func (d *fakeDriver) pad(log string) string {
	if !d.longLogs || len(log) >= 4096 {
		return log
	}
	return log + strings.Repeat(".", 4096-len(log))
}

// truncateLog mimics glGet*InfoLog: at most maxLen-1 characters are
// returned, leaving room for the terminator.
func truncateLog(log string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(log) > maxLen-1 {
		return log[:maxLen-1]
	}
	return log
}

// declared returns the names of variables declared with the given storage
// qualifier, ignoring layout qualifiers.
func declared(src, qualifier string) []string {
	var names []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "layout") {
			if i := strings.Index(line, ")"); i >= 0 {
				line = strings.TrimSpace(line[i+1:])
			}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != qualifier {
			continue
		}
		names = append(names, strings.TrimSuffix(fields[2], ";"))
	}
	return names
}
