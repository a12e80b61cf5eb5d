package learngl

import "unsafe"

// Color is a linear RGBA color with components in 0.0-1.0.
type Color struct {
	R, G, B, A float32
}

// Commonly used colors.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
	ColorTeal  = Color{0.2, 0.3, 0.3, 1} // default clear color
)

// RGBA8 converts the color to 8-bit components, as read back from a
// framebuffer with an RGBA/UNSIGNED_BYTE format.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

// Vertex is one interleaved vertex: position followed by color.
// Memory layout matches the attribute pointers set up by the backend.
type Vertex struct {
	Pos   [3]float32 // attribute 0
	Color [3]float32 // attribute 1
}

// Vertex attribute layout.
const (
	AttribPosition = 0
	AttribColor    = 1

	VertexStride = int32(unsafe.Sizeof(Vertex{}))
	ColorOffset  = unsafe.Offsetof(Vertex{}.Color)
)

// Mesh is CPU-side geometry for one draw call. Indices are optional.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Count returns the number of elements a draw call consumes.
func (m Mesh) Count() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return len(m.Vertices)
}

// Indexed reports whether the mesh is drawn with an index buffer.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Translate returns a copy of the mesh moved by (dx, dy).
func (m Mesh) Translate(dx, dy float32) Mesh {
	out := Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  append([]uint32(nil), m.Indices...),
	}
	for i, v := range m.Vertices {
		v.Pos[0] += dx
		v.Pos[1] += dy
		out.Vertices[i] = v
	}
	return out
}

// Triangle returns a white triangle centered on the origin in clip space.
func Triangle() Mesh {
	return Mesh{Vertices: []Vertex{
		{Pos: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{1, 1, 1}},
		{Pos: [3]float32{0.5, -0.5, 0}, Color: [3]float32{1, 1, 1}},
		{Pos: [3]float32{0, 0.5, 0}, Color: [3]float32{1, 1, 1}},
	}}
}

// ColoredTriangle returns a triangle with a distinct color per corner.
func ColoredTriangle() Mesh {
	return Mesh{Vertices: []Vertex{
		{Pos: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0.22, 1, 0.78}},
		{Pos: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0.04, 0.38, 0.93}},
		{Pos: [3]float32{0, 0.5, 0}, Color: [3]float32{0.97, 0.13, 0.52}},
	}}
}

// Quad returns a rectangle drawn as two indexed triangles.
func Quad() Mesh {
	white := [3]float32{1, 1, 1}
	return Mesh{
		Vertices: []Vertex{
			{Pos: [3]float32{0.5, 0.5, 0}, Color: white},   // top right
			{Pos: [3]float32{0.5, -0.5, 0}, Color: white},  // bottom right
			{Pos: [3]float32{-0.5, -0.5, 0}, Color: white}, // bottom left
			{Pos: [3]float32{-0.5, 0.5, 0}, Color: white},  // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
