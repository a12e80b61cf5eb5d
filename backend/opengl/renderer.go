package opengl

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/learngl"
)

// Mesh is geometry uploaded to the GPU: a vertex array object with its
// vertex buffer and, for indexed meshes, an element buffer.
type Mesh struct {
	vao, vbo uint32
	ebo      uint32
	count    int32
	indexed  bool
}

// NewMesh uploads m with GL_STATIC_DRAW usage.
func NewMesh(m learngl.Mesh) (*Mesh, error) {
	if len(m.Vertices) == 0 {
		return nil, errors.New("mesh has no vertices")
	}

	gm := &Mesh{
		count:   int32(m.Count()),
		indexed: m.Indexed(),
	}

	// Create VAO
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	// Create VBO
	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(learngl.VertexStride), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	// Create EBO; the binding is recorded in the VAO
	if gm.indexed {
		gl.GenBuffers(1, &gm.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	// Position attribute
	gl.VertexAttribPointerWithOffset(learngl.AttribPosition, 3, gl.FLOAT, false, learngl.VertexStride, 0)
	gl.EnableVertexAttribArray(learngl.AttribPosition)

	// Color attribute
	gl.VertexAttribPointerWithOffset(learngl.AttribColor, 3, gl.FLOAT, false, learngl.VertexStride, learngl.ColorOffset)
	gl.EnableVertexAttribArray(learngl.AttribColor)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return gm, nil
}

// Draw issues one draw call for the whole mesh with the active program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases OpenGL resources. It is safe to call more than once.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// Clear fills the color buffer.
func Clear(c learngl.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetWireframe switches between line and fill polygon mode.
func SetWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Viewport maps clip space onto the whole framebuffer.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ReadPixels reads the lower-left width x height region of the framebuffer
// into an image with the usual top-down row order.
func ReadPixels(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img
}
