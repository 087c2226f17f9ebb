package rendering

import (
	"github.com/fosdem/tricolour/lib/geometry"
	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh is a triangle uploaded into a single interleaved vertex buffer.
type Mesh struct {
	VAO uint32
	VBO uint32
}

// NewMesh uploads the triangle and records the attribute layout described
// by data in a vertex array object.
func NewMesh(triangle geometry.Triangle, data *shaders.ShaderData) *Mesh {
	m := &Mesh{}
	vertices := triangle.Interleaved()

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)

	// the VAO must be bound before the buffer so it captures the layout
	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, triangle.SizeBytes(), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(data.Position.Location, geometry.ComponentsPerAttrib, gl.FLOAT, false, geometry.Stride, 0)
	gl.EnableVertexAttribArray(data.Position.Location)
	gl.VertexAttribPointerWithOffset(data.Colour.Location, geometry.ComponentsPerAttrib, gl.FLOAT, false, geometry.Stride, geometry.ColourOffset)
	gl.EnableVertexAttribArray(data.Colour.Location)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

func (m *Mesh) Draw(program uint32) {
	gl.UseProgram(program)
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, geometry.VertexCount)
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	m.VAO, m.VBO = 0, 0
}
