package geometry

import "github.com/go-gl/mathgl/mgl32"

const (
	f32 = 4

	// ComponentsPerAttrib is the size of both the position and the colour
	// attribute.
	ComponentsPerAttrib = 3
	VertexCount         = 3

	// Stride and ColourOffset describe the interleaved layout in bytes.
	Stride       = 2 * ComponentsPerAttrib * f32
	ColourOffset = ComponentsPerAttrib * f32
)

type Vertex struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
}

type Triangle struct {
	Vertices [VertexCount]Vertex
}

// DefaultTriangle is centred in normalised device coordinates with a red
// top, a green bottom left and a blue bottom right corner.
func DefaultTriangle() Triangle {
	return Triangle{
		Vertices: [VertexCount]Vertex{
			{Position: mgl32.Vec3{0.0, 0.5, 0.0}, Colour: mgl32.Vec3{1, 0, 0}},
			{Position: mgl32.Vec3{-0.5, -0.5, 0.0}, Colour: mgl32.Vec3{0, 1, 0}},
			{Position: mgl32.Vec3{0.5, -0.5, 0.0}, Colour: mgl32.Vec3{0, 0, 1}},
		},
	}
}

// Interleaved returns x, y, z, r, g, b for each vertex.
func (t Triangle) Interleaved() []float32 {
	data := make([]float32, 0, VertexCount*2*ComponentsPerAttrib)
	for _, v := range t.Vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Colour[:]...)
	}
	return data
}

func (t Triangle) Positions() []float32 {
	data := make([]float32, 0, VertexCount*ComponentsPerAttrib)
	for _, v := range t.Vertices {
		data = append(data, v.Position[:]...)
	}
	return data
}

func (t Triangle) Colours() []float32 {
	data := make([]float32, 0, VertexCount*ComponentsPerAttrib)
	for _, v := range t.Vertices {
		data = append(data, v.Colour[:]...)
	}
	return data
}

// SizeBytes is the size of the interleaved buffer.
func (t Triangle) SizeBytes() int {
	return VertexCount * Stride
}
