//go:build linux

package es

import (
	"fmt"
	"runtime"

	"github.com/fosdem/tricolour/lib/geometry"
	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/fosdem/tricolour/lib/utils"
	"github.com/go-gl/gl/v3.1/gles2"
)

// Attribs holds the linker-assigned attribute locations of a program.
type Attribs struct {
	Position uint32
	Colour   uint32
}

// LookupAttribs resolves the attribute names in data against program.
func LookupAttribs(program uint32, data *shaders.ShaderData) (Attribs, error) {
	position := gles2.GetAttribLocation(program, gles2.Str(data.Position.Name+"\x00"))
	if position < 0 {
		return Attribs{}, fmt.Errorf("program has no attribute %s", data.Position.Name)
	}
	colour := gles2.GetAttribLocation(program, gles2.Str(data.Colour.Name+"\x00"))
	if colour < 0 {
		return Attribs{}, fmt.Errorf("program has no attribute %s", data.Colour.Name)
	}
	return Attribs{Position: uint32(position), Colour: uint32(colour)}, nil
}

// DrawTriangle renders a single frame: clear, then one draw call fed from
// client-side arrays. The caller swaps buffers.
func DrawTriangle(program uint32, attribs Attribs, width, height int, bg utils.Colour, triangle geometry.Triangle) {
	positions := triangle.Positions()
	colours := triangle.Colours()

	// GL keeps the array pointers until the draw call has consumed them
	var pinner runtime.Pinner
	pinner.Pin(&positions[0])
	pinner.Pin(&colours[0])
	defer pinner.Unpin()

	gles2.Viewport(0, 0, int32(width), int32(height))

	gles2.ClearColor(bg.R, bg.G, bg.B, bg.A)
	gles2.Clear(gles2.COLOR_BUFFER_BIT)

	gles2.UseProgram(program)

	gles2.VertexAttribPointer(attribs.Position, geometry.ComponentsPerAttrib, gles2.FLOAT, false, 0, gles2.Ptr(&positions[0]))
	gles2.EnableVertexAttribArray(attribs.Position)

	gles2.VertexAttribPointer(attribs.Colour, geometry.ComponentsPerAttrib, gles2.FLOAT, false, 0, gles2.Ptr(&colours[0]))
	gles2.EnableVertexAttribArray(attribs.Colour)

	gles2.DrawArrays(gles2.TRIANGLES, 0, geometry.VertexCount)

	gles2.DisableVertexAttribArray(attribs.Position)
	gles2.DisableVertexAttribArray(attribs.Colour)
}
