package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTriangleInterleaved(t *testing.T) {
	tri := DefaultTriangle()

	assert.Equal(t, []float32{
		0.0, 0.5, 0.0, 1, 0, 0,
		-0.5, -0.5, 0.0, 0, 1, 0,
		0.5, -0.5, 0.0, 0, 0, 1,
	}, tri.Interleaved())
	assert.Equal(t, len(tri.Interleaved())*4, tri.SizeBytes())
}

func TestDefaultTriangleSeparateArrays(t *testing.T) {
	tri := DefaultTriangle()

	assert.Equal(t, []float32{
		0.0, 0.5, 0.0,
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
	}, tri.Positions())
	assert.Equal(t, []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, tri.Colours())
}

func TestLayout(t *testing.T) {
	assert.Equal(t, 24, Stride)
	assert.Equal(t, 12, ColourOffset)
}
