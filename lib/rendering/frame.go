package rendering

import (
	"github.com/fosdem/tricolour/lib/utils"
	"github.com/go-gl/gl/v3.3-core/gl"
)

func StartFrame(bg utils.Colour) {
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
