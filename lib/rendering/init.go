package rendering

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/tricolour/lib/stats"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the GL function pointers for the context that is current on
// the calling thread.
func Init() (stats.GLInfo, error) {
	err := gl.Init()
	if err != nil {
		return stats.GLInfo{}, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	info := stats.GLInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	slog.Info(fmt.Sprintf("OpenGL version %s / %s / %s", info.Vendor, info.Renderer, info.Version), "module", "rendering")

	return info, nil
}

func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
