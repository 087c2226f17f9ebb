// Package desktop draws the triangle in a GLFW window with an OpenGL core
// profile context.
package desktop

import (
	"context"
	"fmt"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/demo"
	"github.com/fosdem/tricolour/lib/geometry"
	"github.com/fosdem/tricolour/lib/kbdctl"
	"github.com/fosdem/tricolour/lib/rendering"
	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/fosdem/tricolour/lib/utils"
	"github.com/fosdem/tricolour/lib/windowsink"
)

// Run opens the window and renders until it is closed. It must be called
// from a goroutine locked to its OS thread.
func Run(ctx context.Context, cfg *config.Config) error {
	session, err := demo.Start(ctx, "window", cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	sink := windowsink.New(&cfg.Window)
	err = sink.Start()
	if err != nil {
		return err
	}
	defer sink.Destroy()

	info, err := rendering.Init()
	if err != nil {
		return err
	}
	session.Stats.SetGLInfo(info)

	rendering.SetViewport(sink.FramebufferSize())
	sink.OnResize(rendering.SetViewport)
	kbdctl.SetupShortcutKeys(sink, session.Lifecycle)

	loader := session.Loader(shaders.Core, shaders.CoreData, rendering.BuildProgram, rendering.DeleteProgram)
	program, err := loader.Load()
	if err != nil {
		return fmt.Errorf("could not init GL program: %w", err)
	}
	defer func() {
		rendering.DeleteProgram(program)
	}()

	mesh := rendering.NewMesh(geometry.DefaultTriangle(), shaders.CoreData)
	defer mesh.Delete()

	bg := cfg.Background()
	var deltaTimer utils.DeltaTimer
	for !sink.ShouldClose() && !session.Lifecycle.ShutdownRequested() {
		if ctx.Err() != nil {
			break
		}
		program, _ = session.Reload(loader, program)

		rendering.StartFrame(bg)
		mesh.Draw(program)
		sink.Present()

		session.FrameDone(deltaTimer.Next())
	}
	return nil
}
