package demo

import (
	"context"
	"net"
	"testing"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionReload(t *testing.T) {
	s, err := Start(context.Background(), "session-test", config.Default())
	require.NoError(t, err)
	defer s.Close()

	var deleted []uint32
	next := uint32(10)
	loader := s.Loader(shaders.Core, shaders.CoreData,
		func(string, string) (uint32, error) {
			next++
			return next, nil
		},
		func(p uint32) { deleted = append(deleted, p) },
	)

	program, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, uint32(11), program)

	program, reloaded := s.Reload(loader, program)
	assert.False(t, reloaded, "nothing was requested")
	assert.Equal(t, uint32(11), program)

	s.Lifecycle.RequestShaderReload()
	program, reloaded = s.Reload(loader, program)
	assert.True(t, reloaded)
	assert.Equal(t, uint32(12), program)
	assert.Equal(t, []uint32{11}, deleted)

	assert.Equal(t, uint64(1), s.Stats.Snapshot().ShaderReloads)
	assert.Equal(t, 2.0, testutil.ToFloat64(s.Metrics.BuildsOK))
}

func TestSessionFrameDone(t *testing.T) {
	s, err := Start(context.Background(), "session-frames", config.Default())
	require.NoError(t, err)
	defer s.Close()

	s.FrameDone(0)
	s.FrameDone(0)
	assert.Equal(t, uint64(2), s.Stats.Snapshot().Frames)
	assert.Equal(t, 2.0, testutil.ToFloat64(s.Metrics.FramesRendered))
}

func TestSessionApiBindFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Default()
	cfg.Api = &config.ApiCfg{Bind: busy.Addr().String()}
	s, err := Start(context.Background(), "session-bind", cfg)
	assert.ErrorContains(t, err, "could not start web server")
	assert.Nil(t, s)
}
