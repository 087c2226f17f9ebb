package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fosdem/tricolour/lib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tricolour.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "OpenGL Window", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 3, cfg.Window.GLMajor)
	assert.Equal(t, 3, cfg.Window.GLMinor)
	assert.False(t, cfg.Window.FixedSize)
	assert.Equal(t, 1, *cfg.Window.SwapInterval)
	assert.Equal(t, "/dev/fb0", cfg.Framebuffer.FBDev)
	assert.Equal(t, 1000, cfg.Framebuffer.IdleTickMs)
	assert.Equal(t, utils.Colour{R: 1, G: 1, B: 1, A: 1}, cfg.Background())
	assert.Nil(t, cfg.Api)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParse(t *testing.T) {
	path := writeConfig(t, `
window:
  title: triangle
  width: 1024
  height: 768
  gl_major: 4
  gl_minor: 1
  fixed_size: true
  swap_interval: 0
framebuffer:
  fbdev: /dev/fb1
  idle_tick_ms: 250
background_colour: "#000000ff"
shader_dir: shaders
watch_shaders: true
log_level: debug
api:
  bind: "127.0.0.1:8080"
  enable_profiler: true
`)
	cfg, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "triangle", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, 4, cfg.Window.GLMajor)
	assert.Equal(t, 1, cfg.Window.GLMinor)
	assert.True(t, cfg.Window.FixedSize)
	assert.Equal(t, 0, *cfg.Window.SwapInterval)
	assert.Equal(t, 1, *cfg.Framebuffer.SwapInterval, "unset keys keep their default")
	assert.Equal(t, "/dev/fb1", cfg.Framebuffer.FBDev)
	assert.Equal(t, 250, cfg.Framebuffer.IdleTickMs)
	assert.Equal(t, utils.Colour{A: 1}, cfg.Background())
	assert.Equal(t, CfgPath(filepath.Join(filepath.Dir(path), "shaders")), cfg.ShaderDir)
	assert.True(t, cfg.WatchShaders)
	require.NotNil(t, cfg.Api)
	assert.Equal(t, "127.0.0.1:8080", cfg.Api.Bind)
	assert.True(t, cfg.Api.EnableProfiler)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseAbsoluteShaderDir(t *testing.T) {
	path := writeConfig(t, "shader_dir: /opt/shaders\n")
	cfg, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, CfgPath("/opt/shaders"), cfg.ShaderDir)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"old gl":           "window:\n  gl_major: 2\n  gl_minor: 1\n",
		"gl 3.2":           "window:\n  gl_major: 3\n  gl_minor: 2\n",
		"negative size":    "window:\n  width: -1\n",
		"bad colour":       "background_colour: white\n",
		"watch no dir":     "watch_shaders: true\n",
		"bad level":        "log_level: loud\n",
		"api without bind": "api:\n  enable_profiler: true\n",
		"negative tick":    "framebuffer:\n  idle_tick_ms: -5\n",
		"unknown key":      "colour: \"#ffffffff\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestString(t *testing.T) {
	cfg := Default()
	cfg.Api = &ApiCfg{Bind: ":9000"}
	s := cfg.String()
	assert.Contains(t, s, `"OpenGL Window" 800x600, OpenGL 3.3 core`)
	assert.Contains(t, s, "API: :9000")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(writeConfig(t, "window:\n  title: loaded\n"))
	require.NoError(t, err)
	assert.Equal(t, "loaded", cfg.Window.Title)
}

func TestParseGLVersionDefaults(t *testing.T) {
	tests := map[string]struct {
		content      string
		major, minor int
	}{
		"both unset":    {"log_level: info\n", 3, 3},
		"only minor":    {"window:\n  gl_minor: 5\n", 3, 5},
		"only major":    {"window:\n  gl_major: 4\n", 4, 0},
		"major + minor": {"window:\n  gl_major: 4\n  gl_minor: 6\n", 4, 6},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse(writeConfig(t, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.major, cfg.Window.GLMajor)
			assert.Equal(t, tc.minor, cfg.Window.GLMinor)
		})
	}
}

func TestValidateWithoutSwapInterval(t *testing.T) {
	cfg := Default()
	cfg.Window.SwapInterval = nil
	cfg.Framebuffer.SwapInterval = nil
	assert.NotPanics(t, func() {
		assert.NoError(t, cfg.Validate())
	})

	cfg.Framebuffer.SwapInterval = intPtr(-1)
	assert.Error(t, cfg.Validate())
}
