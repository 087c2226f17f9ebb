package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/tricolour/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultTitle        = "OpenGL Window"
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultGLMajor      = 3
	DefaultGLMinor      = 3
	DefaultBackground   = "#ffffffff"
	DefaultFBDev        = "/dev/fb0"
	DefaultIdleTickMs   = 1000
	DefaultLogLevel     = "info"
	defaultSwapInterval = 1
)

type Config struct {
	Window           WindowCfg      `yaml:"window"`
	Framebuffer      FramebufferCfg `yaml:"framebuffer"`
	BackgroundColour string         `yaml:"background_colour"`
	ShaderDir        CfgPath        `yaml:"shader_dir"`
	WatchShaders     bool           `yaml:"watch_shaders"`
	LogLevel         string         `yaml:"log_level"`
	Api              *ApiCfg        `yaml:"api"`
}

type WindowCfg struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	GLMajor      int    `yaml:"gl_major"`
	GLMinor      int    `yaml:"gl_minor"`
	FixedSize    bool   `yaml:"fixed_size"`
	SwapInterval *int   `yaml:"swap_interval"`
}

type FramebufferCfg struct {
	FBDev        string `yaml:"fbdev"`
	IdleTickMs   int    `yaml:"idle_tick_ms"`
	SwapInterval *int   `yaml:"swap_interval"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load parses filename, or returns Default when filename is empty.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	return Parse(filename)
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn("could not close config file", "file", filename, "err", err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	unmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	// gl_minor 0 is meaningful once gl_major is given, e.g. 4.0
	if c.Window.GLMajor == 0 {
		c.Window.GLMajor = DefaultGLMajor
		if c.Window.GLMinor == 0 {
			c.Window.GLMinor = DefaultGLMinor
		}
	}
	if c.Window.SwapInterval == nil {
		c.Window.SwapInterval = intPtr(defaultSwapInterval)
	}
	if c.Framebuffer.FBDev == "" {
		c.Framebuffer.FBDev = DefaultFBDev
	}
	if c.Framebuffer.IdleTickMs == 0 {
		c.Framebuffer.IdleTickMs = DefaultIdleTickMs
	}
	if c.Framebuffer.SwapInterval == nil {
		c.Framebuffer.SwapInterval = intPtr(defaultSwapInterval)
	}
	if c.BackgroundColour == "" {
		c.BackgroundColour = DefaultBackground
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	err = c.Framebuffer.Validate()
	if err != nil {
		return fmt.Errorf("framebuffer is invalid: %w", err)
	}
	if !utils.ColourValidate(c.BackgroundColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.BackgroundColour)
	}
	if c.WatchShaders && c.ShaderDir == "" {
		return fmt.Errorf("watch_shaders needs shader_dir to be set")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be specified when the api section is present")
	}
	return nil
}

// Level returns the parsed log_level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Background returns the parsed background_colour.
func (c *Config) Background() utils.Colour {
	colour, err := utils.ColourParse(c.BackgroundColour)
	if err != nil {
		return utils.Colour{R: 1, G: 1, B: 1, A: 1}
	}
	return colour
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", w.Width, w.Height)
	}
	// #version 330 core needs at least a 3.3 context
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is too old, at least 3.3 is required", w.GLMajor, w.GLMinor)
	}
	if w.SwapInterval != nil && *w.SwapInterval < 0 {
		return fmt.Errorf("swap_interval must be nonnegative")
	}
	return nil
}

func (f *FramebufferCfg) Validate() error {
	if f.IdleTickMs < 0 {
		return fmt.Errorf("idle_tick_ms must be nonnegative")
	}
	if f.SwapInterval != nil && *f.SwapInterval < 0 {
		return fmt.Errorf("swap_interval must be nonnegative")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d, OpenGL %d.%d core, swap interval %d\n",
		c.Window.Title, c.Window.Width, c.Window.Height,
		c.Window.GLMajor, c.Window.GLMinor, *c.Window.SwapInterval))

	b.WriteString("\nFramebuffer:\n")
	b.WriteString(fmt.Sprintf("  %s, idle tick %dms, swap interval %d\n",
		c.Framebuffer.FBDev, c.Framebuffer.IdleTickMs, *c.Framebuffer.SwapInterval))

	b.WriteString(fmt.Sprintf("\nBackground: %s\n", c.BackgroundColour))
	if c.ShaderDir != "" {
		b.WriteString(fmt.Sprintf("Shaders: %s (watch: %t)\n", c.ShaderDir, c.WatchShaders))
	}
	if c.Api != nil {
		b.WriteString(fmt.Sprintf("API: %s (profiler: %t)\n", c.Api.Bind, c.Api.EnableProfiler))
	}

	return b.String()
}

func intPtr(i int) *int {
	return &i
}
