package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/grove-atlasui/engine/colors"
	"gopkg.in/yaml.v3"
)

// MaxBufferCapacity is the largest vertex arena addressable with 16-bit indices.
const MaxBufferCapacity = 1 << 16

// DefaultBufferCapacity matches the vertex budget of a typical GUI frame.
const DefaultBufferCapacity = 8192

var ErrInvalidConfig = errors.New("invalid config")

// Config for the engine run.
type Config struct {
	Title          string       `yaml:"title"`
	Width          int          `yaml:"width"`
	Height         int          `yaml:"height"`
	VSync          bool         `yaml:"vsync"`
	ClearColor     colors.Color `yaml:"clear_color"`
	BufferCapacity int          `yaml:"buffer_capacity"` // vertices, multiple of 4
	AtlasDir       string       `yaml:"atlas_dir"`       // empty = built-in atlas
	ShaderDir      string       `yaml:"shader_dir"`      // empty = embedded shaders
	LogLevel       string       `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Title:          "grove atlasui",
		Width:          800,
		Height:         600,
		VSync:          true,
		ClearColor:     colors.RGBA(90, 95, 100, 255),
		BufferCapacity: DefaultBufferCapacity,
		LogLevel:       "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	warnUnknownKeys(path, data)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

var configKeys = map[string]bool{
	"title": true, "width": true, "height": true, "vsync": true, "clear_color": true,
	"buffer_capacity": true, "atlas_dir": true, "shader_dir": true, "log_level": true,
}

func warnUnknownKeys(path string, data []byte) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return
	}
	for k := range raw {
		if !configKeys[k] {
			Logger().Warn("ignored config key", "path", path, "key", k)
		}
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.BufferCapacity <= 0 || c.BufferCapacity%4 != 0 || c.BufferCapacity > MaxBufferCapacity {
		return fmt.Errorf("%w: buffer_capacity %d must be a positive multiple of 4 up to %d",
			ErrInvalidConfig, c.BufferCapacity, MaxBufferCapacity)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// SlogLevel maps LogLevel; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

// SyncInterval is the present interval: 1 waits for vblank, 0 does not.
func (c Config) SyncInterval() int {
	if c.VSync {
		return 1
	}
	return 0
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
