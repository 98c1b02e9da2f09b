package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied when a field is missing or out of range.
const (
	DefaultSkipIntervalMs     = 5000
	DefaultSpeed              = 100
	DefaultVolume             = 100
	DefaultTickMs             = 40
	DefaultLogLevel           = "info"
	DefaultPositionIntervalMs = 100
	DefaultBufferMs           = 100
)

type Config struct {
	PresetsFile    string `koanf:"presets_file"`     // empty means <Documents>/Practice Hard/presets.json
	ScratchDir     string `koanf:"scratch_dir"`      // empty means $TMPDIR/practicehard
	DefaultFolder  string `koanf:"default_folder"`   // start directory for the open prompt
	SkipIntervalMs int    `koanf:"skip_interval_ms"` // left/right skip step
	DefaultSpeed   int    `koanf:"default_speed"`    // percent, 1..200
	DefaultVolume  int    `koanf:"default_volume"`   // percent, 0..100
	TickMs         int    `koanf:"tick_ms"`          // UI refresh period
	LogFile        string `koanf:"log_file"`
	LogLevel       string `koanf:"log_level"`     // "debug", "info", "warn", "error"
	MPRIS          *bool  `koanf:"mpris"`         // default: true
	Notifications  *bool  `koanf:"notifications"` // default: true

	Engine EngineConfig `koanf:"engine"`
}

// EngineConfig tunes the audio engine.
type EngineConfig struct {
	PositionIntervalMs int `koanf:"position_interval_ms"`
	BufferMs           int `koanf:"buffer_ms"`
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given TOML files in order (last wins), skipping
// missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.PresetsFile = expandPath(cfg.PresetsFile)
	cfg.ScratchDir = expandPath(cfg.ScratchDir)
	cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.applyDefaults()

	return cfg, nil
}

// Defaults returns a configuration holding only default values.
func Defaults() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.SkipIntervalMs <= 0 {
		c.SkipIntervalMs = DefaultSkipIntervalMs
	}
	if c.DefaultSpeed < 1 || c.DefaultSpeed > 200 {
		c.DefaultSpeed = DefaultSpeed
	}
	if c.DefaultVolume < 0 || c.DefaultVolume > 100 {
		c.DefaultVolume = DefaultVolume
	}
	if c.TickMs <= 0 {
		c.TickMs = DefaultTickMs
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Engine.PositionIntervalMs <= 0 {
		c.Engine.PositionIntervalMs = DefaultPositionIntervalMs
	}
	if c.Engine.BufferMs <= 0 {
		c.Engine.BufferMs = DefaultBufferMs
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/practicehard/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "practicehard", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// MPRISEnabled reports whether the MPRIS remote should be registered.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// NotificationsEnabled reports whether decode errors raise desktop notifications.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// Tick is the UI refresh period.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// PositionInterval is the engine's position event period.
func (c *Config) PositionInterval() time.Duration {
	return time.Duration(c.Engine.PositionIntervalMs) * time.Millisecond
}

// Buffer is the speaker buffer length.
func (c *Config) Buffer() time.Duration {
	return time.Duration(c.Engine.BufferMs) * time.Millisecond
}
