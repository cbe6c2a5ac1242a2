// Package config loads runtime settings from YAML with environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/quest"
	"github.com/lixenwraith/pixel-survivor/save"
)

// DefaultPath is read when no -config flag is given; a missing file is not an error
const DefaultPath = "pixel-survivor.yaml"

// Environment overrides
const (
	EnvAudioEnabled = "PIXEL_SURVIVOR_AUDIO_ENABLED"
	EnvMasterVolume = "PIXEL_SURVIVOR_MASTER_VOLUME"
	EnvSavePath     = "PIXEL_SURVIVOR_SAVE_PATH"
	EnvDebug        = "PIXEL_SURVIVOR_DEBUG"
	EnvFPS          = "PIXEL_SURVIVOR_FPS"
	EnvGeminiKey    = "GEMINI_API_KEY"
	EnvAPIKey       = "API_KEY"
)

const (
	minFPS  = 10
	maxFPS  = 240
	minZoom = 0.25
	maxZoom = 4.0
)

type DisplayConfig struct {
	FPS  int     `yaml:"fps"`
	Zoom float64 `yaml:"zoom"`
	// RasterText draws labels into the pixel buffer instead of terminal cells
	RasterText bool `yaml:"raster_text"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is a percentage of the master gain, 0-100
	Volume int `yaml:"volume"`
}

type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
	// Keys rebinds play-mode keys: key name to action name
	Keys map[string]string `yaml:"keys"`
}

type WorldConfig struct {
	Deterministic bool `yaml:"deterministic"`
}

type QuestConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	Endpoint  string `yaml:"endpoint"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type AssetConfig struct {
	GroundTexture string `yaml:"ground_texture"`
	KnightSprite  string `yaml:"knight_sprite"`
}

type SaveConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Config is the complete runtime configuration
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
	World   WorldConfig   `yaml:"world"`
	Quest   QuestConfig   `yaml:"quest"`
	Assets  AssetConfig   `yaml:"assets"`
	Save    SaveConfig    `yaml:"save"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Display: DisplayConfig{FPS: constants.DefaultFPS, Zoom: 1},
		Audio:   AudioConfig{Enabled: true, Volume: constants.DefaultVolumePerc},
		Input:   InputConfig{HoldMS: int(constants.InputHoldTimeout / time.Millisecond)},
		World:   WorldConfig{Deterministic: true},
		Quest: QuestConfig{
			Model:     quest.DefaultModel,
			Endpoint:  quest.DefaultEndpoint,
			TimeoutMS: int(quest.DefaultTimeout / time.Millisecond),
		},
		Save: SaveConfig{Path: save.DefaultFileName},
		Log:  LogConfig{Dir: "logs"},
	}
}

// Load reads path over the defaults and applies environment overrides
// A missing file is an error only when required is set
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
	case err != nil:
		return nil, fmt.Errorf("config read: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config parse %s: %w", filepath.Base(path), err)
		}
	}

	cfg.ApplyEnv()
	cfg.Validate()
	return cfg, nil
}

// ApplyEnv overrides fields from the environment; malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = n
		}
	}
	if v := os.Getenv(EnvSavePath); v != "" {
		c.Save.Path = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}
	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Display.FPS = n
		}
	}

	if v := os.Getenv(EnvGeminiKey); v != "" {
		c.Quest.APIKey = v
	} else if v := os.Getenv(EnvAPIKey); v != "" && c.Quest.APIKey == "" {
		c.Quest.APIKey = v
	}
}

// Validate clamps out-of-range values and fills empty required fields
func (c *Config) Validate() {
	d := Default()

	if c.Display.FPS <= 0 {
		c.Display.FPS = d.Display.FPS
	}
	c.Display.FPS = max(minFPS, min(maxFPS, c.Display.FPS))
	if c.Display.Zoom <= 0 {
		c.Display.Zoom = d.Display.Zoom
	}
	c.Display.Zoom = max(minZoom, min(maxZoom, c.Display.Zoom))

	c.Audio.Volume = max(0, min(100, c.Audio.Volume))

	if c.Input.HoldMS <= 0 {
		c.Input.HoldMS = d.Input.HoldMS
	}

	if c.Quest.Model == "" {
		c.Quest.Model = d.Quest.Model
	}
	if c.Quest.Endpoint == "" {
		c.Quest.Endpoint = d.Quest.Endpoint
	}
	if c.Quest.TimeoutMS <= 0 {
		c.Quest.TimeoutMS = d.Quest.TimeoutMS
	}

	if c.Save.Path == "" {
		c.Save.Path = d.Save.Path
	}
	if c.Log.Dir == "" {
		c.Log.Dir = d.Log.Dir
	}
}

// HoldTimeout returns the key hold window
func (c *Config) HoldTimeout() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// QuestClient returns the quest backend settings
func (c *Config) QuestClient() quest.Config {
	return quest.Config{
		APIKey:   c.Quest.APIKey,
		Model:    c.Quest.Model,
		Endpoint: c.Quest.Endpoint,
		Timeout:  time.Duration(c.Quest.TimeoutMS) * time.Millisecond,
	}
}
