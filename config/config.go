// Package config loads game settings from TOML or YAML files.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/colorific"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "COLORIFIC_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "colorific.toml"

type Config struct {
	Board   BoardConfig   `toml:"board" yaml:"board"`
	Game    GameConfig    `toml:"game" yaml:"game"`
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type BoardConfig struct {
	Size    int      `toml:"size" yaml:"size"`
	OriginY float64  `toml:"origin_y" yaml:"origin_y"`
	Gravity float64  `toml:"gravity" yaml:"gravity"`
	Palette []string `toml:"palette" yaml:"palette"` // "#RRGGBB"
}

type GameConfig struct {
	Turns     int    `toml:"turns" yaml:"turns"`
	HighScore int    `toml:"high_score" yaml:"high_score"` // starting value echoed by the menu
	Seed      uint64 `toml:"seed" yaml:"seed"`             // 0 = seed from clock
	Script    string `toml:"script" yaml:"script"`         // optional replay script path
	Debug     bool   `toml:"debug" yaml:"debug"`
}

type WindowConfig struct {
	Title         string  `toml:"title" yaml:"title"`
	Scale         float64 `toml:"scale" yaml:"scale"`
	ShowFPS       bool    `toml:"show_fps" yaml:"show_fps"`
	ScreenshotDir string  `toml:"screenshot_dir" yaml:"screenshot_dir"`
	// MaxFrameDelta caps the frame delta in seconds; 0 leaves it unclamped.
	MaxFrameDelta float64 `toml:"max_frame_delta" yaml:"max_frame_delta"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty = stderr
}

// Load reads the file at path. The decoder is picked from the extension:
// .yaml and .yml use YAML, anything else TOML. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file named by EnvPath, falling back to DefaultPath.
// A missing file yields the defaults.
func LoadDefault() (*Config, error) {
	path := DefaultPath
	if p := os.Getenv(EnvPath); p != "" {
		path = p
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}
	return Load(path)
}

// Defaults returns the settings the game ships with.
func Defaults() *Config {
	b := colorific.DefaultBoardConfig()
	palette := make([]string, len(b.Palette))
	for i, c := range b.Palette {
		palette[i] = c.Hex()
	}
	return &Config{
		Board: BoardConfig{
			Size:    b.Size,
			OriginY: b.OriginY,
			Gravity: b.Gravity,
			Palette: palette,
		},
		Game: GameConfig{
			Turns: b.Turns,
		},
		Window: WindowConfig{
			Title:         "Colorific!",
			Scale:         2,
			ScreenshotDir: "screenshots",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("board.size must be at least 1, got %d", c.Board.Size)
	}
	if math.Floor(colorific.ScreenWidth/float64(c.Board.Size)) < 1 {
		return fmt.Errorf("board.size %d does not fit %d pixels", c.Board.Size, colorific.ScreenWidth)
	}
	if c.Board.Gravity <= 0 {
		return fmt.Errorf("board.gravity must be positive, got %g", c.Board.Gravity)
	}
	if len(c.Board.Palette) == 0 {
		return fmt.Errorf("board.palette is empty")
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Game.Turns < 1 {
		return fmt.Errorf("game.turns must be at least 1, got %d", c.Game.Turns)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale)
	}
	if c.Window.MaxFrameDelta < 0 {
		return fmt.Errorf("window.max_frame_delta must not be negative, got %g", c.Window.MaxFrameDelta)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

// Palette parses the configured colors.
func (c *Config) Palette() (colorific.Palette, error) {
	p := make(colorific.Palette, len(c.Board.Palette))
	for i, s := range c.Board.Palette {
		col, err := colorific.ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("board.palette[%d]: %w", i, err)
		}
		p[i] = col
	}
	return p, nil
}

// BoardConfig converts the settings into a board configuration. Cells are
// sized to fill the logical screen width and centered horizontally.
func (c *Config) BoardConfig() colorific.BoardConfig {
	b := colorific.DefaultBoardConfig()
	b.Size = c.Board.Size
	b.CellWidth = math.Floor(colorific.ScreenWidth / float64(b.Size))
	b.CellHeight = b.CellWidth
	b.OriginX = (colorific.ScreenWidth - b.CellWidth*float64(b.Size)) / 2
	b.OriginY = c.Board.OriginY
	b.Gravity = c.Board.Gravity
	b.Turns = c.Game.Turns
	b.Seed = c.Game.Seed
	if p, err := c.Palette(); err == nil {
		b.Palette = p
	}
	return b
}
