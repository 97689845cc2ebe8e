package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/colorific"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestDefaultsMatchBoard(t *testing.T) {
	got := Defaults().BoardConfig()
	want := colorific.DefaultBoardConfig()
	if got.Size != want.Size || got.CellWidth != want.CellWidth || got.OriginX != want.OriginX ||
		got.OriginY != want.OriginY || got.Gravity != want.Gravity || got.Turns != want.Turns {
		t.Errorf("BoardConfig = %+v, want %+v", got, want)
	}
	if len(got.Palette) != len(want.Palette) {
		t.Fatalf("palette len = %d, want %d", len(got.Palette), len(want.Palette))
	}
	for i := range want.Palette {
		if got.Palette[i].Hex() != want.Palette[i].Hex() {
			t.Errorf("palette[%d] = %s, want %s", i, got.Palette[i].Hex(), want.Palette[i].Hex())
		}
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "c.toml", `
[board]
size = 5
palette = ["#FF0000", "#00FF00", "#0000FF"]

[game]
turns = 10
seed = 42

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Game.Turns != 10 || cfg.Game.Seed != 42 {
		t.Errorf("Game = %+v", cfg.Game)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	// untouched sections keep defaults
	if cfg.Board.Gravity != 10 {
		t.Errorf("Gravity = %f, want 10", cfg.Board.Gravity)
	}
	if cfg.Window.Title != "Colorific!" {
		t.Errorf("Title = %q", cfg.Window.Title)
	}

	b := cfg.BoardConfig()
	if b.CellWidth != 64 || b.OriginX != 0 {
		t.Errorf("cell = %f origin = %f, want 64 and 0", b.CellWidth, b.OriginX)
	}
	if len(b.Palette) != 3 || b.Seed != 42 {
		t.Errorf("palette len = %d seed = %d", len(b.Palette), b.Seed)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "c.yaml", `
board:
  size: 6
game:
  turns: 3
audio:
  enabled: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Game.Turns != 3 || cfg.Audio.Enabled {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Board.Palette) != 4 {
		t.Errorf("palette len = %d, want 4", len(cfg.Board.Palette))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, body, want string
	}{
		{"syntax", "c.toml", "[board\n", "parse config"},
		{"size", "c.toml", "[board]\nsize = 0\n", "board.size"},
		{"palette", "c.toml", "[board]\npalette = [\"#GG0000\"]\n", "board.palette[0]"},
		{"empty palette", "c.yml", "board:\n  palette: []\n", "board.palette is empty"},
		{"turns", "c.toml", "[game]\nturns = 0\n", "game.turns"},
		{"volume", "c.toml", "[audio]\nvolume = 2.0\n", "audio.volume"},
		{"frame delta", "c.toml", "[window]\nmax_frame_delta = -1.0\n", "window.max_frame_delta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("err = %v, want read config error", err)
	}
}

func TestLoadDefaultEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "[game]\nturns = 7\n")
	t.Setenv(EnvPath, path)
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Game.Turns != 7 {
		t.Errorf("Turns = %d, want 7", cfg.Game.Turns)
	}

	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault missing: %v", err)
	}
	if cfg.Game.Turns != 25 {
		t.Errorf("Turns = %d, want default 25", cfg.Game.Turns)
	}
}

func TestNewLogger(t *testing.T) {
	for _, lc := range []LoggingConfig{
		{Level: "debug", Format: "console"},
		{Level: "warn", Format: "json"},
		{Level: "bogus"},
	} {
		log, err := NewLogger(lc)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", lc, err)
		}
		log.Info("hello")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	log, err := NewLogger(LoggingConfig{Level: "warn", Format: "json", File: filepath.Join(t.TempDir(), "out.log")})
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled at warn level")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn disabled at warn level")
	}
}
