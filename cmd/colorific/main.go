// Command colorific runs the game in a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/colorific/config"
	"github.com/phanxgames/colorific/ebitenhost"
	"github.com/phanxgames/colorific/internal/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (.toml or .yaml); defaults to $"+config.EnvPath)
	script := flag.String("script", "", "replay script (JSON)")
	debug := flag.Bool("debug", false, "check board invariants every frame")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *script != "" {
		cfg.Game.Script = *script
	}
	if *debug {
		cfg.Game.Debug = true
		cfg.Logging.Level = "debug"
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	game, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	defer game.Close()

	log.Info("starting", zap.String("host", "ebiten"), zap.Int("board_size", cfg.Board.Size))
	return ebitenhost.Run(game.Director, ebitenhost.RunConfig{
		Title:         cfg.Window.Title,
		Scale:         cfg.Window.Scale,
		ShowFPS:       cfg.Window.ShowFPS,
		ScreenshotDir: cfg.Window.ScreenshotDir,
		MaxFrameDelta: cfg.Window.MaxFrameDelta,
		Log:           log.Named("ebiten"),
	})
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
