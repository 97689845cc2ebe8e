// Command colorific-term runs the game inside a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/colorific/config"
	"github.com/phanxgames/colorific/internal/app"
	"github.com/phanxgames/colorific/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (.toml or .yaml); defaults to $"+config.EnvPath)
	logFile := flag.String("log", "colorific-term.log", "log file; the terminal is busy drawing")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = *logFile
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", zap.String("host", "terminal"), zap.Int("board_size", cfg.Board.Size))
	return terminal.Run(ctx, screen, game.Director, terminal.Options{Log: log.Named("terminal")})
}
