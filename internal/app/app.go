// Package app assembles a playable game from a loaded configuration. Both
// commands share it; only the host loop differs.
package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/colorific"
	"github.com/phanxgames/colorific/audio"
	"github.com/phanxgames/colorific/config"
)

// App is a wired game ready to be handed to a host.
type App struct {
	Director *colorific.Director
	Session  *colorific.Session
	Audio    *audio.Player
	Script   *colorific.ScriptRunner

	log *zap.Logger
}

// New builds the session, director and audio player described by cfg.
// Audio failures are logged and the game continues silently.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	session := colorific.NewSession(cfg.BoardConfig(), cfg.Game.HighScore)
	session.SetLogger(log.Named("board"))

	player := audio.NewPlayer(cfg.Audio.Volume, log.Named("audio"))
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		}
	}
	session.OnTurn = func(r colorific.TurnResult) {
		player.PlayTurn(len(r.Selected))
	}
	session.OnFinished = func(final, high int) {
		player.PlayGameOver()
	}

	director := colorific.NewDirector(colorific.NewMenuScreen(session))
	director.SetLogger(log.Named("director"))
	director.SetDebugMode(cfg.Game.Debug)

	a := &App{
		Director: director,
		Session:  session,
		Audio:    player,
		log:      log,
	}

	if cfg.Game.Script != "" {
		runner, err := loadScript(cfg.Game.Script)
		if err != nil {
			player.Close()
			return nil, err
		}
		director.SetScriptRunner(runner)
		a.Script = runner
		log.Info("replay script loaded", zap.String("path", cfg.Game.Script))
	}
	return a, nil
}

// Close releases audio and reports the session's high score.
func (a *App) Close() {
	a.Audio.Close()
	a.log.Info("session closed",
		zap.Int("games", a.Session.Games),
		zap.Int("high_score", a.Session.HighScore))
}

func loadScript(path string) (*colorific.ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	runner, err := colorific.LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return runner, nil
}
