// Drop is a small arcade game: move the bucket with the arrow keys, A/D, or
// the pointer to catch the falling drops.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/drop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	assetsDir := flag.String("assets", "", "asset directory (overrides config)")
	scriptPath := flag.String("script", "", "path to a YAML or JSON input script to replay")
	debug := flag.Bool("debug", false, "enable debug stats and the FPS overlay")
	flag.Parse()

	cfg, err := drop.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}
	if *debug {
		cfg.Debug.Enabled = true
		cfg.Debug.ShowFPS = true
		cfg.Logging.Level = "debug"
	}

	log, err := drop.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	assets := os.DirFS(cfg.Assets.Dir)
	game, err := drop.NewGame(cfg, drop.Services{
		Images: drop.NewFSImageLoader(assets),
		Audio:  drop.NewEbitenAudio(assets, cfg.Audio.SampleRate, log),
		Input:  drop.NewEbitenInput(),
		Logger: log,
	})
	if err != nil {
		return err
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := drop.LoadScript(data, 1.0/float64(ebiten.DefaultTPS))
		if err != nil {
			return err
		}
		game.SetScript(runner)
		log.Info("replaying script", zap.String("path", *scriptPath))
	}

	if err := game.Create(); err != nil {
		log.Error("startup failed", zap.Error(err))
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetRunnableOnUnfocused(true)

	runErr := ebiten.RunGame(game)
	if err := game.Dispose(); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
