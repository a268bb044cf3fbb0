package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/logger"
	"github.com/automoto/overworld/scenes"
	"github.com/automoto/overworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.Warnw("debug overlay text disabled", "err", err)
	}
	return &Game{scene: scenes.NewWorldScene()}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	debug := flag.Bool("debug", false, "start with the debug overlay and verbose logging")
	logPath := flag.String("log", "overworld.log", "log file path")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *debug {
		config.Debug.Overlay = true
		config.Debug.Verbose = true
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(*logPath, config.Debug.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "could not open log %s: %v\n", *logPath, err)
		os.Exit(1)
	}
	defer logger.Sync()
	if *configPath != "" {
		logger.Log.Infow("config loaded", "path", *configPath)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("overworld"); err != nil {
		logger.Log.Warnw("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil {
		systems.ApplySavedSettings(saved)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	logger.Log.Infow("starting", "width", config.C.Width, "height", config.C.Height, "tps", config.C.TPS)
	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Errorw("game exited", "err", err)
		logger.Sync()
		os.Exit(1)
	}
}
