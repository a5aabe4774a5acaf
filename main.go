package main

import (
	"errors"
	"image"
	"io/fs"

	"github.com/automoto/mobspawn/config"
	"github.com/automoto/mobspawn/fonts"
	"github.com/automoto/mobspawn/logger"
	"github.com/automoto/mobspawn/scenes"
	"github.com/automoto/mobspawn/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// configFile is read from the working directory when present
const configFile = "mobspawn.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewMobScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	log, err := logger.Init(config.Debug.LogLevel)
	if err != nil {
		panic(err)
	}
	// log is replaced below, so flush whichever logger is global at exit
	defer func() { _ = logger.L().Sync() }()

	if err := config.LoadFile(configFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("invalid configuration", zap.String("path", configFile), zap.Error(err))
	}
	// The file may change the level
	leveled, err := logger.Init(config.Debug.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", zap.Error(err))
	}
	log = leveled

	if err := fonts.LoadDefaults(config.UI.NameTagSize); err != nil {
		log.Warn("name tags disabled", zap.Error(err))
	}

	// Initialize persistence so overlay toggles survive restarts
	if err := systems.InitPersistence("mobspawn"); err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}
