package main

import (
	"flag"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/config"
	"github.com/Garsondee/board-editor/internal/editor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	var envFile string
	var setup string
	var army string
	var debug bool
	flag.StringVar(&envFile, "env", ".env", "optional .env file with BOARD_EDITOR_* settings")
	flag.StringVar(&setup, "setup", "", "starting layout: empty, pawns or standard")
	flag.StringVar(&army, "army", "", "starting army (classic, nemesis, empowered, reaper, two-kings, animals)")
	flag.BoolVar(&debug, "debug", false, "stop on board invariant violations")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	if setup != "" {
		s, ok := board.ParseSetup(setup)
		if !ok {
			logrus.WithField("setup", setup).Fatal("unknown setup")
		}
		cfg.Setup = s
	}
	if army != "" {
		a, ok := board.ParseArmy(army)
		if !ok {
			logrus.WithField("army", army).Fatal("unknown army")
		}
		cfg.Army = a
	}
	if debug {
		cfg.Debug = true
		cfg.LogLevel = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	g, err := editor.NewGame(editor.GameOptions{
		Width:   cfg.Width,
		Height:  cfg.Height,
		ShowHUD: cfg.ShowHUD,
		Session: editor.SessionOptions{
			Setup: cfg.Setup,
			Army:  cfg.Army,
			Color: cfg.Color,
			Debug: cfg.Debug,
		},
	}, log)
	if err != nil {
		log.WithError(err).Fatal("editor setup failed")
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	log.WithFields(logrus.Fields{
		"setup": cfg.Setup,
		"army":  cfg.Army.String(),
		"size":  [2]int{cfg.Width, cfg.Height},
	}).Info("starting board editor")
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("editor stopped")
	}
}
