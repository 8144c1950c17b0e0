// Package config loads editor settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvWidth     = "BOARD_EDITOR_WIDTH"
	EnvHeight    = "BOARD_EDITOR_HEIGHT"
	EnvTitle     = "BOARD_EDITOR_TITLE"
	EnvResizable = "BOARD_EDITOR_RESIZABLE"
	EnvSetup     = "BOARD_EDITOR_SETUP"
	EnvArmy      = "BOARD_EDITOR_ARMY"
	EnvColor     = "BOARD_EDITOR_COLOR"
	EnvLogLevel  = "BOARD_EDITOR_LOG_LEVEL"
	EnvDebug     = "BOARD_EDITOR_DEBUG"
	EnvHUD       = "BOARD_EDITOR_HUD"
)

// Config holds every runtime setting.
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	Setup     board.Setup
	Army      board.Army
	Color     board.Color
	LogLevel  logrus.Level
	Debug     bool
	ShowHUD   bool
}

// Default is a square 768 pixel window with pawns on both sides.
func Default() Config {
	return Config{
		Width:    768,
		Height:   768,
		Title:    "Chess 2 Board Editor",
		Setup:    board.SetupPawns,
		Army:     board.Classic,
		Color:    board.White,
		LogLevel: logrus.InfoLevel,
		ShowHUD:  true,
	}
}

// Load reads the given .env files (missing files are skipped), then the
// process environment, on top of Default.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error
	if v, ok := lookup(EnvWidth); ok {
		if cfg.Width, err = positive(EnvWidth, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvHeight); ok {
		if cfg.Height, err = positive(EnvHeight, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvTitle); ok && v != "" {
		cfg.Title = v
	}
	if v, ok := lookup(EnvResizable); ok {
		if cfg.Resizable, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvResizable, err)
		}
	}
	if v, ok := lookup(EnvSetup); ok {
		s, valid := board.ParseSetup(v)
		if !valid {
			return Config{}, fmt.Errorf("%s: unknown setup %q", EnvSetup, v)
		}
		cfg.Setup = s
	}
	if v, ok := lookup(EnvArmy); ok {
		a, valid := board.ParseArmy(v)
		if !valid {
			return Config{}, fmt.Errorf("%s: unknown army %q", EnvArmy, v)
		}
		cfg.Army = a
	}
	if v, ok := lookup(EnvColor); ok {
		c, valid := board.ParseColor(v)
		if !valid {
			return Config{}, fmt.Errorf("%s: unknown color %q", EnvColor, v)
		}
		cfg.Color = c
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := lookup(EnvDebug); ok {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
	}
	if v, ok := lookup(EnvHUD); ok {
		if cfg.ShowHUD, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHUD, err)
		}
	}
	return cfg, nil
}

func positive(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be > 0, got %d", name, n)
	}
	return n, nil
}
