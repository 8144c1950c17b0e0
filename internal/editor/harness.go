package editor

import (
	"fmt"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/cursor"
	"github.com/Garsondee/board-editor/internal/input"
	"github.com/sirupsen/logrus"
)

// Headless drives a Session from a Script with no window. It mirrors
// Game.Update without any ebiten dependency and is used by tests and by the
// headless-replay command.
type Headless struct {
	*Session
	WindowW float64
	WindowH float64

	script  *input.Script
	fed     int
	opts    SessionOptions
	logger  logrus.FieldLogger
	spawns  []spawn
	initial *cursor.Mode
}

type spawn struct {
	cell  board.Coord
	typ   board.PieceType
	army  board.Army
	color board.Color
}

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra optionKind = iota // window, setup, selection, logging: applied first
	optBoard                   // extra pieces and mode: applied after the session exists
)

// HeadlessOption is a builder function applied to a Headless during construction.
type HeadlessOption struct {
	kind optionKind
	fn   func(*Headless)
}

// WithWindow sets the window size used for pointer translation.
func WithWindow(w, h float64) HeadlessOption {
	return HeadlessOption{optInfra, func(h2 *Headless) {
		h2.WindowW, h2.WindowH = w, h
	}}
}

// WithSetup selects the starting layout.
func WithSetup(s board.Setup) HeadlessOption {
	return HeadlessOption{optInfra, func(h *Headless) {
		h.opts.Setup = s
	}}
}

// WithArmy selects the starting army.
func WithArmy(a board.Army) HeadlessOption {
	return HeadlessOption{optInfra, func(h *Headless) {
		h.opts.Army = a
	}}
}

// WithColor selects the starting color for new pieces.
func WithColor(c board.Color) HeadlessOption {
	return HeadlessOption{optInfra, func(h *Headless) {
		h.opts.Color = c
	}}
}

// WithDebug makes Run stop at the first invariant violation.
func WithDebug(debug bool) HeadlessOption {
	return HeadlessOption{optInfra, func(h *Headless) {
		h.opts.Debug = debug
	}}
}

// WithLogger replaces the default quiet logger.
func WithLogger(l logrus.FieldLogger) HeadlessOption {
	return HeadlessOption{optInfra, func(h *Headless) {
		h.logger = l
	}}
}

// WithPiece adds a piece after the starting layout.
func WithPiece(c board.Coord, t board.PieceType, col board.Color) HeadlessOption {
	return HeadlessOption{optBoard, func(h *Headless) {
		h.spawns = append(h.spawns, spawn{cell: c, typ: t, army: h.opts.Army, color: col})
	}}
}

// WithMode starts the cursor in a given mode.
func WithMode(m cursor.Mode) HeadlessOption {
	return HeadlessOption{optBoard, func(h *Headless) {
		h.initial = &m
	}}
}

// NewHeadless constructs a Headless from the given options in ordered passes:
//  1. Infrastructure (window, setup, selection, logging)
//  2. Session
//  3. Extra pieces and starting mode
func NewHeadless(opts ...HeadlessOption) *Headless {
	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)
	h := &Headless{
		WindowW: 768,
		WindowH: 768,
		opts:    SessionOptions{Setup: board.SetupEmpty},
		logger:  quiet,
	}
	for _, o := range opts {
		if o.kind == optInfra {
			o.fn(h)
		}
	}
	h.Session = NewSession(h.opts, h.logger)
	for _, o := range opts {
		if o.kind == optBoard {
			o.fn(h)
		}
	}
	for _, sp := range h.spawns {
		if _, err := h.Spawn(sp.cell, sp.typ, sp.army, sp.color); err != nil {
			h.logger.WithError(err).Warn("headless spawn skipped")
		}
	}
	if h.initial != nil {
		h.Cursor.SetMode(*h.initial)
	}
	h.script = input.NewScript(h.WindowW, h.WindowH)
	return h
}

// Script returns the input script; queue input with it, then call Run.
func (h *Headless) Script() *input.Script {
	return h.script
}

// Run feeds every frame queued since the last Run. In debug mode it stops at
// the first violation; otherwise it returns the first one after running all.
func (h *Headless) Run() error {
	var first error
	frames := h.script.Frames()
	for ; h.fed < len(frames); h.fed++ {
		_, err := h.Step(frames[h.fed])
		if err == nil {
			continue
		}
		err = fmt.Errorf("tick %d: %w", frames[h.fed].Tick, err)
		if h.opts.Debug {
			h.fed++
			return err
		}
		if first == nil {
			first = err
		}
	}
	return first
}

// Do parses commands into the script and runs them.
func (h *Headless) Do(commands string) error {
	if err := h.script.Parse(commands); err != nil {
		return err
	}
	return h.Run()
}

// PieceAt is a convenience for tests and reports.
func (h *Headless) PieceAt(c board.Coord) (board.Piece, bool) {
	return h.Grid.OccupantAt(c)
}
