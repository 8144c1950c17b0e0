// Package cursor holds the editor's interaction mode and the army and color
// used for new pieces. Transitions fire on key press edges only.
package cursor

import (
	"fmt"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/input"
	"github.com/sirupsen/logrus"
)

// Kind is the active interaction mode.
type Kind uint8

const (
	DragDrop Kind = iota
	Trash
	Place
)

// Mode is a Kind plus, for Place, the piece type to create.
type Mode struct {
	Kind  Kind
	Piece board.PieceType
}

// PlaceMode returns the Place mode for t.
func PlaceMode(t board.PieceType) Mode {
	return Mode{Kind: Place, Piece: t}
}

func (m Mode) String() string {
	switch m.Kind {
	case DragDrop:
		return "drag-drop"
	case Trash:
		return "trash"
	case Place:
		return fmt.Sprintf("place-%s", m.Piece)
	}
	return fmt.Sprintf("mode(%d)", m.Kind)
}

// Keys is the part of an input frame the controller reads.
type Keys interface {
	JustPressed(input.Key) bool
}

type binding struct {
	key   input.Key
	alias input.Key
	mode  Mode
}

// bindings are evaluated in order; within a tick the last match wins.
var bindings = []binding{
	{input.Digit(1), input.Numpad(1), Mode{Kind: DragDrop}},
	{input.Digit(0), input.Numpad(0), Mode{Kind: Trash}},
	{input.Digit(2), input.Numpad(2), PlaceMode(board.King)},
	{input.Digit(3), input.Numpad(3), PlaceMode(board.Queen)},
	{input.Digit(4), input.Numpad(4), PlaceMode(board.Rook)},
	{input.Digit(5), input.Numpad(5), PlaceMode(board.Bishop)},
	{input.Digit(6), input.Numpad(6), PlaceMode(board.Knight)},
	{input.Digit(7), input.Numpad(7), PlaceMode(board.Pawn)},
}

// ColorToggleKey flips the color of new pieces.
const ColorToggleKey = input.KeyC

// Changes reports what an Update changed.
type Changes struct {
	Mode  bool
	Army  bool
	Color bool
}

// Any reports whether anything changed.
func (c Changes) Any() bool {
	return c.Mode || c.Army || c.Color
}

// Controller is the mode state machine. The zero value is not ready; use New.
type Controller struct {
	mode  Mode
	army  int
	color int
	log   logrus.FieldLogger
}

// New starts in drag-drop mode with the given army and color.
func New(army board.Army, color board.Color, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := &Controller{mode: Mode{Kind: DragDrop}, log: log}
	for i, a := range board.Armies {
		if a == army {
			c.army = i
		}
	}
	if color == board.Black {
		c.color = 1
	}
	return c
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode forces a mode, for setup and tests.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
}

// Army returns the selected army.
func (c *Controller) Army() board.Army {
	return board.Armies[c.army]
}

// Color returns the selected color.
func (c *Controller) Color() board.Color {
	return board.Colors[c.color]
}

// Update applies this tick's key edges. Mode keys are ignored while the
// primary button is held so a drag cannot change mode halfway.
func (c *Controller) Update(keys Keys, primaryHeld bool) Changes {
	var ch Changes
	if !primaryHeld {
		for _, b := range bindings {
			if pressedAlone(keys, b.key, b.alias) && c.mode != b.mode {
				c.mode = b.mode
				ch.Mode = true
			}
		}
	}

	dec := pressedAlone(keys, input.KeyLeft, input.KeyA)
	inc := pressedAlone(keys, input.KeyRight, input.KeyD)
	if dec != inc {
		step := 1
		if dec {
			step = -1
		}
		c.army = wrap(c.army+step, len(board.Armies))
		ch.Army = true
	}

	if keys.JustPressed(ColorToggleKey) {
		c.color = wrap(c.color+1, len(board.Colors))
		ch.Color = true
	}

	if ch.Any() {
		c.log.WithFields(logrus.Fields{
			"mode":  c.mode.String(),
			"army":  c.Army().String(),
			"color": c.Color().String(),
		}).Debug("cursor selection changed")
	}
	return ch
}

// Selection returns what a press in Place mode creates. Piece types outside
// the known six fall back to a pawn.
func (c *Controller) Selection() (board.PieceType, board.Army, board.Color, bool) {
	if c.mode.Kind != Place {
		return 0, 0, 0, false
	}
	t := c.mode.Piece
	if !t.Valid() {
		c.log.WithField("piece", t.String()).Debug("unmapped placement type, using pawn")
		t = board.Pawn
	}
	return t, c.Army(), c.Color(), true
}

// pressedAlone is an exclusive-or over two aliased keys.
func pressedAlone(keys Keys, a, b input.Key) bool {
	return keys.JustPressed(a) != keys.JustPressed(b)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
