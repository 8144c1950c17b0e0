package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Garsondee/board-editor/internal/board"
)

// ErrBadCommand is returned for unparseable script commands.
var ErrBadCommand = errors.New("bad script command")

// Script produces frames for a window-less session. Every step is one tick;
// helpers that model a click emit a press tick and a release tick.
type Script struct {
	tracker Tracker
	windowW float64
	windowH float64
	keys    KeySet
	buttons ButtonSet
	frames  []Frame
}

// NewScript starts an empty script for a window of the given size.
func NewScript(windowW, windowH float64) *Script {
	return &Script{windowW: windowW, windowH: windowH}
}

// Frames returns the frames recorded so far.
func (s *Script) Frames() []Frame {
	return s.frames
}

// Resize changes the window size for subsequent ticks.
func (s *Script) Resize(windowW, windowH float64) *Script {
	s.windowW, s.windowH = windowW, windowH
	return s
}

// Step records one tick with the current held state and the given moves.
func (s *Script) Step(moves ...Point) *Script {
	s.frames = append(s.frames, s.tracker.Next(s.keys, s.buttons, moves, s.windowW, s.windowH))
	return s
}

// KeyDown holds k from the next tick on.
func (s *Script) KeyDown(k Key) *Script {
	s.keys = s.keys.With(k)
	return s
}

// KeyUp releases k from the next tick on.
func (s *Script) KeyUp(k Key) *Script {
	s.keys &^= 1 << k
	return s
}

// ButtonDown holds b from the next tick on.
func (s *Script) ButtonDown(b Button) *Script {
	s.buttons = s.buttons.With(b)
	return s
}

// ButtonUp releases b from the next tick on.
func (s *Script) ButtonUp(b Button) *Script {
	s.buttons &^= 1 << b
	return s
}

// Tap presses keys together for one tick and releases them on the next.
func (s *Script) Tap(keys ...Key) *Script {
	for _, k := range keys {
		s.KeyDown(k)
	}
	s.Step()
	for _, k := range keys {
		s.KeyUp(k)
	}
	return s.Step()
}

// MoveTo moves the pointer to a pixel.
func (s *Script) MoveTo(p Point) *Script {
	return s.Step(p)
}

// MoveToCell moves the pointer to the middle of a cell.
func (s *Script) MoveToCell(c board.Coord) *Script {
	return s.Step(CellPixel(c, s.windowW, s.windowH))
}

// ClickAt presses and releases b at pixel p.
func (s *Script) ClickAt(b Button, p Point) *Script {
	s.ButtonDown(b)
	s.Step(p)
	s.ButtonUp(b)
	return s.Step()
}

// Click presses and releases b over a cell.
func (s *Script) Click(b Button, c board.Coord) *Script {
	return s.ClickAt(b, CellPixel(c, s.windowW, s.windowH))
}

// Drag presses the primary button on from, moves to to and releases there.
func (s *Script) Drag(from, to board.Coord) *Script {
	s.ButtonDown(ButtonPrimary)
	s.Step(CellPixel(from, s.windowW, s.windowH))
	s.Step(CellPixel(to, s.windowW, s.windowH))
	s.ButtonUp(ButtonPrimary)
	return s.Step()
}

// Parse appends the ticks described by a whitespace-separated command list:
//
//	key:7          tap a key (names as printed by Key.String)
//	keys:left+d    tap keys in the same tick
//	click:4,1      primary click on a cell
//	rclick:3,3     secondary click on a cell
//	mclick         auxiliary click where the pointer is
//	drag:4,1>4,3   primary drag between cells
//	move:4,3       move the pointer to a cell
//	down:4,1       press primary on a cell and keep holding
//	up             release primary
//	wait           one idle tick
func (s *Script) Parse(commands string) error {
	for _, cmd := range strings.Fields(commands) {
		if err := s.apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (s *Script) apply(cmd string) error {
	verb, arg, _ := strings.Cut(cmd, ":")
	switch verb {
	case "key", "keys":
		var keys []Key
		for _, name := range strings.Split(arg, "+") {
			k, ok := ParseKey(name)
			if !ok {
				return fmt.Errorf("%w: unknown key %q in %q", ErrBadCommand, name, cmd)
			}
			keys = append(keys, k)
		}
		s.Tap(keys...)
	case "click", "rclick":
		c, err := parseCell(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", cmd, err)
		}
		b := ButtonPrimary
		if verb == "rclick" {
			b = ButtonSecondary
		}
		s.Click(b, c)
	case "mclick":
		s.ButtonDown(ButtonAuxiliary).Step().ButtonUp(ButtonAuxiliary).Step()
	case "drag":
		from, to, ok := strings.Cut(arg, ">")
		if !ok {
			return fmt.Errorf("%w: %q needs from>to", ErrBadCommand, cmd)
		}
		a, err := parseCell(from)
		if err != nil {
			return fmt.Errorf("%q: %w", cmd, err)
		}
		b, err := parseCell(to)
		if err != nil {
			return fmt.Errorf("%q: %w", cmd, err)
		}
		s.Drag(a, b)
	case "move":
		c, err := parseCell(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", cmd, err)
		}
		s.MoveToCell(c)
	case "down":
		c, err := parseCell(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", cmd, err)
		}
		s.ButtonDown(ButtonPrimary).MoveToCell(c)
	case "up":
		s.ButtonUp(ButtonPrimary).Step()
	case "wait":
		s.Step()
	default:
		return fmt.Errorf("%w: %q", ErrBadCommand, cmd)
	}
	return nil
}

func parseCell(arg string) (board.Coord, error) {
	xs, ys, ok := strings.Cut(arg, ",")
	if !ok {
		return board.Coord{}, fmt.Errorf("%w: cell %q is not x,y", ErrBadCommand, arg)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: cell %q: %v", ErrBadCommand, arg, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: cell %q: %v", ErrBadCommand, arg, err)
	}
	return board.Coord{X: x, Y: y}, nil
}
