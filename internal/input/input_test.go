package input

import (
	"errors"
	"testing"

	"github.com/Garsondee/board-editor/internal/board"
)

func TestTrackerEdges(t *testing.T) {
	var tr Tracker
	f := tr.Next(KeySet(0).With(KeyDigit1), ButtonSet(0).With(ButtonPrimary), nil, 768, 768)
	if !f.JustPressed(KeyDigit1) || !f.ButtonJustPressed(ButtonPrimary) {
		t.Fatalf("expected press edges on first tick")
	}

	f = tr.Next(KeySet(0).With(KeyDigit1), ButtonSet(0).With(ButtonPrimary), nil, 768, 768)
	if f.JustPressed(KeyDigit1) {
		t.Fatalf("held key must not re-fire")
	}
	if !f.KeyHeld(KeyDigit1) || !f.ButtonHeld(ButtonPrimary) {
		t.Fatalf("expected held state")
	}

	f = tr.Next(0, 0, nil, 768, 768)
	if !f.ButtonJustReleased(ButtonPrimary) {
		t.Fatalf("expected release edge")
	}
	if f.ButtonHeld(ButtonPrimary) {
		t.Fatalf("button should be up")
	}
	if tr.Tick() != 3 {
		t.Fatalf("tick = %d, want 3", tr.Tick())
	}
}

func TestTranslatorUsesLastMoveOnly(t *testing.T) {
	var tr Translator
	tr.Sample(Frame{WindowW: 768, WindowH: 768, Moves: []Point{{10, 10}, {700, 700}, {150, 50}}})
	if got := tr.Cell(); got != (board.Coord{X: 1, Y: 0}) {
		t.Fatalf("cell = %v, want (1,0)", got)
	}
	off := tr.Offset()
	if off.X != 150-384 || off.Y != 50-384 {
		t.Fatalf("offset = %+v", off)
	}

	// A tick without moves keeps the last known position.
	tr.Sample(Frame{WindowW: 768, WindowH: 768})
	if got := tr.Cell(); got != (board.Coord{X: 1, Y: 0}) {
		t.Fatalf("cell after idle tick = %v", got)
	}
}

func TestTranslatorDoesNotClamp(t *testing.T) {
	var tr Translator
	tr.Sample(Frame{WindowW: 768, WindowH: 768, Moves: []Point{{-5, 800}}})
	got := tr.Cell()
	if got != (board.Coord{X: -1, Y: 8}) {
		t.Fatalf("cell = %v, want (-1,8)", got)
	}
	if got.OnBoard() {
		t.Fatalf("off-board cell reported on board")
	}
}

func TestCellAtFollowsWindowSize(t *testing.T) {
	p := Point{X: 250, Y: 90}
	if got := CellAt(p, 400, 800); got != (board.Coord{X: 5, Y: 0}) {
		t.Fatalf("cell = %v", got)
	}
	if got := CellAt(p, 0, 0); got != board.Detached {
		t.Fatalf("zero window should yield the sentinel, got %v", got)
	}
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			c := board.Coord{X: x, Y: y}
			if got := CellAt(CellPixel(c, 640, 480), 640, 480); got != c {
				t.Fatalf("round trip %v -> %v", c, got)
			}
		}
	}
}

func TestScriptParse(t *testing.T) {
	s := NewScript(768, 768)
	if err := s.Parse("key:7 click:4,1 drag:4,1>4,3 rclick:3,3 keys:left+d mclick wait"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	frames := s.Frames()
	// 2 (key) + 2 (click) + 3 (drag) + 2 (rclick) + 2 (keys) + 2 (mclick) + 1 (wait)
	if len(frames) != 14 {
		t.Fatalf("got %d frames, want 14", len(frames))
	}
	if !frames[0].JustPressed(KeyDigit7) {
		t.Fatalf("first frame should press 7")
	}
	if !frames[2].ButtonJustPressed(ButtonPrimary) || !frames[3].ButtonJustReleased(ButtonPrimary) {
		t.Fatalf("click should press then release")
	}
	if !frames[9].JustPressed(KeyLeft) || !frames[9].JustPressed(KeyD) {
		t.Fatalf("keys:left+d should press both in one tick")
	}
}

func TestScriptParseErrors(t *testing.T) {
	for _, cmd := range []string{"jump", "key:f13", "click:4", "drag:1,1", "move:a,b"} {
		err := NewScript(768, 768).Parse(cmd)
		if !errors.Is(err, ErrBadCommand) {
			t.Errorf("%q: err = %v, want ErrBadCommand", cmd, err)
		}
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKey(%q) = %v, %v", k.String(), got, ok)
		}
	}
}

func TestScriptResize(t *testing.T) {
	s := NewScript(768, 768)
	s.MoveToCell(board.Coord{X: 4, Y: 4})
	s.Resize(400, 200).MoveToCell(board.Coord{X: 4, Y: 4})

	frames := s.Frames()
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[1].WindowW != 400 || frames[1].WindowH != 200 {
		t.Fatalf("resized frame is %vx%v", frames[1].WindowW, frames[1].WindowH)
	}
	if got := frames[1].Moves[0]; got != (Point{X: 225, Y: 112.5}) {
		t.Fatalf("e5 center after resize = %+v", got)
	}

	var tr Translator
	for _, f := range frames {
		tr.Sample(f)
		if got := tr.Cell(); got != (board.Coord{X: 4, Y: 4}) {
			t.Fatalf("tick %d: cell = %v, want e5", f.Tick, got)
		}
	}
	// Offset follows the new window center.
	if off := tr.Offset(); off.X != 25 || off.Y != 12.5 {
		t.Fatalf("offset = %+v", off)
	}
}
