package editor

import (
	"errors"
	"testing"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/sirupsen/logrus"
)

// newTestGame builds a Game without a renderer or input source so it can be
// exercised without a window.
func newTestGame(setup board.Setup, copyText func(string) error) *Game {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return &Game{
		session:  NewSession(SessionOptions{Setup: setup}, log),
		width:    768,
		height:   768,
		copyText: copyText,
		log:      log,
	}
}

func TestGame_CopyFEN(t *testing.T) {
	var copied string
	g := newTestGame(board.SetupStandard, func(s string) error {
		copied = s
		return nil
	})
	g.copyFEN()
	if copied != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if g.status != "copied "+copied {
		t.Fatalf("unexpected status %q", g.status)
	}
}

func TestGame_CopyFENClipboardUnavailable(t *testing.T) {
	g := newTestGame(board.SetupPawns, func(string) error {
		return errors.New("no xclip")
	})
	g.copyFEN()
	if g.status != "clipboard unavailable" {
		t.Fatalf("unexpected status %q", g.status)
	}
}

func TestGame_LayoutTracksWindow(t *testing.T) {
	g := newTestGame(board.SetupEmpty, nil)
	if w, h := g.Layout(1024, 512); w != 1024 || h != 512 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	if w, h := g.Layout(0, 0); w != 1024 || h != 512 {
		t.Fatalf("zero-size layout should keep the last size, got %dx%d", w, h)
	}
}

func TestToScreenFlipsY(t *testing.T) {
	x, y := toScreen(-384, 384, 768, 768)
	if x != 0 || y != 0 {
		t.Fatalf("top-left corner mapped to (%v, %v)", x, y)
	}
	x, y = toScreen(0, 0, 768, 768)
	if x != 384 || y != 384 {
		t.Fatalf("center mapped to (%v, %v)", x, y)
	}
}

func TestCellRect(t *testing.T) {
	x, y, w, h := cellRect(board.Coord{X: 0, Y: 0}, 768, 768)
	if x != 0 || y != 672 || w != 96 || h != 96 {
		t.Fatalf("a1 rect = %v,%v %vx%v", x, y, w, h)
	}
}
