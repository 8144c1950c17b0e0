package input

import (
	"math"

	"github.com/Garsondee/board-editor/internal/board"
)

// Translator converts pointer-moved events into a continuous offset from the
// window center and a discrete board cell.
type Translator struct {
	pos     Point
	windowW float64
	windowH float64
}

// Sample takes the last pointer move of the frame; earlier moves in the same
// tick are dropped. Without a move the previous position stays current.
func (t *Translator) Sample(f Frame) {
	t.windowW, t.windowH = f.WindowW, f.WindowH
	if n := len(f.Moves); n > 0 {
		t.pos = f.Moves[n-1]
	}
}

// Offset returns the pointer relative to the window center, y up.
func (t *Translator) Offset() Point {
	return Point{
		X: t.pos.X - t.windowW/2,
		Y: t.pos.Y - t.windowH/2,
	}
}

// Cell returns the board cell under the pointer. The result is not clamped;
// callers treat anything off the board as "nowhere".
func (t *Translator) Cell() board.Coord {
	return CellAt(t.pos, t.windowW, t.windowH)
}

// CellAt is floor(pixel / (dim/8)) per axis.
func CellAt(p Point, windowW, windowH float64) board.Coord {
	if windowW <= 0 || windowH <= 0 {
		return board.Detached
	}
	tw, th := board.TileSize(windowW, windowH)
	return board.Coord{
		X: int(math.Floor(p.X / tw)),
		Y: int(math.Floor(p.Y / th)),
	}
}

// CellPixel returns the window pixel at the middle of a cell.
func CellPixel(c board.Coord, windowW, windowH float64) Point {
	tw, th := board.TileSize(windowW, windowH)
	return Point{
		X: (float64(c.X) + 0.5) * tw,
		Y: (float64(c.Y) + 0.5) * th,
	}
}
