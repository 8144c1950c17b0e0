package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	editLogMaxEntries = 12
	editLogLineHeight = 14
	editLogWidth      = 300
)

// EditLogEntry is a single line in the on-screen edit log.
type EditLogEntry struct {
	Tick    int
	Message string
}

// EditLog is a ring buffer of recent edits rendered in the HUD.
type EditLog struct {
	entries []EditLogEntry
	head    int
	count   int
}

// NewEditLog creates an edit log with a fixed capacity.
func NewEditLog() *EditLog {
	return &EditLog{
		entries: make([]EditLogEntry, editLogMaxEntries),
	}
}

// Add appends an entry to the log.
func (el *EditLog) Add(tick int, msg string) {
	el.entries[el.head] = EditLogEntry{Tick: tick, Message: msg}
	el.head = (el.head + 1) % editLogMaxEntries
	if el.count < editLogMaxEntries {
		el.count++
	}
}

// Record is the bus listener.
func (el *EditLog) Record(m Mutation) {
	switch m.Kind {
	case MarkerPlaced:
		el.Add(m.Tick, "mark "+m.Cell.Name())
	case MarkersCleared:
		el.Add(m.Tick, fmt.Sprintf("clear %d marks", len(m.Cleared)))
	case PieceDragStarted:
		el.Add(m.Tick, fmt.Sprintf("lift %s %s", m.Piece.Label(), m.Cell.Name()))
	case PieceDropped:
		el.Add(m.Tick, fmt.Sprintf("drop %s %s", m.Piece.Label(), m.Cell.Name()))
	case PieceDeleted:
		el.Add(m.Tick, fmt.Sprintf("del  %s %s", m.Piece.Label(), m.Cell.Name()))
	case PieceDrawn:
		if m.Tick == 0 {
			return // starting layout
		}
		el.Add(m.Tick, fmt.Sprintf("new  %s %s", m.Piece.Label(), m.Cell.Name()))
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EditLog) Recent() []EditLogEntry {
	result := make([]EditLogEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + editLogMaxEntries) % editLogMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the log as a translucent panel with its top-left at (x, y).
func (el *EditLog) Draw(screen *ebiten.Image, x, y int) {
	entries := el.Recent()
	h := editLogLineHeight*(len(entries)+1) + 6
	vector.FillRect(screen, float32(x), float32(y), editLogWidth, float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, "EDITS", x+6, y+2)
	ly := y + 2 + editLogLineHeight
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), x+6, ly)
		ly += editLogLineHeight
	}
}
