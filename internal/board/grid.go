package board

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrOccupiedCellOverwritten is returned by Place when an existing piece
	// was removed to make room. The new piece is still placed.
	ErrOccupiedCellOverwritten = errors.New("occupied cell overwritten")
	// ErrOffBoard is returned when a target cell lies outside the board.
	ErrOffBoard = errors.New("cell is off the board")
	// ErrUnknownPiece is returned for handles that are not on the grid.
	ErrUnknownPiece = errors.New("unknown piece")
	// ErrInvariant marks an occupancy or drag-exclusivity violation.
	ErrInvariant = errors.New("board invariant violated")
)

// Grid is the authoritative board state: the pieces, their cells and the
// user's markers. It knows nothing about rendering.
type Grid struct {
	squares [Size * Size]Square
	pieces  []Piece // creation order
	markers []Coord
	log     logrus.FieldLogger
}

// NewGrid builds an empty board with its 64 squares.
func NewGrid(log logrus.FieldLogger) *Grid {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Grid{log: log}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := Coord{X: x, Y: y}
			g.squares[y*Size+x] = Square{Pos: c, Shade: ShadeOf(c)}
		}
	}
	return g
}

// Squares returns the static cell descriptors, rank by rank.
func (g *Grid) Squares() []Square {
	out := make([]Square, len(g.squares))
	copy(out, g.squares[:])
	return out
}

// Pieces returns a snapshot of every piece in creation order.
func (g *Grid) Pieces() []Piece {
	out := make([]Piece, len(g.pieces))
	copy(out, g.pieces)
	return out
}

// Len returns the number of pieces, detached ones included.
func (g *Grid) Len() int {
	return len(g.pieces)
}

// OccupantAt returns the piece standing on c. Detached pieces never match.
func (g *Grid) OccupantAt(c Coord) (Piece, bool) {
	if !c.OnBoard() {
		return Piece{}, false
	}
	for _, p := range g.pieces {
		if p.Pos == c {
			return p, true
		}
	}
	return Piece{}, false
}

// Get looks a piece up by handle.
func (g *Grid) Get(id PieceID) (Piece, bool) {
	i := g.index(id)
	if i < 0 {
		return Piece{}, false
	}
	return g.pieces[i], true
}

// Place creates a piece on c. An existing occupant is deleted first and
// reported with ErrOccupiedCellOverwritten alongside the new piece.
func (g *Grid) Place(c Coord, t PieceType, a Army, col Color) (Piece, error) {
	if !c.OnBoard() {
		return Piece{}, fmt.Errorf("place %s at %s: %w", t, c, ErrOffBoard)
	}
	var err error
	if old, ok := g.OccupantAt(c); ok {
		g.Delete(old.ID)
		err = fmt.Errorf("place %s at %s over %s: %w", t, c, old.Label(), ErrOccupiedCellOverwritten)
		g.log.WithFields(logrus.Fields{
			"cell":    c.Name(),
			"removed": old.ShortID(),
		}).Debug("placement overwrote occupant")
	}
	p := Piece{
		ID:    uuid.New(),
		Type:  t,
		Army:  a,
		Color: col,
		Pos:   c,
	}
	g.pieces = append(g.pieces, p)
	return p, err
}

// Move sets a piece's cell. Occupancy is not re-checked here: callers clear
// the target first.
func (g *Grid) Move(id PieceID, c Coord) error {
	i := g.index(id)
	if i < 0 {
		return fmt.Errorf("move %s: %w", id, ErrUnknownPiece)
	}
	g.pieces[i].Pos = c
	return nil
}

// Delete removes a piece. Deleting a handle twice is a no-op.
func (g *Grid) Delete(id PieceID) (Piece, bool) {
	i := g.index(id)
	if i < 0 {
		return Piece{}, false
	}
	p := g.pieces[i]
	g.pieces = append(g.pieces[:i], g.pieces[i+1:]...)
	return p, true
}

// Detach lifts a piece off the board for dragging.
func (g *Grid) Detach(id PieceID) (Piece, error) {
	i := g.index(id)
	if i < 0 {
		return Piece{}, fmt.Errorf("detach %s: %w", id, ErrUnknownPiece)
	}
	g.pieces[i].Pos = Detached
	return g.pieces[i], nil
}

// AddMarker records a user annotation. Markers may share a cell with a piece.
func (g *Grid) AddMarker(c Coord) {
	g.markers = append(g.markers, c)
}

// Markers returns the marked cells in placement order.
func (g *Grid) Markers() []Coord {
	out := make([]Coord, len(g.markers))
	copy(out, g.markers)
	return out
}

// ClearMarkers removes every marker and returns what was removed.
func (g *Grid) ClearMarkers() []Coord {
	cleared := g.markers
	g.markers = nil
	return cleared
}

// Detached returns every piece currently mid-drag.
func (g *Grid) Detached() []Piece {
	var out []Piece
	for _, p := range g.pieces {
		if p.Detached() {
			out = append(out, p)
		}
	}
	return out
}

// CheckInvariants verifies one piece per cell and at most one detached piece.
func (g *Grid) CheckInvariants() error {
	seen := make(map[Coord]PieceID, len(g.pieces))
	detached := 0
	for _, p := range g.pieces {
		if p.Detached() {
			detached++
			continue
		}
		if other, dup := seen[p.Pos]; dup {
			return fmt.Errorf("%w: %s held by %s and %s", ErrInvariant, p.Pos, other, p.ID)
		}
		seen[p.Pos] = p.ID
	}
	if detached > 1 {
		return fmt.Errorf("%w: %d pieces detached", ErrInvariant, detached)
	}
	return nil
}

func (g *Grid) index(id PieceID) int {
	for i := range g.pieces {
		if g.pieces[i].ID == id {
			return i
		}
	}
	return -1
}
