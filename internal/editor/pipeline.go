package editor

import (
	"errors"
	"math"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/cursor"
	"github.com/Garsondee/board-editor/internal/input"
	"github.com/sirupsen/logrus"
)

// PieceScale is the rendered piece size as a fraction of a tile.
const PieceScale = 0.67

// held is the single drag slot.
type held struct {
	piece board.Piece
	from  board.Coord
}

// Pipeline decides, once per tick, which mutations the input calls for,
// applies them to the grid and publishes them on the bus.
type Pipeline struct {
	grid    *board.Grid
	cursor  *cursor.Controller
	pointer *input.Translator
	bus     *Bus
	log     logrus.FieldLogger

	held *held
	tick int
}

// StepResult summarises one tick for the caller.
type StepResult struct {
	Tick      int
	Selection cursor.Changes
	Published int
}

// NewPipeline wires the decision logic to its collaborators.
func NewPipeline(grid *board.Grid, c *cursor.Controller, pointer *input.Translator, bus *Bus, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{grid: grid, cursor: c, pointer: pointer, bus: bus, log: log}
}

// Held returns the piece being dragged, if any.
func (p *Pipeline) Held() (board.Piece, bool) {
	if p.held == nil {
		return board.Piece{}, false
	}
	return p.held.piece, true
}

// Step runs one tick. Marker erasure always precedes the drag, drop, trash
// and placement logic of the same tick.
func (p *Pipeline) Step(f input.Frame) StepResult {
	p.tick = f.Tick
	before := p.bus.Pending()

	p.pointer.Sample(f)
	res := StepResult{Tick: f.Tick}
	res.Selection = p.cursor.Update(f, f.ButtonHeld(input.ButtonPrimary))

	primaryDown := f.ButtonJustPressed(input.ButtonPrimary)
	if primaryDown {
		p.clearMarkers()
	}

	// Drops finish regardless of mode so a held piece is never orphaned.
	if f.ButtonJustReleased(input.ButtonPrimary) {
		if p.held != nil {
			p.drop()
		} else {
			p.log.Debug("primary released with nothing held")
		}
	}

	mode := p.cursor.Mode()
	if primaryDown {
		switch mode.Kind {
		case cursor.DragDrop:
			p.pickUp(f)
		case cursor.Trash:
			p.trash()
		case cursor.Place:
			p.place()
		}
	}

	if mode.Kind == cursor.DragDrop && f.ButtonJustPressed(input.ButtonSecondary) {
		p.mark()
	}

	if f.ButtonJustPressed(input.ButtonAuxiliary) {
		p.clearMarkers()
	}

	res.Published = p.bus.Pending() - before
	return res
}

func (p *Pipeline) publish(kind MutationKind, piece board.Piece, cell board.Coord) {
	p.bus.Publish(Mutation{Tick: p.tick, Kind: kind, Piece: piece, Cell: cell})
}

// pickUp takes the first piece, in creation order, whose drawn center lies
// within half a piece of the pointer.
func (p *Pipeline) pickUp(f input.Frame) {
	if p.held != nil {
		p.log.WithField("piece", p.held.piece.ShortID()).Error("pick-up with a piece already held")
		return
	}
	tw, th := board.TileSize(f.WindowW, f.WindowH)
	radius := PieceScale * math.Min(tw, th) / 2
	off := p.pointer.Offset()
	for _, piece := range p.grid.Pieces() {
		if piece.Detached() {
			continue
		}
		cx, cy := board.CellCenter(piece.Pos, f.WindowW, f.WindowH)
		if math.Hypot(cx-off.X, cy-off.Y) >= radius {
			continue
		}
		from := piece.Pos
		detached, err := p.grid.Detach(piece.ID)
		if err != nil {
			p.log.WithError(err).Error("detach failed")
			return
		}
		p.held = &held{piece: detached, from: from}
		p.publish(PieceDragStarted, detached, from)
		return
	}
	p.log.WithField("cell", p.pointer.Cell().Name()).Debug("nothing to pick up")
}

// drop lands the held piece on the pointer cell, removing whatever stood
// there. Off-board drops return the piece to where it was picked up.
func (p *Pipeline) drop() {
	h := p.held
	p.held = nil

	target := p.pointer.Cell()
	if !target.OnBoard() {
		p.log.WithFields(logrus.Fields{
			"piece": h.piece.ShortID(),
			"cell":  target.Name(),
		}).Debug("dropped off the board, returning piece")
		target = h.from
	}
	if other, ok := p.grid.OccupantAt(target); ok && other.ID != h.piece.ID {
		p.grid.Delete(other.ID)
		p.publish(PieceDeleted, other, target)
	}
	if err := p.grid.Move(h.piece.ID, target); err != nil {
		p.log.WithError(err).Error("held piece vanished before drop")
		return
	}
	dropped, _ := p.grid.Get(h.piece.ID)
	p.publish(PieceDropped, dropped, target)
}

func (p *Pipeline) trash() {
	cell := p.pointer.Cell()
	victim, ok := p.grid.OccupantAt(cell)
	if !ok {
		p.log.WithField("cell", cell.Name()).Debug("trash on empty cell")
		return
	}
	p.grid.Delete(victim.ID)
	p.publish(PieceDeleted, victim, cell)
}

func (p *Pipeline) place() {
	cell := p.pointer.Cell()
	if !cell.OnBoard() {
		p.log.WithField("cell", cell.Name()).Debug("placement off the board")
		return
	}
	t, army, col, ok := p.cursor.Selection()
	if !ok {
		return
	}
	old, occupied := p.grid.OccupantAt(cell)
	piece, err := p.grid.Place(cell, t, army, col)
	switch {
	case err == nil:
	case errors.Is(err, board.ErrOccupiedCellOverwritten):
		if occupied {
			p.publish(PieceDeleted, old, cell)
		}
	default:
		p.log.WithError(err).Error("placement failed")
		return
	}
	p.publish(PieceDrawn, piece, cell)
}

func (p *Pipeline) mark() {
	cell := p.pointer.Cell()
	if !cell.OnBoard() {
		return
	}
	p.grid.AddMarker(cell)
	p.bus.Publish(Mutation{Tick: p.tick, Kind: MarkerPlaced, Cell: cell})
}

func (p *Pipeline) clearMarkers() {
	cleared := p.grid.ClearMarkers()
	if len(cleared) == 0 {
		return
	}
	p.bus.Publish(Mutation{Tick: p.tick, Kind: MarkersCleared, Cleared: cleared})
}
