package editor

import (
	"errors"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/cursor"
	"github.com/Garsondee/board-editor/internal/input"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// SessionOptions selects the starting state of a session.
type SessionOptions struct {
	Setup board.Setup
	Army  board.Army
	Color board.Color
	// Debug turns invariant violations into errors that stop the editor.
	Debug bool
}

// Session is one editing session: the board, the selection state, the
// pipeline deciding mutations and the listeners deriving visual state.
// It is driven one tick at a time by Step and owns no goroutines.
type Session struct {
	Grid     *board.Grid
	Cursor   *cursor.Controller
	Pointer  *input.Translator
	Pipeline *Pipeline
	Bus      *Bus
	Scene    *Scene
	Journal  *Journal
	EditLog  *EditLog

	debug bool
	tick  int
	log   logrus.FieldLogger
}

// NewSession builds a session and lays out the starting pieces.
func NewSession(opts SessionOptions, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	world := donburi.NewWorld()
	grid := board.NewGrid(log.WithField("component", "grid"))
	s := &Session{
		Grid:    grid,
		Cursor:  cursor.New(opts.Army, opts.Color, log.WithField("component", "cursor")),
		Pointer: &input.Translator{},
		Bus:     NewBus(world),
		Scene:   NewScene(world, grid.Squares()),
		Journal: NewJournal(),
		EditLog: NewEditLog(),
		debug:   opts.Debug,
		log:     log,
	}
	s.Pipeline = NewPipeline(s.Grid, s.Cursor, s.Pointer, s.Bus, log.WithField("component", "pipeline"))

	// The scene subscribes first so other listeners observe derived state
	// that already includes the mutation.
	s.Bus.Subscribe("scene", s.Scene.Apply)
	s.Bus.Subscribe("journal", s.Journal.Record)
	s.Bus.Subscribe("editlog", s.EditLog.Record)

	for _, p := range grid.Populate(opts.Setup, opts.Army) {
		s.Bus.Publish(Mutation{Kind: PieceDrawn, Piece: p, Cell: p.Pos})
	}
	s.Bus.Flush()
	return s
}

// Spawn places a piece outside of the input pipeline, e.g. for scripted setups.
func (s *Session) Spawn(c board.Coord, t board.PieceType, a board.Army, col board.Color) (board.Piece, error) {
	old, occupied := s.Grid.OccupantAt(c)
	p, err := s.Grid.Place(c, t, a, col)
	if errors.Is(err, board.ErrOffBoard) {
		return board.Piece{}, err
	}
	if occupied {
		s.Bus.Publish(Mutation{Tick: s.tick, Kind: PieceDeleted, Piece: old, Cell: c})
	}
	s.Bus.Publish(Mutation{Tick: s.tick, Kind: PieceDrawn, Piece: p, Cell: c})
	s.Bus.Flush()
	return p, nil
}

// Tick returns the last processed tick.
func (s *Session) Tick() int {
	return s.tick
}

// Dragging returns the held piece, if a drag is in flight.
func (s *Session) Dragging() (board.Piece, bool) {
	return s.Pipeline.Held()
}

// Step runs one tick: decide and apply mutations, deliver every queued
// mutation, move the floating piece, then verify the board. A non-nil error is
// an invariant violation; it is always logged.
func (s *Session) Step(f input.Frame) (StepResult, error) {
	s.tick = f.Tick
	res := s.Pipeline.Step(f)
	if res.Selection.Any() {
		s.Journal.RecordSelection(f.Tick, res.Selection, s.Cursor)
		s.EditLog.Add(f.Tick, s.Cursor.Mode().String()+" "+s.Cursor.Army().String()+" "+s.Cursor.Color().String())
	}
	s.Bus.Flush()
	// After the flush, so a piece lifted this tick is already floating.
	if p, ok := s.Pipeline.Held(); ok {
		s.Scene.Follow(p.ID, s.Pointer.Offset(), s.Pointer.Cell())
	}

	if err := s.Check(); err != nil {
		entry := s.log.WithError(err).WithField("tick", f.Tick)
		if s.debug {
			entry.Error("board invariant violated, stopping")
		} else {
			entry.Error("board invariant violated")
		}
		return res, err
	}
	return res, nil
}

// Debug reports whether violations should stop the editor.
func (s *Session) Debug() bool {
	return s.debug
}

// Check verifies the grid invariants and that the scene mirrors the grid.
func (s *Session) Check() error {
	if err := s.Grid.CheckInvariants(); err != nil {
		return err
	}
	_, dragging := s.Pipeline.Held()
	return s.Scene.Verify(s.Grid, dragging)
}
