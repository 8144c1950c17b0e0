package editor

import (
	"fmt"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// HighlightKind separates the two highlight lifecycles.
type HighlightKind uint8

const (
	// DragHighlight lives exactly as long as a drag.
	DragHighlight HighlightKind = iota
	// MarkerHighlight lives until the next primary-button interaction.
	MarkerHighlight
)

func (k HighlightKind) String() string {
	if k == MarkerHighlight {
		return "marker-highlight"
	}
	return "highlight"
}

type cellData struct {
	Pos board.Coord
}

type squareData struct {
	Shade board.Shade
}

// Sprite is the visual state of one piece.
type Sprite struct {
	Piece    board.Piece
	AssetKey string
	Cell     board.Coord
	// Floating sprites follow the pointer offset instead of their cell.
	Floating bool
	Offset   input.Point
}

type highlightData struct {
	Kind HighlightKind
}

type markerData struct {
	Seq int
}

var (
	cellComponent      = donburi.NewComponentType[cellData]()
	squareComponent    = donburi.NewComponentType[squareData]()
	spriteComponent    = donburi.NewComponentType[Sprite]()
	highlightComponent = donburi.NewComponentType[highlightData]()
	markerComponent    = donburi.NewComponentType[markerData]()
)

// Highlight is a highlighted cell as the renderer sees it.
type Highlight struct {
	Kind HighlightKind
	Cell board.Coord
}

// Scene mirrors the board into ECS entities for rendering. Bus listeners
// are its only writers, apart from the drag-follow position.
type Scene struct {
	world      donburi.World
	sprites    map[board.PieceID]donburi.Entity
	markerSeq  int
	squares    *donburi.Query
	spriteQ    *donburi.Query
	highlights *donburi.Query
	markers    *donburi.Query
}

// NewScene spawns one entity per square.
func NewScene(world donburi.World, squares []board.Square) *Scene {
	s := &Scene{
		world:      world,
		sprites:    make(map[board.PieceID]donburi.Entity),
		squares:    donburi.NewQuery(filter.Contains(squareComponent, cellComponent)),
		spriteQ:    donburi.NewQuery(filter.Contains(spriteComponent)),
		highlights: donburi.NewQuery(filter.Contains(highlightComponent, cellComponent)),
		markers:    donburi.NewQuery(filter.Contains(markerComponent, cellComponent)),
	}
	for _, sq := range squares {
		e := world.Create(cellComponent, squareComponent)
		entry := world.Entry(e)
		cellComponent.SetValue(entry, cellData{Pos: sq.Pos})
		squareComponent.SetValue(entry, squareData{Shade: sq.Shade})
	}
	return s
}

// Apply is the bus listener that keeps the scene in step with the grid.
func (s *Scene) Apply(m Mutation) {
	switch m.Kind {
	case PieceDrawn:
		s.spawnSprite(m.Piece, m.Cell)
	case PieceDeleted:
		if e, ok := s.sprites[m.Piece.ID]; ok {
			s.world.Remove(e)
			delete(s.sprites, m.Piece.ID)
		}
	case PieceDragStarted:
		if sp := s.sprite(m.Piece.ID); sp != nil {
			sp.Floating = true
			sp.Cell = board.Detached
		}
		s.spawnHighlight(DragHighlight, m.Cell)
	case PieceDropped:
		if sp := s.sprite(m.Piece.ID); sp != nil {
			sp.Floating = false
			sp.Cell = m.Cell
			sp.Offset = input.Point{}
		}
		s.removeHighlights(DragHighlight)
	case MarkerPlaced:
		s.markerSeq++
		e := s.world.Create(cellComponent, markerComponent)
		entry := s.world.Entry(e)
		cellComponent.SetValue(entry, cellData{Pos: m.Cell})
		markerComponent.SetValue(entry, markerData{Seq: s.markerSeq})
		s.spawnHighlight(MarkerHighlight, m.Cell)
	case MarkersCleared:
		s.removeMarkers()
		s.removeHighlights(MarkerHighlight)
	}
}

// Follow moves a floating sprite and the drag highlight with the pointer.
func (s *Scene) Follow(id board.PieceID, offset input.Point, cell board.Coord) {
	sp := s.sprite(id)
	if sp == nil || !sp.Floating {
		return
	}
	sp.Offset = offset
	if !cell.OnBoard() {
		return
	}
	s.highlights.Each(s.world, func(entry *donburi.Entry) {
		if highlightComponent.Get(entry).Kind == DragHighlight {
			cellComponent.Get(entry).Pos = cell
		}
	})
}

// Squares returns the static cells.
func (s *Scene) Squares() []board.Square {
	var out []board.Square
	s.squares.Each(s.world, func(entry *donburi.Entry) {
		out = append(out, board.Square{
			Pos:   cellComponent.Get(entry).Pos,
			Shade: squareComponent.Get(entry).Shade,
		})
	})
	return out
}

// Sprites returns every piece sprite, floating ones last so they draw on top.
func (s *Scene) Sprites() []Sprite {
	var out, floating []Sprite
	s.spriteQ.Each(s.world, func(entry *donburi.Entry) {
		sp := *spriteComponent.Get(entry)
		if sp.Floating {
			floating = append(floating, sp)
			return
		}
		out = append(out, sp)
	})
	return append(out, floating...)
}

// Highlights returns every highlighted cell.
func (s *Scene) Highlights() []Highlight {
	var out []Highlight
	s.highlights.Each(s.world, func(entry *donburi.Entry) {
		out = append(out, Highlight{
			Kind: highlightComponent.Get(entry).Kind,
			Cell: cellComponent.Get(entry).Pos,
		})
	})
	return out
}

// CountHighlights counts highlights of one kind.
func (s *Scene) CountHighlights(kind HighlightKind) int {
	n := 0
	for _, h := range s.Highlights() {
		if h.Kind == kind {
			n++
		}
	}
	return n
}

// Markers returns the marked cells.
func (s *Scene) Markers() []board.Coord {
	var out []board.Coord
	s.markers.Each(s.world, func(entry *donburi.Entry) {
		out = append(out, cellComponent.Get(entry).Pos)
	})
	return out
}

// Verify checks that the scene agrees with the grid: same pieces on the same
// cells, one drag highlight iff a drag is in flight, and one marker entity
// per grid marker.
func (s *Scene) Verify(grid *board.Grid, dragging bool) error {
	pieces := grid.Pieces()
	if len(pieces) != len(s.sprites) {
		return fmt.Errorf("%w: %d pieces but %d sprites", board.ErrInvariant, len(pieces), len(s.sprites))
	}
	for _, p := range pieces {
		sp := s.sprite(p.ID)
		if sp == nil {
			return fmt.Errorf("%w: piece %s has no sprite", board.ErrInvariant, p.ShortID())
		}
		if sp.Cell != p.Pos {
			return fmt.Errorf("%w: piece %s at %s but sprite at %s", board.ErrInvariant, p.ShortID(), p.Pos, sp.Cell)
		}
	}
	want := 0
	if dragging {
		want = 1
	}
	if got := s.CountHighlights(DragHighlight); got != want {
		return fmt.Errorf("%w: %d drag highlights, want %d", board.ErrInvariant, got, want)
	}
	if got, want := s.markers.Count(s.world), len(grid.Markers()); got != want {
		return fmt.Errorf("%w: %d marker entities, grid has %d", board.ErrInvariant, got, want)
	}
	if got, want := s.CountHighlights(MarkerHighlight), len(grid.Markers()); got != want {
		return fmt.Errorf("%w: %d marker highlights, grid has %d markers", board.ErrInvariant, got, want)
	}
	return nil
}

func (s *Scene) spawnSprite(p board.Piece, cell board.Coord) {
	e := s.world.Create(spriteComponent)
	spriteComponent.SetValue(s.world.Entry(e), Sprite{
		Piece:    p,
		AssetKey: AssetKey(p.Army, p.Type, p.Color),
		Cell:     cell,
	})
	s.sprites[p.ID] = e
}

func (s *Scene) spawnHighlight(kind HighlightKind, cell board.Coord) {
	e := s.world.Create(cellComponent, highlightComponent)
	entry := s.world.Entry(e)
	cellComponent.SetValue(entry, cellData{Pos: cell})
	highlightComponent.SetValue(entry, highlightData{Kind: kind})
}

func (s *Scene) sprite(id board.PieceID) *Sprite {
	e, ok := s.sprites[id]
	if !ok || !s.world.Valid(e) {
		return nil
	}
	return spriteComponent.Get(s.world.Entry(e))
}

// Entities are collected first; removing inside Each would disturb iteration.
func (s *Scene) removeHighlights(kind HighlightKind) {
	var doomed []donburi.Entity
	s.highlights.Each(s.world, func(entry *donburi.Entry) {
		if highlightComponent.Get(entry).Kind == kind {
			doomed = append(doomed, entry.Entity())
		}
	})
	for _, e := range doomed {
		s.world.Remove(e)
	}
}

func (s *Scene) removeMarkers() {
	var doomed []donburi.Entity
	s.markers.Each(s.world, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, e := range doomed {
		s.world.Remove(e)
	}
}
