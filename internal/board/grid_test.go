package board

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestSquaresShading(t *testing.T) {
	g := NewGrid(quietLogger())
	sq := g.Squares()
	require.Len(t, sq, 64)
	for _, s := range sq {
		want := Dark
		if (s.Pos.X+s.Pos.Y+1)%2 == 0 {
			want = Light
		}
		assert.Equal(t, want, s.Shade, "square %s", s.Pos)
	}
	// a1 is dark, h1 is light.
	assert.Equal(t, Dark, ShadeOf(Coord{0, 0}))
	assert.Equal(t, Light, ShadeOf(Coord{7, 0}))
}

func TestPlaceAndOccupantAt(t *testing.T) {
	g := NewGrid(quietLogger())
	p, err := g.Place(Coord{4, 1}, Pawn, Classic, White)
	require.NoError(t, err)
	got, ok := g.OccupantAt(Coord{4, 1})
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)
	_, ok = g.OccupantAt(Coord{4, 2})
	assert.False(t, ok)
}

func TestPlaceOverwritesOccupant(t *testing.T) {
	g := NewGrid(quietLogger())
	old, err := g.Place(Coord{2, 2}, Rook, Classic, Black)
	require.NoError(t, err)

	p, err := g.Place(Coord{2, 2}, Queen, Nemesis, White)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOccupiedCellOverwritten))
	assert.Equal(t, 1, g.Len())

	_, ok := g.Get(old.ID)
	assert.False(t, ok, "old piece should be gone")
	got, _ := g.OccupantAt(Coord{2, 2})
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, Queen, got.Type)
	assert.Equal(t, Nemesis, got.Army)
}

func TestPlaceOffBoard(t *testing.T) {
	g := NewGrid(quietLogger())
	_, err := g.Place(Coord{8, 0}, Pawn, Classic, White)
	assert.ErrorIs(t, err, ErrOffBoard)
	assert.Equal(t, 0, g.Len())
}

func TestDetachExcludesFromOccupancy(t *testing.T) {
	g := NewGrid(quietLogger())
	p, _ := g.Place(Coord{3, 3}, Knight, Classic, White)
	d, err := g.Detach(p.ID)
	require.NoError(t, err)
	assert.True(t, d.Detached())

	_, ok := g.OccupantAt(Coord{3, 3})
	assert.False(t, ok)
	_, ok = g.OccupantAt(Detached)
	assert.False(t, ok, "sentinel must never match")
	assert.Len(t, g.Detached(), 1)
}

func TestDeleteIsIdempotent(t *testing.T) {
	g := NewGrid(quietLogger())
	p, _ := g.Place(Coord{0, 0}, King, Classic, White)
	_, ok := g.Delete(p.ID)
	assert.True(t, ok)
	_, ok = g.Delete(p.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, g.Len())
}

func TestMoveUnknown(t *testing.T) {
	g := NewGrid(quietLogger())
	p, _ := g.Place(Coord{0, 0}, King, Classic, White)
	g.Delete(p.ID)
	assert.ErrorIs(t, g.Move(p.ID, Coord{1, 1}), ErrUnknownPiece)
}

func TestMarkers(t *testing.T) {
	g := NewGrid(quietLogger())
	g.Place(Coord{3, 3}, Pawn, Classic, White)
	g.AddMarker(Coord{3, 3})
	g.AddMarker(Coord{5, 5})
	assert.Equal(t, []Coord{{3, 3}, {5, 5}}, g.Markers())
	cleared := g.ClearMarkers()
	assert.Len(t, cleared, 2)
	assert.Empty(t, g.Markers())
	assert.Equal(t, 1, g.Len(), "markers never touch pieces")
}

func TestCheckInvariants(t *testing.T) {
	g := NewGrid(quietLogger())
	a, _ := g.Place(Coord{0, 0}, King, Classic, White)
	b, _ := g.Place(Coord{1, 0}, Queen, Classic, White)
	require.NoError(t, g.CheckInvariants())

	// Move skips occupancy checks, so a careless caller can break one-piece-per-cell.
	require.NoError(t, g.Move(b.ID, Coord{0, 0}))
	assert.ErrorIs(t, g.CheckInvariants(), ErrInvariant)

	require.NoError(t, g.Move(b.ID, Coord{1, 0}))
	g.Detach(a.ID)
	g.Detach(b.ID)
	assert.ErrorIs(t, g.CheckInvariants(), ErrInvariant)
}

func TestRandomPlaceDeleteKeepsOccupancy(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test only
	g := NewGrid(quietLogger())
	for i := 0; i < 2000; i++ {
		c := Coord{rng.Intn(Size), rng.Intn(Size)}
		switch rng.Intn(3) {
		case 0, 1:
			g.Place(c, PieceTypes[rng.Intn(len(PieceTypes))], Armies[rng.Intn(len(Armies))], Colors[rng.Intn(2)])
		case 2:
			if p, ok := g.OccupantAt(c); ok {
				g.Delete(p.ID)
			}
		}
		require.NoError(t, g.CheckInvariants(), "step %d", i)
	}
	assert.LessOrEqual(t, g.Len(), Size*Size)
}

func TestCellCenter(t *testing.T) {
	x, y := CellCenter(Coord{0, 0}, 768, 768)
	assert.InDelta(t, -336.0, x, 1e-9)
	assert.InDelta(t, -336.0, y, 1e-9)
	x, y = CellCenter(Coord{7, 7}, 768, 768)
	assert.InDelta(t, 336.0, x, 1e-9)
	assert.InDelta(t, 336.0, y, 1e-9)
	// Axes are independent.
	x, y = CellCenter(Coord{4, 4}, 800, 400)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 25.0, y, 1e-9)
}

func TestCoordName(t *testing.T) {
	assert.Equal(t, "a1", Coord{0, 0}.Name())
	assert.Equal(t, "h8", Coord{7, 7}.Name())
	assert.Equal(t, "(-1,-1)", Detached.Name())
}

func TestPieceTypeLetterDefaultsToPawn(t *testing.T) {
	assert.Equal(t, byte('k'), King.Letter())
	assert.Equal(t, byte('p'), PieceType(42).Letter())
	p := Piece{Type: Knight, Color: Black}
	assert.Equal(t, "bN", p.Label())
}
