package board

import (
	"github.com/notnil/chess"
)

var chessPieces = [2][pieceTypeCount]chess.Piece{
	White: {chess.WhiteKing, chess.WhiteQueen, chess.WhiteRook, chess.WhiteBishop, chess.WhiteKnight, chess.WhitePawn},
	Black: {chess.BlackKing, chess.BlackQueen, chess.BlackRook, chess.BlackBishop, chess.BlackKnight, chess.BlackPawn},
}

// FEN returns the piece-placement field of the current layout. Detached
// pieces are left out and armies have no FEN representation.
func (g *Grid) FEN() string {
	m := make(map[chess.Square]chess.Piece, len(g.pieces))
	for _, p := range g.pieces {
		if !p.Pos.OnBoard() {
			continue
		}
		col := p.Color
		if col != Black {
			col = White
		}
		t := p.Type
		if !t.Valid() {
			t = Pawn
		}
		m[chess.Square(p.Pos.Y*Size+p.Pos.X)] = chessPieces[col][t]
	}
	return chess.NewBoard(m).String()
}

// Setup names an initial layout.
type Setup string

const (
	SetupEmpty    Setup = "empty"
	SetupPawns    Setup = "pawns"
	SetupStandard Setup = "standard"
)

var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Populate fills the grid with a starting layout for the given army and
// returns the created pieces in placement order.
func (g *Grid) Populate(s Setup, a Army) []Piece {
	var out []Piece
	add := func(c Coord, t PieceType, col Color) {
		p, _ := g.Place(c, t, a, col)
		out = append(out, p)
	}
	switch s {
	case SetupPawns:
		for x := 0; x < Size; x++ {
			add(Coord{X: x, Y: 6}, Pawn, Black)
			add(Coord{X: x, Y: 1}, Pawn, White)
		}
	case SetupStandard:
		for x := 0; x < Size; x++ {
			add(Coord{X: x, Y: 0}, backRank[x], White)
			add(Coord{X: x, Y: 1}, Pawn, White)
			add(Coord{X: x, Y: 6}, Pawn, Black)
			add(Coord{X: x, Y: 7}, backRank[x], Black)
		}
	}
	return out
}

// ParseSetup validates a setup name.
func ParseSetup(name string) (Setup, bool) {
	switch s := Setup(name); s {
	case SetupEmpty, SetupPawns, SetupStandard:
		return s, true
	}
	return "", false
}
