package board

import (
	"fmt"

	"github.com/google/uuid"
)

// PieceType is the kind of token placed on the board.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	pieceTypeCount
)

// PieceTypes lists every placeable type in key order ("2".."7").
var PieceTypes = [pieceTypeCount]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

var pieceTypeNames = [pieceTypeCount]string{"king", "queen", "rook", "bishop", "knight", "pawn"}

// pieceLetters are the lower-case letters used by asset keys and FEN.
var pieceLetters = [pieceTypeCount]byte{'k', 'q', 'r', 'b', 'n', 'p'}

// Valid reports whether t is one of the six known types.
func (t PieceType) Valid() bool {
	return t < pieceTypeCount
}

func (t PieceType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("piece(%d)", uint8(t))
	}
	return pieceTypeNames[t]
}

// Letter returns the lower-case piece letter. Unknown types map to the pawn
// letter; placement has always fallen back to pawns.
func (t PieceType) Letter() byte {
	if !t.Valid() {
		return pieceLetters[Pawn]
	}
	return pieceLetters[t]
}

// Army is a themed piece set.
type Army uint8

const (
	Classic Army = iota
	Nemesis
	Empowered
	Reaper
	TwoKings
	Animals
	armyCount
)

// Armies is the fixed cycling order of army selection.
var Armies = [armyCount]Army{Classic, Nemesis, Empowered, Reaper, TwoKings, Animals}

var armyNames = [armyCount]string{"classic", "nemesis", "empowered", "reaper", "two-kings", "animals"}

var armyLetters = [armyCount]byte{'c', 'n', 'e', 'r', 't', 'a'}

func (a Army) String() string {
	if a >= armyCount {
		return fmt.Sprintf("army(%d)", uint8(a))
	}
	return armyNames[a]
}

// Letter returns the lower-case army prefix used in asset keys.
func (a Army) Letter() byte {
	if a >= armyCount {
		return armyLetters[Classic]
	}
	return armyLetters[a]
}

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Colors is the toggle order of color selection.
var Colors = [2]Color{White, Black}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// PieceID is the opaque handle of a piece. Handles are never reused.
type PieceID = uuid.UUID

// Piece is one token on (or dragged above) the board.
type Piece struct {
	ID    PieceID
	Type  PieceType
	Army  Army
	Color Color
	Pos   Coord
}

// Detached reports whether the piece is mid-drag.
func (p Piece) Detached() bool {
	return p.Pos == Detached
}

// Label is a short human-readable tag such as "wP" or "bK".
func (p Piece) Label() string {
	side := byte('w')
	if p.Color == Black {
		side = 'b'
	}
	return fmt.Sprintf("%c%c", side, p.Type.Letter()-'a'+'A')
}

// ShortID is the first block of the handle, for logs.
func (p Piece) ShortID() string {
	return p.ID.String()[:8]
}

// ParseArmy resolves an army by name as printed by Army.String.
func ParseArmy(name string) (Army, bool) {
	for i, n := range armyNames {
		if n == name {
			return Army(i), true
		}
	}
	return 0, false
}

// ParseColor resolves "white" or "black".
func ParseColor(name string) (Color, bool) {
	switch name {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return 0, false
}
