package board

import "fmt"

// Size is the number of cells along each board edge.
const Size = 8

// Coord addresses one board cell. X is the file (0 = a), Y is the rank (0 = 1).
type Coord struct {
	X int
	Y int
}

// Detached is the position held by a piece that is being dragged.
var Detached = Coord{X: -1, Y: -1}

// OnBoard reports whether c names one of the 64 cells.
func (c Coord) OnBoard() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Name returns algebraic notation ("e4") for on-board cells and "(x,y)" otherwise.
func (c Coord) Name() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+c.X, c.Y+1)
}

func (c Coord) String() string {
	return c.Name()
}

// Shade is the colour class of a square.
type Shade uint8

const (
	Dark Shade = iota
	Light
)

func (s Shade) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// Square is a static cell descriptor, built once per grid.
type Square struct {
	Pos   Coord
	Shade Shade
}

// ShadeOf derives a cell colour: light when (x+y+1) is even.
func ShadeOf(c Coord) Shade {
	if (c.X+c.Y+1)%2 == 0 {
		return Light
	}
	return Dark
}

// TileSize returns the pixel width and height of one cell for a window.
func TileSize(windowW, windowH float64) (float64, float64) {
	return windowW / Size, windowH / Size
}

// CellCenter converts a cell to center-origin, y-up window coordinates:
//
//	screen = coord/8*dim - dim/2 + tile/2
//
// Each axis is independent so non-square windows stretch the board.
func CellCenter(c Coord, windowW, windowH float64) (float64, float64) {
	return axisCenter(float64(c.X), windowW), axisCenter(float64(c.Y), windowH)
}

func axisCenter(pos, dim float64) float64 {
	tile := dim / Size
	return pos/Size*dim - dim/2 + tile/2
}
