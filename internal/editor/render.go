package editor

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	darkSquare      = color.RGBA{R: 181, G: 136, B: 99, A: 255}
	lightSquare     = color.RGBA{R: 240, G: 217, B: 181, A: 255}
	midlineColor    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	dragHighlight   = color.RGBA{R: 246, G: 246, B: 105, A: 150}
	markerHighlight = color.RGBA{R: 235, G: 97, B: 80, A: 150}
	markerDot       = color.RGBA{R: 170, G: 40, B: 30, A: 230}
	whitePiece      = color.RGBA{R: 250, G: 248, B: 240, A: 255}
	blackPiece      = color.RGBA{R: 40, G: 36, B: 34, A: 255}
	hudBackground   = color.RGBA{R: 10, G: 12, B: 10, A: 200}
)

const (
	notationSize = 18
	hudLineH     = 14
)

type renderer struct {
	source *text.GoTextFaceSource
	// glyphs caches one image per asset key at the current piece size.
	glyphs    map[string]*ebiten.Image
	glyphSize int
}

func newRenderer() (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load notation font: %w", err)
	}
	return &renderer{source: src, glyphs: make(map[string]*ebiten.Image)}, nil
}

// toScreen converts center-origin, y-up coordinates to ebiten's top-left,
// y-down screen space.
func toScreen(x, y, w, h float64) (float64, float64) {
	return x + w/2, h/2 - y
}

func cellRect(c board.Coord, w, h float64) (float32, float32, float32, float32) {
	cx, cy := board.CellCenter(c, w, h)
	sx, sy := toScreen(cx, cy, w, h)
	tw, th := board.TileSize(w, h)
	return float32(sx - tw/2), float32(sy - th/2), float32(tw), float32(th)
}

func (r *renderer) drawBoard(screen *ebiten.Image, s *Session, w, h float64) {
	for _, sq := range s.Scene.Squares() {
		col := darkSquare
		if sq.Shade == board.Light {
			col = lightSquare
		}
		x, y, cw, ch := cellRect(sq.Pos, w, h)
		vector.FillRect(screen, x, y, cw, ch, col, false)
	}
	r.drawMidline(screen, w, h)
	r.drawNotation(screen, w, h)

	for _, hl := range s.Scene.Highlights() {
		col := dragHighlight
		if hl.Kind == MarkerHighlight {
			col = markerHighlight
		}
		x, y, cw, ch := cellRect(hl.Cell, w, h)
		vector.FillRect(screen, x, y, cw, ch, col, false)
	}
	tw, th := board.TileSize(w, h)
	for _, m := range s.Scene.Markers() {
		cx, cy := board.CellCenter(m, w, h)
		sx, sy := toScreen(cx, cy, w, h)
		vector.FillCircle(screen, float32(sx), float32(sy), float32(math.Min(tw, th)*0.12), markerDot, true)
	}

	size := int(PieceScale * math.Min(tw, th))
	if size != r.glyphSize {
		r.resetGlyphs(size)
	}
	for _, sp := range s.Scene.Sprites() {
		var cx, cy float64
		if sp.Floating {
			cx, cy = sp.Offset.X, sp.Offset.Y
		} else {
			cx, cy = board.CellCenter(sp.Cell, w, h)
		}
		sx, sy := toScreen(cx, cy, w, h)
		img := r.glyph(sp)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sx-float64(size)/2, sy-float64(size)/2)
		screen.DrawImage(img, op)
	}
}

// drawMidline draws the thin cyan bar across the middle of the board.
func (r *renderer) drawMidline(screen *ebiten.Image, w, h float64) {
	lw := 9.5 / board.Size * w
	lh := 9.5 / 128 / board.Size * h
	vector.FillRect(screen, float32(w/2-lw/2), float32(h/2-lh/2), float32(lw), float32(lh), midlineColor, false)
}

// drawNotation labels files along the first rank and ranks along the h-file,
// in the colour of the opposite square shade.
func (r *renderer) drawNotation(screen *ebiten.Image, w, h float64) {
	face := &text.GoTextFace{Source: r.source, Size: notationSize}
	tw, th := board.TileSize(w, h)
	for i := 0; i < board.Size; i++ {
		fileCol, rankCol := lightSquare, darkSquare
		if i%2 != 0 {
			fileCol, rankCol = darkSquare, lightSquare
		}

		cx, cy := board.CellCenter(board.Coord{X: i, Y: 0}, w, h)
		sx, sy := toScreen(cx-tw/2.3, cy-th/2.3, w, h)
		op := &text.DrawOptions{}
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(fileCol)
		op.PrimaryAlign = text.AlignStart
		op.SecondaryAlign = text.AlignEnd
		text.Draw(screen, string(rune('a'+i)), face, op)

		cx, cy = board.CellCenter(board.Coord{X: board.Size - 1, Y: i}, w, h)
		sx, sy = toScreen(cx+tw/3.3, cy+th/3.3, w, h)
		op = &text.DrawOptions{}
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(rankCol)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, string(rune('1'+i)), face, op)
	}
}

func (r *renderer) resetGlyphs(size int) {
	for k, img := range r.glyphs {
		img.Deallocate()
		delete(r.glyphs, k)
	}
	r.glyphSize = size
}

// glyph draws a piece token once per asset key: a disc in the piece colour
// with the piece letter and a small army letter.
func (r *renderer) glyph(sp Sprite) *ebiten.Image {
	if img, ok := r.glyphs[sp.AssetKey]; ok {
		return img
	}
	size := r.glyphSize
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	fill, ink := whitePiece, blackPiece
	if sp.Piece.Color == board.Black {
		fill, ink = blackPiece, whitePiece
	}
	half := float32(size) / 2
	vector.FillCircle(img, half, half, half-1, fill, true)
	vector.StrokeCircle(img, half, half, half-1, 2, ink, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(half), float64(half))
	op.ColorScale.ScaleWithColor(ink)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	letter := string(rune(sp.Piece.Type.Letter() - 'a' + 'A'))
	text.Draw(img, letter, &text.GoTextFace{Source: r.source, Size: float64(size) * 0.55}, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(half), float64(size)*0.82)
	op.ColorScale.ScaleWithColor(ink)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(img, string(rune(sp.Piece.Army.Letter())), &text.GoTextFace{Source: r.source, Size: float64(size) * 0.18}, op)

	r.glyphs[sp.AssetKey] = img
	return img
}

// drawHUD renders the selection state, key legend and recent edits.
func (r *renderer) drawHUD(screen *ebiten.Image, s *Session, status string, width int) {
	lines := []string{
		fmt.Sprintf("mode: %s  army: %s  color: %s", s.Cursor.Mode(), s.Cursor.Army(), s.Cursor.Color()),
		"[1] drag  [0] trash  [2-7] K Q R B N P",
		"A/D army  C color  F copy FEN  H hud  Esc quit",
	}
	if status != "" {
		lines = append(lines, status)
	}
	vector.FillRect(screen, 0, 0, 330, float32(hudLineH*len(lines)+6), hudBackground, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, 2+i*hudLineH)
	}
	s.EditLog.Draw(screen, width-editLogWidth, 0)
}
