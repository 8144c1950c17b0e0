package editor

import (
	"fmt"
	"strings"

	"github.com/Garsondee/board-editor/internal/board"
)

// AssetKey names the image for a piece: "pieces/c_p.png" for a black classic
// pawn, "pieces/C_Pw.png" for a white one. Unknown piece types resolve to
// the pawn image.
func AssetKey(a board.Army, t board.PieceType, c board.Color) string {
	army := string(a.Letter())
	piece := string(t.Letter())
	suffix := ""
	if c == board.White {
		army = strings.ToUpper(army)
		piece = strings.ToUpper(piece)
		suffix = "w"
	}
	return fmt.Sprintf("pieces/%s_%s%s.png", army, piece, suffix)
}
