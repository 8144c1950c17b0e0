package editor

import (
	"strings"
	"testing"

	"github.com/Garsondee/board-editor/internal/board"
)

func TestJournal_RecordAndFilter(t *testing.T) {
	h := NewHeadless(WithPiece(board.Coord{X: 0, Y: 1}, board.Pawn, board.White))
	mustRun(t, h, "drag:0,1>0,3 rclick:2,2 click:7,7")

	if n := h.Journal.Count(Query{Category: "piece", Key: PieceDrawn.String()}); n != 1 {
		t.Fatalf("expected 1 drawn entry, got %d", n)
	}
	last, ok := h.Journal.Last(Query{Category: "piece", Key: PieceDropped.String()})
	if !ok || !strings.Contains(last.Value, "a4") {
		t.Fatalf("expected the last drop on a4, got %+v", last)
	}
	if !h.Journal.Has(Query{Category: "marker", Key: MarkersCleared.String(), Contains: "c3"}) {
		t.Fatalf("expected the clear to list c3")
	}
	if got, all := h.Journal.Select(Query{FromTick: 1}), h.Journal.Entries(); len(got) != len(all)-1 {
		t.Fatalf("expected everything but the tick 0 spawn, got %d of %d", len(got), len(all))
	}
	if got := h.Journal.Select(Query{FromTick: 1, ToTick: 2}); len(got) != 1 || got[0].Key != PieceDragStarted.String() {
		t.Fatalf("expected only the lift in ticks 1-2, got %+v", got)
	}
	out := h.Journal.Format(Query{})
	if lines := strings.Count(out, "\n"); lines != len(h.Journal.Entries()) {
		t.Fatalf("Format wrote %d lines for %d entries", lines, len(h.Journal.Entries()))
	}
}

func TestJournal_PieceHistory(t *testing.T) {
	h := NewHeadless(
		WithPiece(board.Coord{X: 0, Y: 0}, board.Rook, board.White),
		WithPiece(board.Coord{X: 7, Y: 7}, board.Rook, board.Black),
	)
	white, _ := h.PieceAt(board.Coord{X: 0, Y: 0})
	black, _ := h.PieceAt(board.Coord{X: 7, Y: 7})
	mustRun(t, h, "drag:0,0>0,4 drag:7,7>0,4")

	var keys []string
	for _, e := range h.Journal.Select(PieceQuery(white)) {
		keys = append(keys, e.Key)
	}
	if got := strings.Join(keys, " "); got != "drawn drag_started dropped deleted" {
		t.Fatalf("white rook history = %q", got)
	}
	last, ok := h.Journal.Last(PieceQuery(black))
	if !ok || last.Key != PieceDropped.String() || !strings.Contains(last.Value, "a5") {
		t.Fatalf("black rook should end dropped on a5, got %+v", last)
	}
	first, ok := h.Journal.First(Query{Key: PieceDeleted.String()})
	if !ok || first.Piece != white.ShortID() {
		t.Fatalf("first deletion should be the white rook, got %+v", first)
	}
	if out := h.Journal.Format(PieceQuery(black)); strings.Count(out, "\n") != 3 {
		t.Fatalf("expected 3 lines for the black rook:\n%s", out)
	}
}

func TestJournal_SelectionChanges(t *testing.T) {
	h := NewHeadless()
	mustRun(t, h, "key:4 key:right key:c")

	if !h.Journal.Has(Query{Category: "cursor", Key: "mode", Contains: "place-rook"}) {
		t.Fatalf("missing mode entry:\n%s", h.Journal.Format(Query{}))
	}
	if !h.Journal.Has(Query{Category: "cursor", Key: "army", Contains: "nemesis"}) {
		t.Fatalf("missing army entry:\n%s", h.Journal.Format(Query{}))
	}
	if !h.Journal.Has(Query{Category: "cursor", Key: "color", Contains: "black"}) {
		t.Fatalf("missing color entry:\n%s", h.Journal.Format(Query{}))
	}
}

func TestEditLog_RingBuffer(t *testing.T) {
	el := NewEditLog()
	for i := 1; i <= editLogMaxEntries+3; i++ {
		el.Add(i, "edit")
	}
	recent := el.Recent()
	if len(recent) != editLogMaxEntries {
		t.Fatalf("expected %d entries, got %d", editLogMaxEntries, len(recent))
	}
	if recent[0].Tick != 4 || recent[len(recent)-1].Tick != editLogMaxEntries+3 {
		t.Fatalf("unexpected window %d..%d", recent[0].Tick, recent[len(recent)-1].Tick)
	}
}

func TestEditLog_SkipsStartingLayout(t *testing.T) {
	h := NewHeadless(WithSetup(board.SetupPawns))
	if n := len(h.EditLog.Recent()); n != 0 {
		t.Fatalf("starting layout should not fill the edit log, got %d", n)
	}
	mustRun(t, h, "drag:0,1>0,2")
	recent := h.EditLog.Recent()
	if len(recent) != 2 || !strings.HasPrefix(recent[1].Message, "drop wP a3") {
		t.Fatalf("unexpected edit log %+v", recent)
	}
}

func TestAssetKey(t *testing.T) {
	cases := []struct {
		army  board.Army
		typ   board.PieceType
		color board.Color
		want  string
	}{
		{board.Classic, board.Pawn, board.Black, "pieces/c_p.png"},
		{board.Classic, board.Pawn, board.White, "pieces/C_Pw.png"},
		{board.Reaper, board.Queen, board.White, "pieces/R_Qw.png"},
		{board.Animals, board.Knight, board.Black, "pieces/a_n.png"},
		{board.Nemesis, board.PieceType(42), board.Black, "pieces/n_p.png"},
	}
	for _, c := range cases {
		if got := AssetKey(c.army, c.typ, c.color); got != c.want {
			t.Errorf("AssetKey(%s, %s, %s) = %q, want %q", c.army, c.typ, c.color, got, c.want)
		}
	}
}
