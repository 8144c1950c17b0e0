package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/Garsondee/board-editor/internal/editor"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type replayStats struct {
	ticks        int
	pieces       int
	drawn        int
	deleted      int
	dragStarted  int
	dropped      int
	markerPlaced int
	markerClears int
	modeChanges  int
	firstDrop    int
	firstDelete  int
	violation    error
}

func main() {
	var script string
	var width, height float64
	var setup string
	var army string
	var debug bool
	var showJournal bool
	var category string

	flag.StringVar(&script, "script", "key:7 click:4,1 key:1 drag:4,1>4,3", "input commands, see input.Script.Parse")
	flag.Float64Var(&width, "width", 768, "window width in pixels")
	flag.Float64Var(&height, "height", 768, "window height in pixels")
	flag.StringVar(&setup, "setup", "empty", "starting layout: empty, pawns or standard")
	flag.StringVar(&army, "army", "classic", "starting army")
	flag.BoolVar(&debug, "debug", false, "stop at the first invariant violation")
	flag.BoolVar(&showJournal, "journal", true, "print the journal")
	flag.StringVar(&category, "category", "", "only print journal entries of this category (piece, marker, cursor)")
	flag.Parse()

	if width <= 0 || height <= 0 {
		fmt.Println("error: -width and -height must be > 0")
		os.Exit(2)
	}
	s, ok := board.ParseSetup(setup)
	if !ok {
		fmt.Printf("error: unsupported setup %q (supported: empty, pawns, standard)\n", setup)
		os.Exit(2)
	}
	a, ok := board.ParseArmy(army)
	if !ok {
		fmt.Printf("error: unknown army %q\n", army)
		os.Exit(2)
	}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	h := editor.NewHeadless(
		editor.WithWindow(width, height),
		editor.WithSetup(s),
		editor.WithArmy(a),
		editor.WithDebug(debug),
		editor.WithLogger(log),
	)
	if err := h.Script().Parse(script); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}
	runErr := h.Run()

	fmt.Printf("=== Headless Replay ===\n")
	fmt.Printf("setup=%s army=%s window=%.0fx%.0f\n\n", s, a, width, height)
	if showJournal {
		fmt.Print(h.Journal.Format(editor.Query{Category: category}))
		fmt.Println()
	}
	stats := summarize(h, runErr)
	printStats(stats)
	fmt.Println()
	fmt.Println(renderBoard(h.Grid))
	fmt.Printf("fen: %s\n", h.Grid.FEN())
	if runErr != nil {
		os.Exit(1)
	}
}

func summarize(h *editor.Headless, runErr error) replayStats {
	j := h.Journal
	piece := func(k editor.MutationKind) editor.Query {
		return editor.Query{Category: "piece", Key: k.String()}
	}
	marker := func(k editor.MutationKind) editor.Query {
		return editor.Query{Category: "marker", Key: k.String()}
	}
	return replayStats{
		ticks:        h.Tick(),
		pieces:       h.Grid.Len(),
		drawn:        j.Count(piece(editor.PieceDrawn)),
		deleted:      j.Count(piece(editor.PieceDeleted)),
		dragStarted:  j.Count(piece(editor.PieceDragStarted)),
		dropped:      j.Count(piece(editor.PieceDropped)),
		markerPlaced: j.Count(marker(editor.MarkerPlaced)),
		markerClears: j.Count(marker(editor.MarkersCleared)),
		modeChanges:  j.Count(editor.Query{Category: "cursor", Key: "mode"}),
		firstDrop:    firstTick(j, piece(editor.PieceDropped)),
		firstDelete:  firstTick(j, piece(editor.PieceDeleted)),
		violation:    runErr,
	}
}

// firstTick returns the tick of the earliest matching entry, or -1.
func firstTick(j *editor.Journal, q editor.Query) int {
	if e, ok := j.First(q); ok {
		return e.Tick
	}
	return -1
}

func printStats(rs replayStats) {
	fmt.Printf("ticks=%d pieces=%d\n", rs.ticks, rs.pieces)
	fmt.Printf("piece_events: drawn=%d deleted=%d drag_started=%d dropped=%d\n",
		rs.drawn, rs.deleted, rs.dragStarted, rs.dropped)
	fmt.Printf("marker_events: placed=%d cleared=%d  mode_changes=%d\n",
		rs.markerPlaced, rs.markerClears, rs.modeChanges)
	fmt.Printf("phase_markers: first_drop=%d first_delete=%d\n", rs.firstDrop, rs.firstDelete)
	if rs.violation != nil {
		fmt.Printf("VIOLATION: %v\n", rs.violation)
	} else {
		fmt.Printf("invariants: ok\n")
	}
}

var (
	lightCell  = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Background(lipgloss.Color("#F0D9B5")).Foreground(lipgloss.Color("#000000"))
	darkCell   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Background(lipgloss.Color("#B58863")).Foreground(lipgloss.Color("#000000"))
	markedCell = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Background(lipgloss.Color("#EB6150")).Foreground(lipgloss.Color("#000000"))
	axisLabel  = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Faint(true)
)

// renderBoard draws rank 8 at the top. White pieces are upper case.
func renderBoard(g *board.Grid) string {
	marked := map[board.Coord]bool{}
	for _, m := range g.Markers() {
		marked[m] = true
	}
	rows := make([]string, 0, board.Size+1)
	for y := board.Size - 1; y >= 0; y-- {
		cells := []string{axisLabel.Render(fmt.Sprintf("%d", y+1))}
		for x := 0; x < board.Size; x++ {
			c := board.Coord{X: x, Y: y}
			style := darkCell
			if board.ShadeOf(c) == board.Light {
				style = lightCell
			}
			if marked[c] {
				style = markedCell
			}
			cells = append(cells, style.Render(pieceGlyph(g, c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	files := []string{axisLabel.Render(" ")}
	for x := 0; x < board.Size; x++ {
		files = append(files, axisLabel.Render(string(rune('a'+x))))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, files...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func pieceGlyph(g *board.Grid, c board.Coord) string {
	p, ok := g.OccupantAt(c)
	if !ok {
		return " "
	}
	letter := string(rune(p.Type.Letter()))
	if p.Color == board.White {
		return strings.ToUpper(letter)
	}
	return letter
}
