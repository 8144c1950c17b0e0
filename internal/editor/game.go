package editor

import (
	"github.com/Garsondee/board-editor/internal/input"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// GameOptions configures the windowed editor.
type GameOptions struct {
	Width   int
	Height  int
	ShowHUD bool
	Session SessionOptions
}

// Game adapts a Session to ebiten's Update/Draw/Layout loop.
type Game struct {
	session *Session
	source  input.EbitenSource
	render  *renderer
	width   int
	height  int
	showHUD bool
	status  string

	copyText func(string) error
	log      logrus.FieldLogger
}

// NewGame builds the editor and its starting board.
func NewGame(opts GameOptions, log logrus.FieldLogger) (*Game, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Game{
		session:  NewSession(opts.Session, log),
		render:   r,
		width:    opts.Width,
		height:   opts.Height,
		showHUD:  opts.ShowHUD,
		copyText: clipboard.WriteAll,
		log:      log,
	}, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Update() error {
	f := g.source.Poll(g.width, g.height)

	if f.JustPressed(input.KeyEscape) {
		return ebiten.Termination
	}
	if f.JustPressed(input.KeyH) {
		g.showHUD = !g.showHUD
	}
	if f.JustPressed(input.KeyF) {
		g.copyFEN()
	}

	if _, err := g.session.Step(f); err != nil && g.session.Debug() {
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.drawBoard(screen, g.session, float64(g.width), float64(g.height))
	if g.showHUD {
		g.render.drawHUD(screen, g.session, g.status, g.width)
	}
}

// Layout follows the window so a resize only changes the tile size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// copyFEN puts the piece-placement FEN of the board on the clipboard.
func (g *Game) copyFEN() {
	fen := g.session.Grid.FEN()
	if err := g.copyText(fen); err != nil {
		g.log.WithError(err).Warn("clipboard unavailable")
		g.status = "clipboard unavailable"
		return
	}
	g.log.WithField("fen", fen).Info("board copied to clipboard")
	g.status = "copied " + fen
}
