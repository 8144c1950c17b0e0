package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.Key0:          KeyDigit0,
	ebiten.Key1:          KeyDigit1,
	ebiten.Key2:          KeyDigit2,
	ebiten.Key3:          KeyDigit3,
	ebiten.Key4:          KeyDigit4,
	ebiten.Key5:          KeyDigit5,
	ebiten.Key6:          KeyDigit6,
	ebiten.Key7:          KeyDigit7,
	ebiten.KeyNumpad0:    KeyNumpad0,
	ebiten.KeyNumpad1:    KeyNumpad1,
	ebiten.KeyNumpad2:    KeyNumpad2,
	ebiten.KeyNumpad3:    KeyNumpad3,
	ebiten.KeyNumpad4:    KeyNumpad4,
	ebiten.KeyNumpad5:    KeyNumpad5,
	ebiten.KeyNumpad6:    KeyNumpad6,
	ebiten.KeyNumpad7:    KeyNumpad7,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyA:          KeyA,
	ebiten.KeyD:          KeyD,
	ebiten.KeyC:          KeyC,
	ebiten.KeyH:          KeyH,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeyF:          KeyF,
}

var ebitenButtons = [buttonCount]ebiten.MouseButton{
	ButtonPrimary:   ebiten.MouseButtonLeft,
	ButtonSecondary: ebiten.MouseButtonRight,
	ButtonAuxiliary: ebiten.MouseButtonMiddle,
}

// EbitenSource polls ebiten once per Update and produces frames.
type EbitenSource struct {
	tracker Tracker
	pressed []ebiten.Key
	lastX   int
	lastY   int
	primed  bool
}

// Poll reads the devices. The cursor is reported as a move event only when
// it changed since the previous tick, with y flipped to point up.
func (s *EbitenSource) Poll(windowW, windowH int) Frame {
	s.pressed = inpututil.AppendPressedKeys(s.pressed[:0])
	var keys KeySet
	for _, k := range s.pressed {
		if ek, ok := ebitenKeys[k]; ok {
			keys = keys.With(ek)
		}
	}

	var buttons ButtonSet
	for b, mb := range ebitenButtons {
		if ebiten.IsMouseButtonPressed(mb) {
			buttons = buttons.With(Button(b))
		}
	}

	var moves []Point
	x, y := ebiten.CursorPosition()
	if !s.primed || x != s.lastX || y != s.lastY {
		moves = append(moves, Point{X: float64(x), Y: float64(windowH - 1 - y)})
		s.lastX, s.lastY, s.primed = x, y, true
	}
	return s.tracker.Next(keys, buttons, moves, float64(windowW), float64(windowH))
}
