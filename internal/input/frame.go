package input

// Frame is everything the editor reads from the devices in one tick.
type Frame struct {
	Tick    int
	WindowW float64
	WindowH float64
	// Moves are the pointer-moved events of this tick, oldest first.
	Moves []Point

	keysHeld        KeySet
	keysPressed     KeySet
	buttonsHeld     ButtonSet
	buttonsPressed  ButtonSet
	buttonsReleased ButtonSet
}

// JustPressed reports a press edge for k in this tick.
func (f Frame) JustPressed(k Key) bool {
	return f.keysPressed.Has(k)
}

// KeyHeld reports whether k is down.
func (f Frame) KeyHeld(k Key) bool {
	return f.keysHeld.Has(k)
}

// ButtonJustPressed reports a press edge for b in this tick.
func (f Frame) ButtonJustPressed(b Button) bool {
	return f.buttonsPressed.Has(b)
}

// ButtonJustReleased reports a release edge for b in this tick.
func (f Frame) ButtonJustReleased(b Button) bool {
	return f.buttonsReleased.Has(b)
}

// ButtonHeld reports whether b is down.
func (f Frame) ButtonHeld(b Button) bool {
	return f.buttonsHeld.Has(b)
}

// Tracker derives edges from raw down-state, one call per tick.
type Tracker struct {
	tick        int
	prevKeys    KeySet
	prevButtons ButtonSet
}

// Next builds the frame for the current tick from what is down now.
func (t *Tracker) Next(keys KeySet, buttons ButtonSet, moves []Point, windowW, windowH float64) Frame {
	t.tick++
	f := Frame{
		Tick:            t.tick,
		WindowW:         windowW,
		WindowH:         windowH,
		Moves:           moves,
		keysHeld:        keys,
		keysPressed:     keys &^ t.prevKeys,
		buttonsHeld:     buttons,
		buttonsPressed:  buttons &^ t.prevButtons,
		buttonsReleased: t.prevButtons &^ buttons,
	}
	t.prevKeys = keys
	t.prevButtons = buttons
	return f
}

// Tick returns the number of frames produced so far.
func (t *Tracker) Tick() int {
	return t.tick
}
