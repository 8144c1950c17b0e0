// Package input turns raw device state into per-tick frames of press and
// release edges, and converts pointer pixels into board cells.
package input

// Key is an editor key, independent of the windowing backend.
type Key uint8

const (
	KeyDigit0 Key = iota
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyC
	KeyH
	KeyEscape
	KeyF
	keyCount
)

var keyNames = [keyCount]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"kp0", "kp1", "kp2", "kp3", "kp4", "kp5", "kp6", "kp7",
	"left", "right", "a", "d", "c", "h", "escape", "f",
}

func (k Key) String() string {
	if k >= keyCount {
		return "?"
	}
	return keyNames[k]
}

// ParseKey resolves a key name as printed by Key.String.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return 0, false
}

// Digit returns the digit-row key for n in [0,7].
func Digit(n int) Key {
	return KeyDigit0 + Key(n)
}

// Numpad returns the numpad key for n in [0,7].
func Numpad(n int) Key {
	return KeyNumpad0 + Key(n)
}

// KeySet is a bit set of keys.
type KeySet uint32

// Has reports membership.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns s plus k.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Button is a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonAuxiliary
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonAuxiliary:
		return "auxiliary"
	}
	return "?"
}

// ButtonSet is a bit set of buttons.
type ButtonSet uint8

// Has reports membership.
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}

// With returns s plus b.
func (s ButtonSet) With(b Button) ButtonSet {
	return s | 1<<b
}

// Point is a pointer position in window pixels, origin bottom-left, y up.
type Point struct {
	X float64
	Y float64
}
