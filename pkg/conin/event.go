package conin

import "fmt"

// Event is the result of one Poll. It is one of NoEvent, KeyEvent,
// InterruptEvent, MouseEvent and OtherEvent.
type Event interface {
	isEvent()
}

// NoEvent means that the input queue was empty.
type NoEvent struct{}

// KeyEvent is a keyboard record. Only the character is decoded; virtual key
// codes, scan codes and modifier state are ignored.
type KeyEvent struct {
	// ASCII character code of the key, or 0 if the key does not produce one.
	Char byte
	// The UTF-16 unit delivered by the console, for callers that want more
	// than ASCII. Surrogate halves are not combined.
	Rune rune
	// Whether this is a key-down record. The console also delivers key-up
	// records and they are reported as well.
	Down bool
}

// InterruptEvent is an interrupt (Ctrl-C or break).
type InterruptEvent struct{}

// MouseEvent is a mouse record.
type MouseEvent struct {
	Kind MouseKind
	Col  int
	Row  int
	// Raw button state bitmask.
	Buttons uint32
	// Raw event flags bitmask.
	Flags uint32
}

// OtherEvent is a record of a kind that is not decoded, such as a window
// buffer size change or a focus change.
type OtherEvent struct {
	Type uint16
}

func (NoEvent) isEvent()        {}
func (KeyEvent) isEvent()       {}
func (InterruptEvent) isEvent() {}
func (MouseEvent) isEvent()     {}
func (OtherEvent) isEvent()     {}

// WheelDelta returns the signed wheel rotation of a Scroll event, carried in
// the high word of the button state. Positive values mean the wheel was
// rotated forward (away from the user) or to the right.
func (e MouseEvent) WheelDelta() int {
	return int(int16(e.Buttons >> 16))
}

// MouseKind classifies a mouse record.
type MouseKind int

// Possible values of MouseKind.
const (
	Unknown MouseKind = iota
	Move
	LeftDown
	LeftUp
	RightDown
	RightUp
	MiddleDown
	MiddleUp
	Scroll
)

var mouseKindNames = [...]string{
	Unknown:    "Unknown",
	Move:       "Move",
	LeftDown:   "LeftDown",
	LeftUp:     "LeftUp",
	RightDown:  "RightDown",
	RightUp:    "RightUp",
	MiddleDown: "MiddleDown",
	MiddleUp:   "MiddleUp",
	Scroll:     "Scroll",
}

func (k MouseKind) String() string {
	if 0 <= k && int(k) < len(mouseKindNames) {
		return mouseKindNames[k]
	}
	return fmt.Sprintf("MouseKind(%d)", int(k))
}

// InterruptValue is the value of an InterruptEvent in the host encoding.
const InterruptValue = "ctrl-c"

// Value encodes an Event the way the embedding host consumes it:
//
//   - NoEvent and OtherEvent become nil.
//   - KeyEvent becomes a one-byte string holding Char, or "" for keys
//     without an ASCII character, such as Shift or the arrow keys.
//   - InterruptEvent becomes InterruptValue.
//   - MouseEvent becomes [4]int{Flags, Col, Row, Buttons}.
func Value(e Event) any {
	switch e := e.(type) {
	case KeyEvent:
		if e.Char == 0 {
			return ""
		}
		return string([]byte{e.Char})
	case InterruptEvent:
		return InterruptValue
	case MouseEvent:
		return [4]int{int(e.Flags), e.Col, e.Row, int(e.Buttons)}
	default:
		return nil
	}
}
