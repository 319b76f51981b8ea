package ewindows

import "unsafe"

// Values of InputRecord.EventType, from
// https://docs.microsoft.com/en-us/windows/console/input-record-str
const (
	KEY_EVENT                = 0x0001
	MOUSE_EVENT              = 0x0002
	WINDOW_BUFFER_SIZE_EVENT = 0x0004
	MENU_EVENT               = 0x0008
	FOCUS_EVENT              = 0x0010
)

// CTRL_C_EVENT is the control signal number for Ctrl-C. It is not a record
// type, but a zero EventType is treated as a break record by this package's
// users.
const CTRL_C_EVENT = 0

// Bits of MouseEvent.DwButtonState, from
// https://docs.microsoft.com/en-us/windows/console/mouse-event-record-str
const (
	FROM_LEFT_1ST_BUTTON_PRESSED = 0x0001
	RIGHTMOST_BUTTON_PRESSED     = 0x0002
	FROM_LEFT_2ND_BUTTON_PRESSED = 0x0004
	FROM_LEFT_3RD_BUTTON_PRESSED = 0x0008
	FROM_LEFT_4TH_BUTTON_PRESSED = 0x0010
)

// Bits of MouseEvent.DwEventFlags. A zero value means a button was pressed
// or released.
const (
	MOUSE_MOVED    = 0x0001
	DOUBLE_CLICK   = 0x0002
	MOUSE_WHEELED  = 0x0004
	MOUSE_HWHEELED = 0x0008
)

// Console input mode flags, the subset used with SetConsoleMode on an input
// handle.
const (
	ENABLE_PROCESSED_INPUT = 0x0001
	ENABLE_LINE_INPUT      = 0x0002
	ENABLE_ECHO_INPUT      = 0x0004
	ENABLE_WINDOW_INPUT    = 0x0008
	ENABLE_MOUSE_INPUT     = 0x0010
	ENABLE_INSERT_MODE     = 0x0020
	ENABLE_QUICK_EDIT_MODE = 0x0040
	ENABLE_EXTENDED_FLAGS  = 0x0080
)

// InputRecord is INPUT_RECORD. Event is a union whose interpretation depends
// on EventType; use GetEvent to access it.
type InputRecord struct {
	EventType uint16
	_         [2]byte
	Event     [16]byte
}

// Coord is COORD.
type Coord struct {
	X, Y int16
}

// KeyEvent is KEY_EVENT_RECORD. UChar holds the UnicodeChar/AsciiChar union.
type KeyEvent struct {
	BKeyDown          int32
	WRepeatCount      uint16
	WVirtualKeyCode   uint16
	WVirtualScanCode  uint16
	UChar             [2]byte
	DwControlKeyState uint32
}

// MouseEvent is MOUSE_EVENT_RECORD.
type MouseEvent struct {
	DwMousePosition   Coord
	DwButtonState     uint32
	DwControlKeyState uint32
	DwEventFlags      uint32
}

// WindowBufferSizeEvent is WINDOW_BUFFER_SIZE_RECORD.
type WindowBufferSizeEvent struct {
	DwSize Coord
}

// MenuEvent is MENU_EVENT_RECORD.
type MenuEvent struct {
	DwCommandId uint32
}

// FocusEvent is FOCUS_EVENT_RECORD.
type FocusEvent struct {
	BSetFocus int32
}

// ConsoleCursorInfo is CONSOLE_CURSOR_INFO.
type ConsoleCursorInfo struct {
	DwSize   uint32
	BVisible int32
}

// InputEvent is either a KeyEvent, MouseEvent, WindowBufferSizeEvent,
// MenuEvent or FocusEvent.
type InputEvent interface {
	isInputEvent()
}

func (*KeyEvent) isInputEvent()              {}
func (*MouseEvent) isInputEvent()            {}
func (*WindowBufferSizeEvent) isInputEvent() {}
func (*MenuEvent) isInputEvent()             {}
func (*FocusEvent) isInputEvent()            {}

// GetEvent converts InputRecord to InputEvent. It returns nil when EventType
// is not one of the documented record types. The returned value aliases the
// record.
func (input *InputRecord) GetEvent() InputEvent {
	switch input.EventType {
	case KEY_EVENT:
		return (*KeyEvent)(unsafe.Pointer(&input.Event))
	case MOUSE_EVENT:
		return (*MouseEvent)(unsafe.Pointer(&input.Event))
	case WINDOW_BUFFER_SIZE_EVENT:
		return (*WindowBufferSizeEvent)(unsafe.Pointer(&input.Event))
	case MENU_EVENT:
		return (*MenuEvent)(unsafe.Pointer(&input.Event))
	case FOCUS_EVENT:
		return (*FocusEvent)(unsafe.Pointer(&input.Event))
	default:
		return nil
	}
}
