package conin

import "github.com/deadpad/wininp/pkg/sys/ewindows"

const (
	leftButton   = ewindows.FROM_LEFT_1ST_BUTTON_PRESSED
	rightButton  = ewindows.RIGHTMOST_BUTTON_PRESSED
	middleButton = ewindows.FROM_LEFT_2ND_BUTTON_PRESSED

	wheelFlags = ewindows.MOUSE_WHEELED | ewindows.MOUSE_HWHEELED
)

// Converts an input record to an Event. The prevButtons argument is the
// button state last seen, used to tell which button a click record is about.
func convertRecord(rec *ewindows.InputRecord, prevButtons uint32) Event {
	switch event := rec.GetEvent().(type) {
	case *ewindows.KeyEvent:
		return convertKey(event)
	case *ewindows.MouseEvent:
		return convertMouse(event, prevButtons)
	case nil:
		if rec.EventType == ewindows.CTRL_C_EVENT {
			return InterruptEvent{}
		}
	}
	return OtherEvent{rec.EventType}
}

func convertKey(event *ewindows.KeyEvent) KeyEvent {
	r := rune(event.UChar[0]) | rune(event.UChar[1])<<8
	var char byte
	if r < 0x80 {
		char = byte(r)
	}
	return KeyEvent{Char: char, Rune: r, Down: event.BKeyDown != 0}
}

func convertMouse(event *ewindows.MouseEvent, prevButtons uint32) MouseEvent {
	return MouseEvent{
		Kind:    mouseKind(event.DwEventFlags, event.DwButtonState, prevButtons),
		Col:     int(event.DwMousePosition.X),
		Row:     int(event.DwMousePosition.Y),
		Buttons: event.DwButtonState,
		Flags:   event.DwEventFlags,
	}
}

func mouseKind(flags, buttons, prevButtons uint32) MouseKind {
	switch {
	case flags&wheelFlags != 0:
		return Scroll
	case flags&ewindows.MOUSE_MOVED != 0:
		return Move
	case flags&^ewindows.DOUBLE_CLICK != 0:
		return Unknown
	}
	// A click record: a button was pressed or released.
	if k := pressedKind(buttons &^ prevButtons); k != Unknown {
		return k
	}
	if k := releasedKind(prevButtons &^ buttons); k != Unknown {
		return k
	}
	// Nothing changed as far as we know, for example because the previous
	// state was consumed by someone else. Go by what is held.
	return pressedKind(buttons)
}

func pressedKind(b uint32) MouseKind {
	switch {
	case b&leftButton != 0:
		return LeftDown
	case b&rightButton != 0:
		return RightDown
	case b&middleButton != 0:
		return MiddleDown
	}
	return Unknown
}

func releasedKind(b uint32) MouseKind {
	switch {
	case b&leftButton != 0:
		return LeftUp
	case b&rightButton != 0:
		return RightUp
	case b&middleButton != 0:
		return MiddleUp
	}
	return Unknown
}
