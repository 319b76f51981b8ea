// Package conintest provides an in-memory conin.Console for tests.
package conintest

import (
	"errors"
	"unsafe"

	"github.com/deadpad/wininp/pkg/sys/ewindows"
)

// Names of Console methods, used as keys of Console.Errors.
const (
	OpCursorInfo     = "CursorInfo"
	OpSetCursorInfo  = "SetCursorInfo"
	OpInputMode      = "InputMode"
	OpSetInputMode   = "SetInputMode"
	OpNumInputEvents = "NumInputEvents"
	OpReadInput      = "ReadInput"
	OpFlushInput     = "FlushInput"
)

// ErrInjected is a convenient error value to put in Console.Errors.
var ErrInjected = errors.New("injected error")

// Console implements conin.Console in memory.
type Console struct {
	Cursor ewindows.ConsoleCursorInfo
	Mode   uint32
	// Pending input records, oldest first.
	Queue []ewindows.InputRecord
	// Errors to return from methods, keyed by method name. A failing setter
	// does not change any state.
	Errors map[string]error

	// Input mode and cursor in effect during the last ReadInput call.
	ModeAtRead   uint32
	CursorAtRead ewindows.ConsoleCursorInfo
	// Names of the methods called, in order.
	Calls []string
}

// New returns a Console with the given initial cursor and mode and records
// already queued.
func New(cursor ewindows.ConsoleCursorInfo, mode uint32, queue ...ewindows.InputRecord) *Console {
	return &Console{Cursor: cursor, Mode: mode, Queue: queue}
}

// Push appends records to the queue.
func (c *Console) Push(recs ...ewindows.InputRecord) {
	c.Queue = append(c.Queue, recs...)
}

func (c *Console) call(op string) error {
	c.Calls = append(c.Calls, op)
	return c.Errors[op]
}

func (c *Console) CursorInfo() (ewindows.ConsoleCursorInfo, error) {
	if err := c.call(OpCursorInfo); err != nil {
		return ewindows.ConsoleCursorInfo{}, err
	}
	return c.Cursor, nil
}

func (c *Console) SetCursorInfo(info ewindows.ConsoleCursorInfo) error {
	if err := c.call(OpSetCursorInfo); err != nil {
		return err
	}
	c.Cursor = info
	return nil
}

func (c *Console) InputMode() (uint32, error) {
	if err := c.call(OpInputMode); err != nil {
		return 0, err
	}
	return c.Mode, nil
}

func (c *Console) SetInputMode(mode uint32) error {
	if err := c.call(OpSetInputMode); err != nil {
		return err
	}
	c.Mode = mode
	return nil
}

func (c *Console) NumInputEvents() (int, error) {
	if err := c.call(OpNumInputEvents); err != nil {
		return 0, err
	}
	return len(c.Queue), nil
}

// ReadInput consumes up to len(buf) records. Unlike the real console it
// never blocks; with an empty queue it reads nothing.
func (c *Console) ReadInput(buf []ewindows.InputRecord) (int, error) {
	if err := c.call(OpReadInput); err != nil {
		return 0, err
	}
	c.ModeAtRead, c.CursorAtRead = c.Mode, c.Cursor
	n := copy(buf, c.Queue)
	c.Queue = c.Queue[n:]
	return n, nil
}

func (c *Console) FlushInput() error {
	if err := c.call(OpFlushInput); err != nil {
		return err
	}
	c.Queue = nil
	return nil
}

// VirtualKey returns a key-down record for a key without a character, such as
// VK_SHIFT (0x10) or VK_LEFT (0x25).
func VirtualKey(code uint16) ewindows.InputRecord {
	return KeyRecord(ewindows.KeyEvent{
		BKeyDown: 1, WRepeatCount: 1, WVirtualKeyCode: code})
}

// Key returns a key-down record for an ASCII character.
func Key(char byte) ewindows.InputRecord {
	return KeyRecord(ewindows.KeyEvent{
		BKeyDown: 1, WRepeatCount: 1, UChar: [2]byte{char, 0}})
}

// KeyUp returns a key-up record for an ASCII character.
func KeyUp(char byte) ewindows.InputRecord {
	return KeyRecord(ewindows.KeyEvent{
		WRepeatCount: 1, UChar: [2]byte{char, 0}})
}

// Mouse returns a mouse record.
func Mouse(col, row int16, buttons, flags uint32) ewindows.InputRecord {
	return MouseRecord(ewindows.MouseEvent{
		DwMousePosition: ewindows.Coord{X: col, Y: row},
		DwButtonState:   buttons,
		DwEventFlags:    flags,
	})
}

// Interrupt returns a record with the CTRL_C_EVENT type.
func Interrupt() ewindows.InputRecord {
	return ewindows.InputRecord{EventType: ewindows.CTRL_C_EVENT}
}

// Resize returns a window buffer size record.
func Resize(cols, rows int16) ewindows.InputRecord {
	return ResizeRecord(
		ewindows.WindowBufferSizeEvent{DwSize: ewindows.Coord{X: cols, Y: rows}})
}

// KeyRecord builds an InputRecord holding a key event.
func KeyRecord(e ewindows.KeyEvent) ewindows.InputRecord {
	r := ewindows.InputRecord{EventType: ewindows.KEY_EVENT}
	*(*ewindows.KeyEvent)(unsafe.Pointer(&r.Event)) = e
	return r
}

// MouseRecord builds an InputRecord holding a mouse event.
func MouseRecord(e ewindows.MouseEvent) ewindows.InputRecord {
	r := ewindows.InputRecord{EventType: ewindows.MOUSE_EVENT}
	*(*ewindows.MouseEvent)(unsafe.Pointer(&r.Event)) = e
	return r
}

// ResizeRecord builds an InputRecord holding a window buffer size event.
func ResizeRecord(e ewindows.WindowBufferSizeEvent) ewindows.InputRecord {
	r := ewindows.InputRecord{EventType: ewindows.WINDOW_BUFFER_SIZE_EVENT}
	*(*ewindows.WindowBufferSizeEvent)(unsafe.Pointer(&r.Event)) = e
	return r
}

// FocusRecord builds an InputRecord holding a focus event.
func FocusRecord(e ewindows.FocusEvent) ewindows.InputRecord {
	r := ewindows.InputRecord{EventType: ewindows.FOCUS_EVENT}
	*(*ewindows.FocusEvent)(unsafe.Pointer(&r.Event)) = e
	return r
}
