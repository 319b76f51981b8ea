package conin

import (
	"testing"

	"github.com/deadpad/wininp/pkg/conin/conintest"
	"github.com/deadpad/wininp/pkg/sys/ewindows"
	"github.com/deadpad/wininp/pkg/tt"
)

var (
	Args = tt.Args
	Fn   = tt.Fn
)

func convert(rec ewindows.InputRecord, prevButtons uint32) Event {
	return convertRecord(&rec, prevButtons)
}

func TestConvertRecord(t *testing.T) {
	tt.Test(t, Fn("convertRecord", convert), tt.Table{
		Args(conintest.Key('a'), uint32(0)).Rets(KeyEvent{Char: 'a', Rune: 'a', Down: true}),
		Args(conintest.KeyUp('a'), uint32(0)).Rets(KeyEvent{Char: 'a', Rune: 'a'}),
		// Non-ASCII characters have no Char.
		Args(charKeyRecord('µ'), uint32(0)).Rets(KeyEvent{Rune: 'µ', Down: true}),
		// Keys without a character.
		Args(conintest.VirtualKey(0x25), uint32(0)).Rets(KeyEvent{Down: true}),

		Args(conintest.Mouse(12, 5, leftButton, 0), uint32(0)).Rets(
			MouseEvent{Kind: LeftDown, Col: 12, Row: 5, Buttons: leftButton}),
		Args(conintest.Mouse(3, 4, 0, ewindows.MOUSE_MOVED), uint32(0)).Rets(
			MouseEvent{Kind: Move, Col: 3, Row: 4, Flags: ewindows.MOUSE_MOVED}),

		Args(conintest.Interrupt(), uint32(0)).Rets(InterruptEvent{}),

		Args(conintest.Resize(80, 25), uint32(0)).Rets(
			OtherEvent{ewindows.WINDOW_BUFFER_SIZE_EVENT}),
		Args(conintest.FocusRecord(ewindows.FocusEvent{BSetFocus: 1}), uint32(0)).Rets(
			OtherEvent{ewindows.FOCUS_EVENT}),
		Args(ewindows.InputRecord{EventType: 0x40}, uint32(0)).Rets(OtherEvent{0x40}),
	})
}

func TestMouseKind(t *testing.T) {
	const (
		moved   = ewindows.MOUSE_MOVED
		dbl     = ewindows.DOUBLE_CLICK
		wheeled = ewindows.MOUSE_WHEELED
		hwheel  = ewindows.MOUSE_HWHEELED
	)
	tt.Test(t, Fn("mouseKind", mouseKind).ArgsFmt("flags=%#x, buttons=%#x, prev=%#x"), tt.Table{
		// Presses
		Args(uint32(0), uint32(leftButton), uint32(0)).Rets(LeftDown),
		Args(uint32(0), uint32(rightButton), uint32(0)).Rets(RightDown),
		Args(uint32(0), uint32(middleButton), uint32(0)).Rets(MiddleDown),
		Args(uint32(0), uint32(leftButton|rightButton), uint32(leftButton)).Rets(RightDown),
		Args(uint32(dbl), uint32(leftButton), uint32(0)).Rets(LeftDown),
		// Releases
		Args(uint32(0), uint32(0), uint32(leftButton)).Rets(LeftUp),
		Args(uint32(0), uint32(0), uint32(rightButton)).Rets(RightUp),
		Args(uint32(0), uint32(0), uint32(middleButton)).Rets(MiddleUp),
		Args(uint32(0), uint32(leftButton), uint32(leftButton|middleButton)).Rets(MiddleUp),
		// No change seen; go by what is held.
		Args(uint32(0), uint32(rightButton), uint32(rightButton)).Rets(RightDown),
		Args(uint32(0), uint32(0), uint32(0)).Rets(Unknown),
		// Moves and wheels
		Args(uint32(moved), uint32(0), uint32(0)).Rets(Move),
		Args(uint32(moved), uint32(leftButton), uint32(leftButton)).Rets(Move),
		Args(uint32(wheeled), uint32(120<<16), uint32(0)).Rets(Scroll),
		Args(uint32(hwheel), uint32(0xff88<<16), uint32(0)).Rets(Scroll),
		// Flags not documented
		Args(uint32(0x100), uint32(leftButton), uint32(0)).Rets(Unknown),
	})
}

func charKeyRecord(r rune) ewindows.InputRecord {
	return conintest.KeyRecord(ewindows.KeyEvent{
		BKeyDown: 1, UChar: [2]byte{byte(r), byte(r >> 8)}})
}
