package conin

import (
	"io"
	"os"

	"github.com/deadpad/wininp/pkg/errutil"
	"github.com/deadpad/wininp/pkg/sys/ewindows"
)

const buttonMask = ewindows.FROM_LEFT_1ST_BUTTON_PRESSED |
	ewindows.RIGHTMOST_BUTTON_PRESSED |
	ewindows.FROM_LEFT_2ND_BUTTON_PRESSED |
	ewindows.FROM_LEFT_3RD_BUTTON_PRESSED |
	ewindows.FROM_LEFT_4TH_BUTTON_PRESSED

// Poller polls a Console. The only state it keeps between polls is the last
// mouse button state it has seen, which is used to tell which button a
// release belongs to.
//
// A Poller is not safe for concurrent use.
type Poller struct {
	console    Console
	interrupts <-chan os.Signal
	buttons    uint32
}

// NewPoller creates a Poller. If interrupts is not nil, a signal pending on
// it when Poll is called is reported as an InterruptEvent; with
// ENABLE_PROCESSED_INPUT in effect, this is how Ctrl-C reaches the process.
func NewPoller(c Console, interrupts <-chan os.Signal) *Poller {
	return &Poller{console: c, interrupts: interrupts}
}

// Poll polls a Console once with a fresh Poller.
func Poll(c Console) (Event, error) {
	return NewPoller(c, nil).Poll()
}

// Poll consumes at most one pending record and returns the decoded event,
// or NoEvent if there is none. All other pending records are discarded.
//
// The cursor and input mode are restored before Poll returns, including when
// it returns an error. When the error is non-nil, the event is nil.
func (p *Poller) Poll() (event Event, err error) {
	restore, err := setupPollMode(p.console)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errutil.Multi(err,
			platformError("FlushConsoleInputBuffer", p.console.FlushInput()),
			restore())
		if err != nil {
			event = nil
		}
	}()

	select {
	case <-p.interrupts:
		return InterruptEvent{}, nil
	default:
	}

	n, err := p.console.NumInputEvents()
	if err != nil {
		return nil, platformError("GetNumberOfConsoleInputEvents", err)
	}
	if n == 0 {
		return NoEvent{}, nil
	}

	var buf [1]ewindows.InputRecord
	nr, err := p.console.ReadInput(buf[:])
	if err != nil {
		return nil, platformError("ReadConsoleInput", err)
	}
	if nr == 0 {
		return nil, platformError("ReadConsoleInput", io.ErrNoProgress)
	}

	event = convertRecord(&buf[0], p.buttons)
	switch event := event.(type) {
	case MouseEvent:
		p.buttons = event.Buttons & buttonMask
	case OtherEvent:
		logger.Printf("ignored record of type %#x", event.Type)
	}
	return event, nil
}

// Callable returns a function that polls p and encodes the result with
// Value, for hosts that want a single zero-argument entry point.
func Callable(p *Poller) func() (any, error) {
	return func() (any, error) {
		event, err := p.Poll()
		if err != nil {
			return nil, err
		}
		return Value(event), nil
	}
}
