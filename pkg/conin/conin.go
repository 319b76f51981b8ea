// Package conin polls the Windows console input queue for at most one event
// per call.
//
// Each poll hides the cursor and switches the console into an input mode
// that delivers mouse records, looks at the queue, consumes at most one
// record and discards the rest, and puts the console back the way it found
// it before returning. Between polls the console is always in its original
// mode.
package conin

import (
	"errors"

	"github.com/deadpad/wininp/pkg/logutil"
	"github.com/deadpad/wininp/pkg/sys/ewindows"
)

var logger = logutil.GetLogger("[conin] ")

// Console is the subset of the Windows console API used by a Poller. Cursor
// methods operate on the output buffer, the others on the input buffer.
type Console interface {
	// CursorInfo returns the size and visibility of the cursor.
	CursorInfo() (ewindows.ConsoleCursorInfo, error)
	// SetCursorInfo sets the size and visibility of the cursor.
	SetCursorInfo(ewindows.ConsoleCursorInfo) error
	// InputMode returns the input mode flags.
	InputMode() (uint32, error)
	// SetInputMode sets the input mode flags.
	SetInputMode(uint32) error
	// NumInputEvents returns the number of pending input records without
	// consuming them.
	NumInputEvents() (int, error)
	// ReadInput consumes up to len(buf) records, blocking until at least one
	// is available.
	ReadInput(buf []ewindows.InputRecord) (int, error)
	// FlushInput discards all pending input records.
	FlushInput() error
}

// ErrUnsupported is returned by StdConsole on systems without a Windows
// console.
var ErrUnsupported = errors.New("console input polling is only supported on Windows")
