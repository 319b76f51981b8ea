// Package sys provide system utilities with the same API across OSes.
//
// The subpackage ewindows provides Windows-specific utilities.
package sys

import (
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
)

// NotifyInterrupt returns a channel on which os.Interrupt gets delivered, and
// a function that stops the delivery. On Windows, Ctrl-C and Ctrl-Break
// typed into a console in processed input mode arrive this way.
func NotifyInterrupt() (<-chan os.Signal, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	return sigCh, func() { signal.Stop(sigCh) }
}

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
