//go:build !windows

package conin

// StdConsole always returns ErrUnsupported on this OS.
func StdConsole() (Console, error) {
	return nil, ErrUnsupported
}
