package conin

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/deadpad/wininp/pkg/sys/ewindows"
)

type stdConsole struct {
	in, out windows.Handle
}

// StdConsole returns the Console attached to the standard input and output
// handles of the process.
func StdConsole() (Console, error) {
	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, fmt.Errorf("GetStdHandle(STD_INPUT_HANDLE): %w", err)
	}
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, fmt.Errorf("GetStdHandle(STD_OUTPUT_HANDLE): %w", err)
	}
	return &stdConsole{in, out}, nil
}

func (c *stdConsole) CursorInfo() (ewindows.ConsoleCursorInfo, error) {
	var info ewindows.ConsoleCursorInfo
	err := ewindows.GetConsoleCursorInfo(c.out, &info)
	return info, err
}

func (c *stdConsole) SetCursorInfo(info ewindows.ConsoleCursorInfo) error {
	return ewindows.SetConsoleCursorInfo(c.out, &info)
}

func (c *stdConsole) InputMode() (uint32, error) {
	var mode uint32
	err := windows.GetConsoleMode(c.in, &mode)
	return mode, err
}

func (c *stdConsole) SetInputMode(mode uint32) error {
	return windows.SetConsoleMode(c.in, mode)
}

func (c *stdConsole) NumInputEvents() (int, error) {
	var n uint32
	err := windows.GetNumberOfConsoleInputEvents(c.in, &n)
	return int(n), err
}

// ReadInput goes through a system call; the Go runtime hands the P to other
// goroutines while it blocks.
func (c *stdConsole) ReadInput(buf []ewindows.InputRecord) (int, error) {
	return ewindows.ReadConsoleInput(c.in, buf)
}

func (c *stdConsole) FlushInput() error {
	return windows.FlushConsoleInputBuffer(c.in)
}
