package conin

import (
	"github.com/deadpad/wininp/pkg/errutil"
	"github.com/deadpad/wininp/pkg/sys/ewindows"
)

// Input mode applied during a poll. ENABLE_MOUSE_INPUT makes the console
// queue mouse records; ENABLE_PROCESSED_INPUT keeps Ctrl-C a signal.
const pollInputMode = ewindows.ENABLE_PROCESSED_INPUT |
	ewindows.ENABLE_WINDOW_INPUT | ewindows.ENABLE_MOUSE_INPUT

var hiddenCursor = ewindows.ConsoleCursorInfo{DwSize: 25, BVisible: 0}

type modeSnapshot struct {
	cursor ewindows.ConsoleCursorInfo
	mode   uint32
}

func takeSnapshot(c Console) (modeSnapshot, error) {
	cursor, err := c.CursorInfo()
	if err != nil {
		return modeSnapshot{}, platformError("GetConsoleCursorInfo", err)
	}
	mode, err := c.InputMode()
	if err != nil {
		return modeSnapshot{}, platformError("GetConsoleMode", err)
	}
	return modeSnapshot{cursor, mode}, nil
}

func (s modeSnapshot) restore(c Console) error {
	return errutil.Multi(
		platformError("SetConsoleCursorInfo", c.SetCursorInfo(s.cursor)),
		platformError("SetConsoleMode", c.SetInputMode(s.mode)))
}

// Hides the cursor and applies pollInputMode. On success it returns a
// function that restores the state found on entry. On failure the state is
// restored before returning.
func setupPollMode(c Console) (func() error, error) {
	s, err := takeSnapshot(c)
	if err != nil {
		return nil, err
	}
	restore := func() error { return s.restore(c) }
	err = errutil.Multi(
		platformError("SetConsoleCursorInfo", c.SetCursorInfo(hiddenCursor)),
		platformError("SetConsoleMode", c.SetInputMode(pollInputMode)))
	if err != nil {
		return nil, errutil.Multi(err, restore())
	}
	return restore, nil
}
