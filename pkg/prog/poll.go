package prog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/deadpad/wininp/pkg/conin"
	"github.com/deadpad/wininp/pkg/store"
	"github.com/deadpad/wininp/pkg/sys"
)

// PollProgram polls the console until the quit key, an interrupt or the
// event limit, printing one line per event.
type PollProgram struct {
	// Opens the console attached to the given stdin. Defaults to
	// OpenStdConsole.
	OpenConsole func(in *os.File) (conin.Console, error)
	// Source of interrupts. Defaults to sys.NotifyInterrupt.
	NotifyInterrupt func() (<-chan os.Signal, func())
	// Function to wait between polls. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// OpenStdConsole returns the console of the process, after checking that in
// is a terminal.
func OpenStdConsole(in *os.File) (conin.Console, error) {
	if !sys.IsATTY(in.Fd()) {
		return nil, errors.New("stdin is not a terminal")
	}
	return conin.StdConsole()
}

func (p *PollProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if len(args) > 0 {
		return BadUsage("arguments are not allowed")
	}
	if len(f.Quit) > 1 {
		return BadUsage("-quit must be a single character")
	}

	openConsole := p.OpenConsole
	if openConsole == nil {
		openConsole = OpenStdConsole
	}
	notify := p.NotifyInterrupt
	if notify == nil {
		notify = sys.NotifyInterrupt
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	console, err := openConsole(fds[0])
	if err != nil {
		return err
	}

	var st *store.Store
	if f.DB != "" {
		st, err = store.NewStore(f.DB)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()
	}

	interrupts, stop := notify()
	defer stop()
	poller := conin.NewPoller(console, interrupts)

	for n := 0; f.Max <= 0 || n < f.Max; {
		event, err := poller.Poll()
		if err != nil {
			return err
		}
		if _, ok := event.(conin.NoEvent); ok {
			sleep(f.Interval)
			continue
		}
		n++
		fmt.Fprintln(fds[1], FormatEvent(event))
		if st != nil {
			if _, err := st.AddEvent(event); err != nil {
				logger.Println("failed to record event:", err)
			}
		}
		if isQuit(event, f.Quit) {
			return nil
		}
		sleep(f.Interval)
	}
	return nil
}

func isQuit(event conin.Event, quit string) bool {
	switch event := event.(type) {
	case conin.InterruptEvent:
		return true
	case conin.KeyEvent:
		return event.Down && quit != "" && event.Char == quit[0]
	}
	return false
}

// FormatEvent returns a one-line description of an event.
func FormatEvent(event conin.Event) string {
	switch event := event.(type) {
	case conin.NoEvent:
		return "none"
	case conin.KeyEvent:
		dir := "down"
		if !event.Down {
			dir = "up"
		}
		return fmt.Sprintf("key %q %s", conin.Value(event), dir)
	case conin.InterruptEvent:
		return conin.InterruptValue
	case conin.MouseEvent:
		return fmt.Sprintf("mouse %v col=%d row=%d buttons=%#x flags=%#x",
			event.Kind, event.Col, event.Row, event.Buttons, event.Flags)
	case conin.OtherEvent:
		return fmt.Sprintf("other type=%#x", event.Type)
	}
	return fmt.Sprintf("unknown %T", event)
}
