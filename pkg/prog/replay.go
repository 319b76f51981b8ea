package prog

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/deadpad/wininp/pkg/store"
)

// ReplayProgram prints the events recorded in the journal given by -db. It
// is only suitable when -replay is given.
type ReplayProgram struct{}

func (ReplayProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if !f.Replay {
		return ErrNotSuitable
	}
	if f.DB == "" {
		return BadUsage("-replay requires -db")
	}
	st, err := store.NewStore(f.DB)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()
	return st.IterateEvents(0, math.MaxInt, func(e store.Entry) {
		printEntry(fds[1], e)
	})
}

func printEntry(w io.Writer, e store.Entry) {
	fmt.Fprintf(w, "%d %s\n", e.Seq, FormatEvent(e.Event))
}
