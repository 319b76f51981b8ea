// Wininp polls the Windows console for keyboard and mouse input and prints
// each event it sees. It exercises the conin package the same way an
// embedding host does: one poll per tick.
package main

import (
	"os"

	"github.com/deadpad/wininp/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(prog.ReplayProgram{}, &prog.PollProgram{})))
}
