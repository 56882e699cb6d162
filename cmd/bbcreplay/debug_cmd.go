// debug_cmd.go - `bbcreplay debug <command-file>`: an interactive
// debugger REPL for the spec.md §6 Debug-* messages. Since bbcreplay cannot
// import the core's package main (see DESIGN.md), it does not talk to the
// core directly: the h, g and s keystrokes append "halt", "run" and "step"
// lines to a command file, and every other key is ignored. The engine
// binary in this repository (main.go) does not read that file.
//
// Grounded on the teacher's own go.mod dependency on golang.org/x/term
// for raw-mode single-keystroke interactive input.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <command-file>",
		Short: "Interactive debugger REPL writing Debug-* commands to a command file",
		Long: "Reads single keystrokes in raw terminal mode and appends the " +
			"corresponding Debug-* command to <command-file>, one line per " +
			"command. Keys: h=halt  g=go/run  s=step  q=quit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebugREPL(args[0])
		},
	}
}

func runDebugREPL(cmdFile string) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("debug: raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	f, err := os.OpenFile(cmdFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		term.Restore(fd, oldState)
		return fmt.Errorf("debug: open command file: %w", err)
	}
	defer f.Close()

	fmt.Fprint(os.Stdout, "bbcreplay debugger: h=halt g=run s=step q=quit\r\n")
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return err
		}
		switch buf[0] {
		case 'q', 3: // q or Ctrl-C
			return nil
		case 'h':
			writeDebugCommand(f, "halt")
		case 'g':
			writeDebugCommand(f, "run")
		case 's':
			writeDebugCommand(f, "step")
		default:
			// unrecognised key: ignored, no command written
		}
	}
}

func writeDebugCommand(f *os.File, cmd string) {
	fmt.Fprintf(f, "%s\n", cmd)
	fmt.Fprintf(os.Stdout, "-> %s\r\n", cmd)
}
