// main.go - bbcreplay: a standalone CLI for inspecting the emulation
// core's on-disk artifacts (snapshots, disc images), plus a file-polling
// status dashboard and a debugger-command REPL (spec.md §6 "Snapshot
// format", "Disc-image format"). It does not record or replay timelines.
//
// Grounded on the teacher's cmd/ie32to64, a standalone flag/tool binary
// that never imports the engine's own `package main` (Go cannot import a
// main package); following that same decoupling, bbcreplay understands
// the on-disk formats spec.md §6 documents directly rather than linking
// against the engine binary, exactly as cmd/ie32to64 understands IE32/
// IE64 assembly syntax without linking against the engine's CPU code.
// Its command tree is built with spf13/cobra, the one pack repo
// (oisee-z80-optimizer) that reaches for a CLI framework instead of
// plain `flag`.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "bbcreplay",
		Short: "Inspect BBC Microcomputer emulation core artifacts",
	}
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newDiscImageCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newDebugCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
