// snapshot_cmd.go - `bbcreplay snapshot inspect <file>` (spec.md §6
// "Snapshot format").

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "snapshot", Short: "Inspect snapshot files"}
	cmd.AddCommand(&cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a snapshot's header fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := readSnapshotHeader(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("model:      %d\n", h.Model)
			fmt.Printf("PC:         $%04X\n", h.PC)
			fmt.Printf("A/X/Y:      $%02X/$%02X/$%02X\n", h.A, h.X, h.Y)
			fmt.Printf("SP:         $01%02X\n", h.SP)
			fmt.Printf("SR:         $%02X\n", h.SR)
			fmt.Printf("CPU cycles: %d\n", h.CPUCycles)
			fmt.Printf("sim cycles: %d\n", h.Cycles)
			return nil
		},
	})
	return cmd
}
