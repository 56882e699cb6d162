// discimage_cmd.go - `bbcreplay discimage verify <file>` (spec.md §6
// "Disc-image format": a flat file with sector s on track t, side d at
// offset ((t*sides+d)*sectorsPerTrack+s)*256).

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const discImageSectorSize = 256

func newDiscImageCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "discimage", Short: "Inspect/verify disc images"}
	cmd.AddCommand(&cobra.Command{
		Use:   "verify <file>",
		Short: "Check a disc image's size is a whole number of sectors and report inferred geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			size := info.Size()
			if size%discImageSectorSize != 0 {
				return fmt.Errorf("size %d is not a multiple of the %d-byte sector size", size, discImageSectorSize)
			}
			const sectorsPerTrack = 10
			trackBytes := int64(sectorsPerTrack * discImageSectorSize)
			sides := 1
			if size%(trackBytes*2) == 0 && size/(trackBytes*2) >= 40 {
				sides = 2
			}
			tracks := size / (trackBytes * int64(sides))
			fmt.Printf("size:    %d bytes\n", size)
			fmt.Printf("sides:   %d\n", sides)
			fmt.Printf("tracks:  %d\n", tracks)
			fmt.Printf("sectors: %d per track, %d bytes each\n", sectorsPerTrack, discImageSectorSize)
			return nil
		},
	})
	return cmd
}
