// romcheck.go - validate a ROM image's size against the big-page
// boundary the machine expects it to occupy (spec.md §0 module layout:
// every ROM region is a whole number of 4 KiB big pages; an OS ROM is 4
// big pages, a sideways ROM slot is 4 big pages).
//
// Usage: go run tools/romcheck.go <rom-file> [rom-file...]
//
// Standalone `package main`, run via `go run` exactly like the teacher's
// tools/font2rgba.go - it never imports the engine's own package main.

package main

import (
	"fmt"
	"os"
)

const bigPageSize = 0x1000 // 4 KiB, matching bigpage.go's bigPageSize
const romBigPages = 4      // a 16 KiB ROM image occupies 4 big pages

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: romcheck <rom-file> [rom-file...]")
		os.Exit(1)
	}
	failed := false
	for _, path := range os.Args[1:] {
		if err := checkROM(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		os.Exit(1)
	}
}

func checkROM(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	size := info.Size()
	want := int64(bigPageSize * romBigPages)
	if size == want {
		return nil
	}
	if size < want {
		return fmt.Errorf("too small: %d bytes, expected %d (%d big pages)", size, want, romBigPages)
	}
	if size%bigPageSize != 0 {
		return fmt.Errorf("%d bytes is not a whole number of %d-byte big pages", size, bigPageSize)
	}
	return fmt.Errorf("larger than a single ROM slot: %d bytes spans %d big pages, expected %d", size, size/bigPageSize, romBigPages)
}
