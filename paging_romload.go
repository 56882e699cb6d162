// paging_romload.go - ROM image loading with zero-pad for partial images.
//
// Per SPEC_FULL.md's recorded Open Question decision: partial ROM images
// smaller than their declared window are zero-padded, never aliased across
// the window (spec.md §9 "Open questions" - the safe reading is followed).

package main

import "os"

// loadROMPadded reads path (if non-empty) and returns an exactly-size byte
// slice, zero-padding a short file and truncating an over-long one. A
// missing/empty path yields an all-zero image, so a machine can be built
// with sideways slots that simply have nothing fitted.
func loadROMPadded(path string, size int, cfg *Config) []byte {
	buf := make([]byte, size)
	if path == "" {
		return buf
	}
	data, err := os.ReadFile(path)
	if err != nil {
		cfg.diagLogf("paging: could not load ROM %q: %v (zero-filling)", path, err)
		return buf
	}
	n := copy(buf, data)
	if n < len(data) {
		cfg.diagLogf("paging: ROM %q is %d bytes, truncated to %d", path, len(data), size)
	} else if n < size {
		cfg.diagLogf("paging: ROM %q is %d bytes, zero-padded to %d", path, len(data), size)
	}
	return buf
}
