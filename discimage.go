// discimage.go - the disc adapter interface the WD1770 speaks to, plus the
// "direct" flat-file image format (spec.md §4.6 "Disc adapter", §6
// "Disc-image format").

package main

import "sync"

// DiscAdapter isolates the WD1770 controller from any particular
// disc-image format (spec.md §4.6).
type DiscAdapter interface {
	IsTrack0() bool
	StepIn(stepRate int)
	StepOut(stepRate int)
	SpinUp()
	SpinDown()
	GetByte(sector, offset int) (value byte, ok bool)
	SetByte(sector, offset int, value byte) (ok bool)
	GetSectorDetails(sector int, density bool) (track, side, size int, ok bool)
}

// DirectDiscImage is the minimal flat-file format from spec.md §6: sector
// s on track t, side d lies at offset ((t*sides+d)*sectorsPerTrack+s)*256.
type DirectDiscImage struct {
	mu sync.Mutex // spec.md §5 "each disc image is protected by its own lock"

	data             []byte
	sides            int
	sectorsPerTrack  int
	writeProtected   bool
	currentTrack     int
}

const directImageSectorSize = 256

// NewDirectDiscImage infers geometry from file size the way spec.md §6
// describes: sectorsPerTrack is fixed at 10 (the BBC's standard SSD/DSD
// layout), and the image is treated as double-sided when its size is a
// whole number of two-sided 10-sector tracks, at least 40 of them;
// otherwise it is single-sided.
func NewDirectDiscImage(data []byte, writeProtected bool) *DirectDiscImage {
	const sectorsPerTrack = 10
	trackBytes := sectorsPerTrack * directImageSectorSize
	sides := 1
	if len(data) > 0 && len(data)%(trackBytes*2) == 0 && len(data)/(trackBytes*2) >= 40 {
		sides = 2
	}
	return &DirectDiscImage{data: data, sides: sides, sectorsPerTrack: sectorsPerTrack, writeProtected: writeProtected}
}

func (d *DirectDiscImage) IsTrack0() bool { return d.currentTrack == 0 }

func (d *DirectDiscImage) StepIn(stepRate int)  { d.currentTrack++ }
func (d *DirectDiscImage) StepOut(stepRate int) {
	if d.currentTrack > 0 {
		d.currentTrack--
	}
}
func (d *DirectDiscImage) SpinUp()   {}
func (d *DirectDiscImage) SpinDown() {}

func (d *DirectDiscImage) offset(sector, offsetInSector int) (int, bool) {
	if sector < 0 || sector >= d.sectorsPerTrack || offsetInSector < 0 || offsetInSector >= directImageSectorSize {
		return 0, false
	}
	side := 0
	pos := ((d.currentTrack*d.sides+side)*d.sectorsPerTrack + sector) * directImageSectorSize
	pos += offsetInSector
	if pos < 0 || pos >= len(d.data) {
		return 0, false
	}
	return pos, true
}

func (d *DirectDiscImage) GetByte(sector, offsetInSector int) (byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	pos, ok := d.offset(sector, offsetInSector)
	if !ok {
		return 0, false
	}
	return d.data[pos], true
}

func (d *DirectDiscImage) SetByte(sector, offsetInSector int, value byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.writeProtected {
		return false
	}
	pos, ok := d.offset(sector, offsetInSector)
	if !ok {
		return false
	}
	d.data[pos] = value
	return true
}

func (d *DirectDiscImage) GetSectorDetails(sector int, density bool) (track, side, size int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sector < 0 || sector >= d.sectorsPerTrack {
		return 0, 0, 0, false
	}
	return d.currentTrack, 0, directImageSectorSize, true
}

// Bytes returns the raw backing image, e.g. for save-to-host-file.
func (d *DirectDiscImage) Bytes() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, len(d.data))
	copy(out, d.data)
	return out
}
