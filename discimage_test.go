// discimage_test.go - tests for the flat-file disc image adapter (spec.md
// §4.6 "Disc adapter", §6 "Disc-image format").

package main

import "testing"

func singleSidedSSD(tracks int) []byte {
	const sectorsPerTrack = 10
	return make([]byte, tracks*sectorsPerTrack*directImageSectorSize)
}

func TestDirectDiscImage_SingleSidedGeometryInferred(t *testing.T) {
	// 40 tracks: too small to satisfy the double-sided size heuristic's
	// "at least 40 tracks' worth once halved" check, so this must read
	// back as single-sided.
	img := NewDirectDiscImage(singleSidedSSD(40), false)
	if img.sides != 1 {
		t.Errorf("sides = %d, want 1 for a 40-track single-sided image", img.sides)
	}
}

func TestDirectDiscImage_DoubleSidedGeometryInferred(t *testing.T) {
	img := NewDirectDiscImage(singleSidedSSD(160), false) // 2x80-track worth of bytes
	if img.sides != 2 {
		t.Errorf("sides = %d, want 2 when the file size is exactly double a single-sided image", img.sides)
	}
}

func TestDirectDiscImage_GetSetByteRoundTrip(t *testing.T) {
	img := NewDirectDiscImage(singleSidedSSD(80), false)
	if ok := img.SetByte(3, 100, 0x77); !ok {
		t.Fatal("SetByte should succeed within range")
	}
	got, ok := img.GetByte(3, 100)
	if !ok || got != 0x77 {
		t.Errorf("GetByte = %#x, ok=%v, want 0x77, true", got, ok)
	}
}

func TestDirectDiscImage_WriteProtectedRejectsSetByte(t *testing.T) {
	img := NewDirectDiscImage(singleSidedSSD(80), true)
	if ok := img.SetByte(0, 0, 0xFF); ok {
		t.Error("SetByte should fail on a write-protected image")
	}
}

func TestDirectDiscImage_OutOfRangeSectorOrOffsetFails(t *testing.T) {
	img := NewDirectDiscImage(singleSidedSSD(80), false)
	if _, ok := img.GetByte(99, 0); ok {
		t.Error("GetByte with an out-of-range sector should fail")
	}
	if _, ok := img.GetByte(0, 999); ok {
		t.Error("GetByte with an out-of-range offset should fail")
	}
}

func TestDirectDiscImage_StepInAndOutTrackTracking(t *testing.T) {
	img := NewDirectDiscImage(singleSidedSSD(80), false)
	if !img.IsTrack0() {
		t.Fatal("a fresh image should start at track 0")
	}
	img.StepIn(6)
	img.StepIn(6)
	if img.IsTrack0() {
		t.Error("after two StepIn calls, should no longer be at track 0")
	}
	img.StepOut(6)
	img.StepOut(6)
	if !img.IsTrack0() {
		t.Error("stepping back out the same number of times should return to track 0")
	}
	img.StepOut(6) // stepping out past 0 must clamp, not go negative
	if !img.IsTrack0() {
		t.Error("stepping out past track 0 should clamp at track 0")
	}
}
