// floppy_wd1770_test.go - tests for the WD1770 floppy controller
// (spec.md §8 boundary behaviour: stepping out past track 0 stops at 0
// rather than going negative or wrapping).

package main

import "testing"

// fakeDisc is a minimal DiscAdapter stub exercising only what the
// controller's step/seek logic touches.
type fakeDisc struct {
	track      int
	stepInN    int
	stepOutN   int
}

func (f *fakeDisc) IsTrack0() bool                { return f.track == 0 }
func (f *fakeDisc) StepIn(stepRate int)            { f.track++; f.stepInN++ }
func (f *fakeDisc) StepOut(stepRate int) {
	if f.track > 0 {
		f.track--
	}
	f.stepOutN++
}
func (f *fakeDisc) SpinUp()   {}
func (f *fakeDisc) SpinDown() {}
func (f *fakeDisc) GetByte(sector, offset int) (byte, bool)      { return 0, false }
func (f *fakeDisc) SetByte(sector, offset int, value byte) bool  { return false }
func (f *fakeDisc) GetSectorDetails(sector int, density bool) (int, int, int, bool) {
	return 0, 0, 0, false
}

func TestWD1770_StepOutStopsAtTrackZero(t *testing.T) {
	w := newWD1770()
	disc := &fakeDisc{track: 0}
	w.SetDisc(disc)
	w.track = 0

	w.stepTrack(-1)

	if w.track != 0 {
		t.Errorf("track = %d, want 0 (stepping out past track 0 must stop at 0)", w.track)
	}
	if disc.stepOutN != 0 {
		t.Errorf("StepOut called %d times, want 0 when already at track 0", disc.stepOutN)
	}
}

func TestWD1770_StepOutDecrementsAboveTrackZero(t *testing.T) {
	w := newWD1770()
	disc := &fakeDisc{track: 5}
	w.SetDisc(disc)
	w.track = 5

	w.stepTrack(-1)

	if w.track != 4 {
		t.Errorf("track = %d, want 4", w.track)
	}
	if disc.stepOutN != 1 {
		t.Errorf("StepOut called %d times, want 1", disc.stepOutN)
	}
}

func TestWD1770_StepInIncrementsTrack(t *testing.T) {
	w := newWD1770()
	disc := &fakeDisc{track: 0}
	w.SetDisc(disc)
	w.track = 0

	w.stepTrack(1)

	if w.track != 1 {
		t.Errorf("track = %d, want 1", w.track)
	}
}

func TestWD1770_BusyCommandIgnoresNewCommand(t *testing.T) {
	w := newWD1770()
	w.WriteCommand(0x00) // restore: sets busy
	if w.status&wd1770StatusBusy == 0 {
		t.Fatal("restore command should set the busy bit")
	}
	before := w.command
	w.WriteCommand(0x10) // seek: should be ignored while busy
	if w.command != before {
		t.Error("a new command issued while busy should be ignored")
	}
}

func TestWD1770_ReadStatusClearsINTRQ(t *testing.T) {
	w := newWD1770()
	intrqEvents := []bool{}
	w.OnINTRQChanged = func(v bool) { intrqEvents = append(intrqEvents, v) }
	w.setINTRQ(true)
	w.ReadStatus()
	if len(intrqEvents) == 0 || intrqEvents[len(intrqEvents)-1] != false {
		t.Error("reading status should clear INTRQ")
	}
}
