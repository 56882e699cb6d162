// paging_test.go - tests for the paging engine (spec.md §8 testable
// property 6 "Paging consistency" and the "big-page aliasing" edge case:
// ROMSEL bits beyond the 4-bit sideways-slot mask are ignored).

package main

import "testing"

func newTestBigPages() *BigPageTable {
	t := newBigPageTable()
	for i := 0; i < 8; i++ {
		t.MainRAM[i] = t.alloc('m')
	}
	for i := 0; i < 4; i++ {
		t.OSROM[i] = t.allocROM('o', make([]byte, bigPageSize))
	}
	// populate slot 3 with a single 16 KiB sideways ROM (4 big pages)
	for i := 0; i < 4; i++ {
		t.Sideways[3] = append(t.Sideways[3], t.allocROM('3', make([]byte, bigPageSize)))
	}
	return t
}

func TestPagingEngine_ModelB_EveryEntryValid(t *testing.T) {
	pages := newTestBigPages()
	e := newPagingEngine(ModelB, pages)
	e.WriteROMSEL(3)

	for i, idx := range e.tables.User {
		if !idx.Valid() {
			t.Errorf("User[%d] = invalid big page", i)
		}
	}
	for i, idx := range e.tables.MOS {
		if !idx.Valid() {
			t.Errorf("MOS[%d] = invalid big page", i)
		}
	}
}

func TestPagingEngine_ModelB_ROMSELBitsBeyondMaskIgnored(t *testing.T) {
	pages := newTestBigPages()
	e := newPagingEngine(ModelB, pages)

	e.WriteROMSEL(3) // slot 3, no high bits set
	withLowBits := e.tables.User[8]

	e.WriteROMSEL(0xF3) // same slot 3, but bits 4-7 also set
	withHighBits := e.tables.User[8]

	if withLowBits != withHighBits {
		t.Errorf("ROMSEL high bits changed the selected sideways page: %v vs %v", withLowBits, withHighBits)
	}
}

func TestPagingEngine_ModelB_EmptySidewaysSlotIsInvalid(t *testing.T) {
	pages := newTestBigPages()
	e := newPagingEngine(ModelB, pages)
	e.WriteROMSEL(5) // slot 5 has no ROM image loaded

	if e.tables.User[8].Valid() {
		t.Error("selecting an empty sideways slot should yield an invalid big page")
	}
}

func TestPagingEngine_ModelB_MOSPagesAlwaysOSROM(t *testing.T) {
	pages := newTestBigPages()
	e := newPagingEngine(ModelB, pages)
	for _, romsel := range []byte{0, 3, 15} {
		e.WriteROMSEL(romsel)
		for i := 0; i < 4; i++ {
			if e.tables.User[12+i] != pages.OSROM[i] {
				t.Errorf("romsel=%d: User[%d] = %v, want OSROM[%d] = %v", romsel, 12+i, e.tables.User[12+i], i, pages.OSROM[i])
			}
			if !e.tables.PageIsMOS[12+i] {
				t.Errorf("romsel=%d: PageIsMOS[%d] should be true for the OS ROM window", romsel, 12+i)
			}
		}
	}
}

func TestPagingEngine_Master_SheilaRedirectsOnACCCONTst(t *testing.T) {
	pages := newTestBigPages()
	e := newPagingEngine(ModelMaster128, pages)
	if !e.tables.SheilaIsMMIO {
		t.Fatal("SheilaIsMMIO should default true")
	}
	const acccTST = 0x04
	e.WriteACCCON(acccTST)
	if e.tables.SheilaIsMMIO {
		t.Error("ACCCON TST bit set should redirect SHEILA away from MMIO")
	}
}

func TestPagingEngine_BPlus_ShadowSelectSwitchesUserWindow(t *testing.T) {
	pages := newTestBigPages()
	for i := 0; i < 5; i++ {
		pages.Shadow = append(pages.Shadow, pages.alloc('s'))
	}
	e := newPagingEngine(ModelBPlus, pages)

	e.WriteACCCON(0x00)
	mainPage := e.tables.User[3]
	e.WriteACCCON(0x80) // shadow select bit
	shadowPage := e.tables.User[3]

	if mainPage == shadowPage {
		t.Error("toggling ACCCON shadow-select bit should change the user-mode page at $3000")
	}
	if e.tables.MOS[3] != mainPage {
		t.Error("MOS view of $3000-$7FFF should always see main RAM regardless of shadow select")
	}
}
