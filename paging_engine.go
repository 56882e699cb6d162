// paging_engine.go - the 6502 paging state -> big-page-table mapping
// (spec.md §3 "6502 paging state", §4.2 "Paging engine").
//
// The update protocol (rebuild the two 16-entry tables whenever ROMSEL or
// ACCCON is written) is dispatched through a per-page handler table, the
// same idiom the teacher's Bus6502Adapter.initIOTable uses for MMIO pages.

package main

// PagingState is the tuple that the paging tables are a pure function of.
type PagingState struct {
	ROMSEL byte
	ACCCON byte

	// RegionByte[slot] is the current mapper-region byte for that sideways
	// ROM slot (only meaningful for mapper types wider than 16 KiB).
	RegionByte [16]byte
	RomType    [16]ROMMapperType
}

// PagingTables is the paging engine's complete output: two 16-entry
// big-page-index tables (one per access mode) plus the "this page behaves
// as MOS" flag table and the SHEILA-is-MMIO flag.
type PagingTables struct {
	User [16]BigPageIndex
	MOS  [16]BigPageIndex

	// PageIsMOS[i] says whether code executing from memory big page i (as
	// currently mapped) should be treated as MOS code for the purposes of
	// subsequent accesses - spec.md §4.2.
	PageIsMOS [16]bool

	// SheilaIsMMIO is false only when ACCCON's TST bit (Master) redirects
	// SHEILA reads to the MOS ROM image instead of memory-mapped I/O.
	SheilaIsMMIO bool
}

// PagingEngine owns the model-specific rule set and the big-page table it
// maps PagingState onto.
type PagingEngine struct {
	model  Model
	pages  *BigPageTable
	state  PagingState
	tables PagingTables
}

func newPagingEngine(model Model, pages *BigPageTable) *PagingEngine {
	e := &PagingEngine{model: model, pages: pages}
	e.tables.SheilaIsMMIO = true
	e.Rebuild()
	return e
}

// WriteROMSEL intercepts a write to the ROMSEL MMIO address (spec.md §4.2
// "Update protocol").
func (e *PagingEngine) WriteROMSEL(value byte) {
	e.state.ROMSEL = value
	e.Rebuild()
}

// WriteACCCON intercepts a write to the ACCCON MMIO address.
func (e *PagingEngine) WriteACCCON(value byte) {
	old := e.state.ACCCON
	e.state.ACCCON = value
	e.Rebuild()
	if old&0x80 != value&0x80 {
		// Display-source pointer depends on ACCCON bit 7 (B+ shadow select);
		// the video ULA re-reads PagingTables lazily, so nothing further is
		// needed here beyond having rebuilt the tables above.
	}
}

// WriteMapperRegion intercepts a write to a sideways ROM's mapper-region
// control register for wide ROM types.
func (e *PagingEngine) WriteMapperRegion(slot int, region byte) {
	e.state.RegionByte[slot] = region
	e.Rebuild()
}

// Tables returns the current paging tables (read-only view for the bus
// adapter's hot path).
func (e *PagingEngine) Tables() *PagingTables { return &e.tables }

// Rebuild recomputes both 16-entry big-page tables and the MOS-flag table
// from the current PagingState, per the model-specific rules in spec.md
// §4.2. This satisfies testable property 6 ("Paging consistency"): every
// entry always resolves to a valid big page for the current machine.
func (e *PagingEngine) Rebuild() {
	switch e.model {
	case ModelB:
		e.rebuildModelB()
	case ModelBPlus:
		e.rebuildBPlus()
	case ModelMaster128, ModelMasterCompact:
		e.rebuildMaster()
	}
	e.tables.SheilaIsMMIO = e.sheilaIsMMIO()
}

func (e *PagingEngine) sheilaIsMMIO() bool {
	if e.model == ModelMaster128 || e.model == ModelMasterCompact {
		const acccTST = 0x04
		return e.state.ACCCON&acccTST == 0
	}
	return true
}

// rebuildModelB implements: ROMSEL selects one of 16 sideways slots at
// $8000-$BFFF; MOS always at $C000-$FFFF; no user/MOS distinction.
func (e *PagingEngine) rebuildModelB() {
	for i := 0; i < 8; i++ {
		e.tables.User[i] = e.pages.MainRAM[i]
		e.tables.MOS[i] = e.pages.MainRAM[i]
		e.tables.PageIsMOS[i] = false
	}
	slot := int(e.state.ROMSEL & 0x0F)
	e.mapSidewaysWindow(slot, 8, false)
	for i := 0; i < 4; i++ {
		e.tables.User[12+i] = e.pages.OSROM[i]
		e.tables.MOS[12+i] = e.pages.OSROM[i]
		e.tables.PageIsMOS[12+i] = true
	}
}

// rebuildBPlus implements: 12 KiB ANDY at $8000-$AFFF when ROMSEL bit 7 set;
// 20 KiB shadow RAM selected by ACCCON bit 7, with MOS/user split at
// $3000-$7FFF.
func (e *PagingEngine) rebuildBPlus() {
	const andyEnable = 0x80
	const shadowSelect = 0x80

	shadowSelected := e.state.ACCCON&shadowSelect != 0

	for i := 0; i < 3; i++ { // $0000-$2FFF always main RAM
		e.tables.User[i] = e.pages.MainRAM[i]
		e.tables.MOS[i] = e.pages.MainRAM[i]
	}
	for i := 3; i < 8; i++ { // $3000-$7FFF: shadow-eligible window
		main := e.pages.MainRAM[i]
		shadow := main
		if len(e.pages.Shadow) > i-3 {
			shadow = e.pages.Shadow[i-3]
		}
		if shadowSelected {
			e.tables.User[i] = shadow
		} else {
			e.tables.User[i] = main
		}
		e.tables.MOS[i] = main // MOS always sees main RAM in this window
	}

	if e.state.ROMSEL&andyEnable != 0 && len(e.pages.ANDY) >= 3 {
		for i := 0; i < 3; i++ {
			e.tables.User[8+i] = e.pages.ANDY[i]
			e.tables.MOS[8+i] = e.pages.ANDY[i]
		}
	} else {
		slot := int(e.state.ROMSEL & 0x0F)
		e.mapSidewaysWindow(slot, 8, false)
	}
	for i := 11; i < 12; i++ { // last 4KiB of the sideways window ($B000-$BFFF)
		slot := int(e.state.ROMSEL & 0x0F)
		e.mapOneSidewaysPage(slot, i, 3)
	}
	for i := 0; i < 4; i++ {
		e.tables.User[12+i] = e.pages.OSROM[i]
		e.tables.MOS[12+i] = e.pages.OSROM[i]
		e.tables.PageIsMOS[12+i] = true
	}
}

// rebuildMaster implements the Master 128/Compact truth table:
// UsrShadow = X; MOSShadow = (Y AND X) OR (NOT Y AND E)
func (e *PagingEngine) rebuildMaster() {
	const (
		accE = 0x01
		accX = 0x08
		accY = 0x10
	)
	acc := e.state.ACCCON
	x := acc&accX != 0
	y := acc&accY != 0
	eBit := acc&accE != 0

	usrShadow := x
	mosShadow := (y && x) || (!y && eBit)

	for i := 0; i < 3; i++ {
		e.tables.User[i] = e.pages.MainRAM[i]
		e.tables.MOS[i] = e.pages.MainRAM[i]
	}
	for i := 3; i < 8; i++ {
		main := e.pages.MainRAM[i]
		shadow := main
		if len(e.pages.Shadow) > i-3 {
			shadow = e.pages.Shadow[i-3]
		}
		if usrShadow {
			e.tables.User[i] = shadow
		} else {
			e.tables.User[i] = main
		}
		if mosShadow {
			e.tables.MOS[i] = shadow
		} else {
			e.tables.MOS[i] = main
		}
	}

	const andyEnable = 0x80
	if e.state.ROMSEL&andyEnable != 0 && len(e.pages.ANDY) >= 1 {
		e.tables.User[8] = e.pages.ANDY[0]
		e.tables.MOS[8] = e.pages.ANDY[0]
		for i := 9; i < 12; i++ {
			slot := int(e.state.ROMSEL & 0x0F)
			e.mapOneSidewaysPage(slot, i, i-8)
		}
	} else {
		slot := int(e.state.ROMSEL & 0x0F)
		e.mapSidewaysWindow(slot, 8, false)
	}

	const hazelY = 0x10
	if acc&hazelY != 0 && len(e.pages.HAZEL) >= 2 {
		e.tables.User[12] = e.pages.HAZEL[0]
		e.tables.User[13] = e.pages.HAZEL[1]
		e.tables.MOS[12] = e.pages.HAZEL[0]
		e.tables.MOS[13] = e.pages.HAZEL[1]
	} else {
		e.tables.User[12] = e.pages.OSROM[0]
		e.tables.User[13] = e.pages.OSROM[1]
		e.tables.MOS[12] = e.pages.OSROM[0]
		e.tables.MOS[13] = e.pages.OSROM[1]
	}
	for i := 14; i < 16; i++ {
		e.tables.User[i] = e.pages.OSROM[i-12]
		e.tables.MOS[i] = e.pages.OSROM[i-12]
		e.tables.PageIsMOS[i] = true
	}
	e.tables.PageIsMOS[12], e.tables.PageIsMOS[13] = true, true
}

// mapSidewaysWindow maps the 16 KiB sideways window (big pages
// firstPage..firstPage+3) to the currently selected slot's 4 big pages,
// applying the slot's ROM mapper function.
func (e *PagingEngine) mapSidewaysWindow(slot, firstPage int, mosOnly bool) {
	for sub := 0; sub < 4; sub++ {
		e.mapOneSidewaysPage(slot, firstPage+sub, sub)
	}
}

func (e *PagingEngine) mapOneSidewaysPage(slot, tablePage, subPage int) {
	images := e.pages.Sideways[slot]
	mt := e.state.RomType[slot]
	if len(images) == 0 {
		e.tables.User[tablePage] = BigPageInvalid
		e.tables.MOS[tablePage] = BigPageInvalid
		return
	}
	offset := romMapperOffset(mt, e.state.RegionByte[slot], subPage)
	if offset < 0 || offset >= len(images) {
		offset = offset % len(images)
		if offset < 0 {
			offset += len(images)
		}
	}
	idx := images[offset]
	e.tables.User[tablePage] = idx
	e.tables.MOS[tablePage] = idx
}
