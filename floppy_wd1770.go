// floppy_wd1770.go - WD1770 floppy disc controller at command-completion
// granularity (spec.md §4.6).
//
// Each command is a small state machine with a microsecond timer
// (modelled here in emulated cycles, at 2 MHz so 1 us ~= 2 cycles);
// between transitions the controller waits the realistic delay (step
// rate, head-settle, index pulses), matching the teacher's
// per-peripheral Tick() idiom used throughout this engine.

package main

// WD1770 status register bits.
const (
	wd1770StatusBusy        = 0x01
	wd1770StatusDRQorIndex  = 0x02 // type I: index pulse; type II/III: DRQ
	wd1770StatusTrack0orLost = 0x04
	wd1770StatusCRCError    = 0x08
	wd1770StatusSeekOrRNF   = 0x10
	wd1770StatusWriteProtect = 0x40
	wd1770StatusMotorOn     = 0x80
)

type wd1770Command byte

const (
	cmdNone wd1770Command = iota
	cmdRestore
	cmdSeek
	cmdStep
	cmdStepIn
	cmdStepOut
	cmdReadSector
	cmdWriteSector
	cmdReadAddress
	cmdReadTrack
	cmdWriteTrack
	cmdForceInterrupt
)

const cyclesPerMicrosecond = 2 // 2 MHz WD1770 clock

// WD1770 is the floppy controller; DiscAdapter is injected per spec.md
// §4.6 so the controller never knows about any particular image format.
type WD1770 struct {
	disc DiscAdapter

	command      wd1770Command
	status       byte
	track, sector, data byte

	delayRemaining int // cycles until the next state transition
	stepRate       int // cycles per step, from the command's R bits

	phase          int // command-specific sub-state
	sectorByteIdx  int

	drq, intrq bool

	// IRQ/NMI glue differs by model (spec.md §4.6 "NMI on B, IRQ on
	// B+/Master"); the machine wires whichever line applies.
	OnDRQChanged   func(bool)
	OnINTRQChanged func(bool)
}

func newWD1770() *WD1770 { return &WD1770{status: wd1770StatusTrack0orLost} }

// SetDisc installs (or clears, with nil) the backing adapter for the
// currently-inserted disc (spec.md §6 "Load-disc"/"Eject-disc").
func (w *WD1770) SetDisc(d DiscAdapter) { w.disc = d }

// WriteCommand starts a new command (spec.md §4.6 command set).
func (w *WD1770) WriteCommand(value byte) {
	if w.status&wd1770StatusBusy != 0 {
		return // real hardware ignores a new command while busy
	}
	w.status |= wd1770StatusBusy
	w.phase = 0
	switch {
	case value&0xF0 == 0x00:
		w.command, w.stepRate = cmdRestore, stepRateTable[value&0x03]
	case value&0xF0 == 0x10:
		w.command, w.stepRate = cmdSeek, stepRateTable[value&0x03]
	case value&0xE0 == 0x20:
		w.command, w.stepRate = cmdStep, stepRateTable[value&0x03]
	case value&0xE0 == 0x40:
		w.command, w.stepRate = cmdStepIn, stepRateTable[value&0x03]
	case value&0xE0 == 0x60:
		w.command, w.stepRate = cmdStepOut, stepRateTable[value&0x03]
	case value&0xE0 == 0x80:
		w.command = cmdReadSector
	case value&0xE0 == 0xA0:
		w.command = cmdWriteSector
	case value&0xF0 == 0xC0:
		w.command = cmdReadAddress
	case value&0xF0 == 0xE0:
		w.command = cmdReadTrack
	case value&0xF0 == 0xF0:
		w.command = cmdWriteTrack
	case value&0xF0 == 0xD0:
		w.command = cmdForceInterrupt
		w.finishCommand(false)
		return
	default:
		w.finishCommand(false)
		return
	}
	w.delayRemaining = w.stepRate * cyclesPerMicrosecond
}

func (w *WD1770) WriteTrack(v byte)  { w.track = v }
func (w *WD1770) WriteSector(v byte) { w.sector = v }
func (w *WD1770) WriteData(v byte) {
	w.data = v
	w.setDRQ(false)
}
func (w *WD1770) ReadData() byte {
	w.setDRQ(false)
	return w.data
}
func (w *WD1770) ReadStatus() byte {
	w.setINTRQ(false)
	return w.status
}
func (w *WD1770) ReadTrack() byte  { return w.track }
func (w *WD1770) ReadSector() byte { return w.sector }

var stepRateTable = [4]int{6000, 12000, 20000, 30000} // microseconds, type-I R bits

// Tick advances the controller by one system cycle.
func (w *WD1770) Tick() {
	if w.status&wd1770StatusBusy == 0 {
		return
	}
	if w.delayRemaining > 0 {
		w.delayRemaining--
		return
	}
	switch w.command {
	case cmdRestore:
		w.stepTrack(-1)
	case cmdSeek:
		if w.track != w.data {
			dir := 1
			if w.data < w.track {
				dir = -1
			}
			w.stepTrack(dir)
			w.delayRemaining = w.stepRate * cyclesPerMicrosecond
			return
		}
		w.finishCommand(false)
	case cmdStep:
		w.finishCommand(false)
	case cmdStepIn:
		w.stepTrack(1)
		w.finishCommand(false)
	case cmdStepOut:
		w.stepTrack(-1)
		w.finishCommand(false)
	case cmdReadSector:
		w.tickReadSector()
	case cmdWriteSector:
		w.tickWriteSector()
	case cmdReadAddress:
		w.tickReadAddress()
	default:
		w.finishCommand(false)
	}
}

func (w *WD1770) stepTrack(dir int) {
	if w.disc == nil {
		return
	}
	if dir > 0 {
		w.disc.StepIn(w.stepRate)
		w.track++
	} else {
		if w.disc.IsTrack0() {
			w.track = 0 // spec.md §8 "attempting to step past track 0 stops at 0"
			return
		}
		w.disc.StepOut(w.stepRate)
		if w.track > 0 {
			w.track--
		}
	}
}

func (w *WD1770) tickReadSector() {
	if w.phase == 0 {
		w.sectorByteIdx = 0
		w.phase = 1
	}
	if w.drq {
		return // previous byte not yet consumed by the host
	}
	if w.sectorByteIdx >= directImageSectorSize {
		w.finishCommand(false)
		return
	}
	if w.disc == nil {
		w.status |= wd1770StatusSeekOrRNF
		w.finishCommand(true)
		return
	}
	v, ok := w.disc.GetByte(int(w.sector), w.sectorByteIdx)
	if !ok {
		w.status |= wd1770StatusSeekOrRNF
		w.finishCommand(true)
		return
	}
	w.data = v
	w.sectorByteIdx++
	w.setDRQ(true)
}

func (w *WD1770) tickWriteSector() {
	if w.phase == 0 {
		w.sectorByteIdx = 0
		w.phase = 1
		w.setDRQ(true)
		return
	}
	if w.drq {
		return // waiting for the host to supply the next byte
	}
	if w.sectorByteIdx >= directImageSectorSize {
		w.finishCommand(false)
		return
	}
	if w.disc == nil || !w.disc.SetByte(int(w.sector), w.sectorByteIdx, w.data) {
		w.status |= wd1770StatusWriteProtect
		w.finishCommand(true)
		return
	}
	w.sectorByteIdx++
	if w.sectorByteIdx < directImageSectorSize {
		w.setDRQ(true)
	}
}

func (w *WD1770) tickReadAddress() {
	if w.disc == nil {
		w.finishCommand(true)
		return
	}
	track, side, size, ok := w.disc.GetSectorDetails(int(w.sector), false)
	if !ok {
		w.status |= wd1770StatusSeekOrRNF
		w.finishCommand(true)
		return
	}
	w.track = byte(track)
	w.sector = byte(side)
	w.data = byte(size)
	w.finishCommand(false)
}

func (w *WD1770) finishCommand(errored bool) {
	w.status &^= wd1770StatusBusy
	if errored {
		w.status |= wd1770StatusSeekOrRNF
	}
	w.command = cmdNone
	w.setDRQ(false)
	w.setINTRQ(true)
}

func (w *WD1770) setDRQ(v bool) {
	if w.drq == v {
		return
	}
	w.drq = v
	if w.OnDRQChanged != nil {
		w.OnDRQChanged(v)
	}
}

func (w *WD1770) setINTRQ(v bool) {
	if w.intrq == v {
		return
	}
	w.intrq = v
	if w.OnINTRQChanged != nil {
		w.OnINTRQChanged(v)
	}
}
