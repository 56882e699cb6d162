// machine_orchestrator.go - the top-level tick loop binding every
// peripheral to the CPU's bus contract (spec.md §4.7 "Orchestrator").
//
// Grounded on the teacher's main emulation loop shape (cpu.Tick() driven
// from a for-loop in cmd/ie32to64, peripherals polled once per host
// frame) generalised to spec.md's per-cycle "tick CPU, resolve bus pins,
// tick every peripheral once, call video pipeline, call sound generator"
// contract and its message-queue-driven suspension model.

package main

import "time"

const runCyclesPerIteration = 2000 // spec.md §4.7 "a hard cap of RUN_CYCLES (~1ms of emulated time)" at 2 MHz

// Machine owns every peripheral and the buses connecting them, and
// implements the single-emulation-thread main loop (spec.md §5 "Threads").
type Machine struct {
	cfg *Config

	cpu    *CPU6502
	bus    *MemoryBus
	pages  *BigPageTable
	paging *PagingEngine

	crtc *CRTC6845
	ula  *VideoULA

	systemVIA *SystemVIA
	userVIA   *UserVIA

	sound *SN76489
	adc   *ADC

	floppy  [2]*WD1770
	discs   [2]*DirectDiscImage

	videoRing *VideoRingBuffer
	soundRing *SoundRingBuffer

	queue *MessageQueue

	paste *PasteController
	copy  *CopyController

	cycles uint64

	lastCPURead byte // the byte serviceBus read this cycle, fed to the next Tick() call

	soundCycleAccum int // counts cycles toward the next 16-cycle sound tick

	speedLimit bool
	speedScale float64
	maxSoundUnitsPerIter int

	timeline *Timeline
	tracer   *Tracer

	halted bool
	stepRequested bool
}

// NewMachine builds a complete machine for the given configuration
// (spec.md §3 "Ownership summary").
func NewMachine(cfg *Config) *Machine {
	m := &Machine{
		cfg:        cfg,
		queue:      newMessageQueue(),
		paste:      newPasteController(),
		copy:       newCopyController(),
		speedScale: 1.0,
		videoRing:  NewVideoRingBuffer(4096),
		soundRing:  NewSoundRingBuffer(4096),
	}

	m.pages = buildBigPageTable(cfg)
	m.paging = newPagingEngine(cfg.Model, m.pages)
	m.bus = newMemoryBus(m.pages, m.paging)

	variant := VariantNMOSDefined
	if cfg.Model == ModelMaster128 || cfg.Model == ModelMasterCompact {
		variant = VariantCMOS65C02
	}
	m.cpu = NewCPU6502(m.bus, variant)

	var rtc *RTCChip
	if cfg.Model == ModelMaster128 || cfg.Model == ModelMasterCompact {
		rtc = newRTCChip(cfg.NVRAMPath)
	}
	m.sound = newSN76489()
	m.systemVIA = newSystemVIA(m.cpu, m.sound, rtc)
	m.userVIA = newUserVIA(m.cpu, cfg.Model == ModelMasterCompact)
	m.adc = newADC()

	m.crtc = newCRTC6845()
	m.ula = newVideoULA(m.fetchDisplayByte)

	for i := range m.floppy {
		m.floppy[i] = newWD1770()
		wd := m.floppy[i]
		// DRQ and INTRQ share the same model-specific glue line (spec.md
		// §4.6 "These drive a model-specific glue (NMI on B, IRQ on
		// B+/Master)") — either pin asserted drives the line high.
		drqLine, intrqLine := false, false
		assertGlue := func() {
			asserted := drqLine || intrqLine
			if cfg.Model == ModelB {
				m.cpu.SetDeviceNMI(irqSourceWD1770, asserted)
			} else {
				m.cpu.SetDeviceIRQ(irqSourceWD1770, asserted)
			}
		}
		wd.OnDRQChanged = func(asserted bool) {
			drqLine = asserted
			assertGlue()
		}
		wd.OnINTRQChanged = func(asserted bool) {
			intrqLine = asserted
			assertGlue()
		}
	}

	m.mapMMIO()

	m.bus.romselAddr = 0xFE30
	if cfg.Model == ModelMaster128 || cfg.Model == ModelMasterCompact {
		m.bus.acccconAddr = 0xFE34
	} else if cfg.Model == ModelBPlus {
		m.bus.acccconAddr = 0xFE34
	}

	m.cpu.Reset()
	return m
}

// mapMMIO registers every SHEILA-page peripheral (spec.md §4.2, §4.4-4.6).
func (m *Machine) mapMMIO() {
	m.bus.MapMMIO(0xFE00, 0xFE07, func(a uint16) byte { return m.crtc.ReadRegister() },
		func(a uint16, v byte) {
			if a&1 == 0 {
				m.crtc.SelectRegister(v)
			} else {
				m.crtc.WriteRegister(v)
			}
		})
	m.bus.MapMMIO(0xFE20, 0xFE20, func(uint16) byte { return 0xFF },
		func(a uint16, v byte) { m.ula.WriteControl(v) })
	m.bus.MapMMIO(0xFE21, 0xFE21, func(uint16) byte { return 0xFF },
		func(a uint16, v byte) { m.ula.WritePalette(v) })
	m.bus.MapMMIO(0xFE40, 0xFE4F, func(a uint16) byte { return m.systemVIA.ReadRegister(byte(a & 0x0F)) },
		func(a uint16, v byte) { m.systemVIA.WriteRegister(byte(a&0x0F), v) })
	m.bus.MapMMIO(0xFE60, 0xFE6F, func(a uint16) byte { return m.userVIA.ReadRegister(byte(a & 0x0F)) },
		func(a uint16, v byte) { m.userVIA.WriteRegister(byte(a&0x0F), v) })
	m.bus.MapMMIO(0xFE80, 0xFE83, func(a uint16) byte {
		switch a & 0x03 {
		case 0:
			return m.floppy[0].ReadStatus()
		case 1:
			return m.floppy[0].ReadTrack()
		case 2:
			return m.floppy[0].ReadSector()
		default:
			return m.floppy[0].ReadData()
		}
	}, func(a uint16, v byte) {
		switch a & 0x03 {
		case 0:
			m.floppy[0].WriteCommand(v)
		case 1:
			m.floppy[0].WriteTrack(v)
		case 2:
			m.floppy[0].WriteSector(v)
		default:
			m.floppy[0].WriteData(v)
		}
	})
}

// fetchDisplayByte is the ULA's memory-fetch hook, honouring the current
// paging tables' shadow/main selection (spec.md §4.3.2).
func (m *Machine) fetchDisplayByte(addr uint16) byte {
	return m.bus.Read(addr)
}

// PostMessage enqueues a host message (spec.md §6).
func (m *Machine) PostMessage(msg Message) { m.queue.Post(msg) }

// RunIteration executes one orchestrator iteration: drain messages, then
// advance up to runCyclesPerIteration cycles (or fewer, capped by a
// replay's next scheduled event or a full ring) — spec.md §4.7. The
// timing message's MaxSoundUnits value is stored but does not cap the
// budget.
func (m *Machine) RunIteration() {
	for _, msg := range m.queue.DrainAll() {
		m.handleMessage(msg)
	}

	if m.halted && !m.stepRequested {
		return
	}

	budget := runCyclesPerIteration
	if m.timeline != nil && m.timeline.Mode() == timelineReplay {
		if next, ok := m.timeline.NextEventCycle(); ok && next-m.cycles < uint64(budget) {
			budget = int(next - m.cycles)
		}
	}

	start := time.Now()
	for i := 0; i < budget; i++ {
		m.tickOneCycle()
		if m.halted {
			m.stepRequested = false
			break
		}
		if m.videoRing.Used() >= m.videoRing.capacityUsedLimit() || m.soundRing.Used() >= m.soundRing.capacityUsedLimit() {
			break // spec.md §4.7: "If either ring is full, yield and re-check messages."
		}
	}

	if m.speedLimit {
		m.paceRealTime(start, budget)
	}
}

// capacityUsedLimit lets RunIteration yield slightly before the ring is
// truly full, leaving headroom for the producer's next single unit.
func (r *VideoRingBuffer) capacityUsedLimit() int { return int(r.capacity) - 1 }
func (r *SoundRingBuffer) capacityUsedLimit() int { return int(r.capacity) - 1 }

func (m *Machine) paceRealTime(start time.Time, cyclesRun int) {
	const hostCyclesPerSecond = 2_000_000
	wantDuration := time.Duration(float64(cyclesRun) / (hostCyclesPerSecond * m.speedScale) * float64(time.Second))
	if elapsed := time.Since(start); elapsed < wantDuration {
		time.Sleep(wantDuration - elapsed)
	}
}

// tickOneCycle advances every component by exactly one machine cycle
// (spec.md §4.7 step 3).
func (m *Machine) tickOneCycle() {
	m.serviceBus()
	m.cpu.Tick(m.lastCPURead)

	m.systemVIA.Tick()
	m.userVIA.Tick()
	for _, fd := range m.floppy {
		fd.Tick()
	}
	if m.cfg.UpdateFlags.has(UpdateFlagADC) {
		m.adc.Tick()
	}

	m.tickVideo()
	m.tickSound()

	m.cycles++
	if m.timeline != nil {
		m.timeline.AdvanceTo(m.cycles)
	}
}

func (m *Machine) serviceBus() {
	if m.cpu.ReadPin {
		m.lastCPURead = m.bus.Read(m.cpu.AddrBus)
	} else {
		m.bus.Write(m.cpu.AddrBus, m.cpu.DataBus)
	}
}

func (m *Machine) tickVideo() {
	out := m.crtc.Tick()
	var unit VideoUnit
	switch {
	case out.HSync:
		unit = VideoUnit{Kind: videoUnitHSync}
	case out.VSync:
		unit = VideoUnit{Kind: videoUnitVSync}
	case out.DispEn:
		b := m.ula.FetchByte(out.Addr)
		if m.ula.TeletextMode() {
			unit = VideoUnit{Kind: videoUnitTeletext, DataA: b}
		} else {
			unit = m.ula.Serialise(b)
		}
	default:
		return
	}
	m.videoRing.TryPush(unit)
}

func (m *Machine) tickSound() {
	m.soundCycleAccum++
	if m.soundCycleAccum < 16 { // spec.md §8 testable property 11
		return
	}
	m.soundCycleAccum = 0
	m.sound.Tick()
	mix := m.sound.Mix()
	u := SoundUnit{}
	for i, v := range mix {
		u.Channels[i] = int8(int(v) - 128)
	}
	m.soundRing.TryPush(u)
}

// VideoRing / SoundRing expose the ring buffers to the host consumer
// (spec.md §6 "Core -> host outputs").
func (m *Machine) VideoRing() *VideoRingBuffer { return m.videoRing }
func (m *Machine) SoundRing() *SoundRingBuffer { return m.soundRing }
