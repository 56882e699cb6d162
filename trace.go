// trace.go - compact in-memory event trace (spec.md §6 "Trace log", §7
// "Trace buffer exhaustion").
//
// Grounded on the teacher's debug_cpu_6502.go breakpoint-hit channel idiom,
// generalised into a fixed-capacity slice of trace entries (recording
// stops when it is full) rather than a blocking channel, since trace
// entries are drained by polling rather than awaited one at a time.

package main

// TraceEntry is one compact recorded event: an instruction boundary or an
// IRQ/NMI edge, depending on the active trace conditions. The MMIOAccess
// condition is accepted but nothing records MMIO accesses.
type TraceEntry struct {
	Cycle uint64
	PC    uint16
	Kind  string
	A, X, Y, SR byte
}

// TraceConditions selects which event kinds are captured (spec.md §6
// "Start-trace: conditions, byte-limit").
type TraceConditions struct {
	Instructions bool
	Interrupts   bool
	MMIOAccess   bool
}

// Tracer is the core's trace subsystem: a fixed-capacity buffer that stops
// recording (rather than failing) once exhausted (spec.md §7).
type Tracer struct {
	active     bool
	conditions TraceConditions
	limit      int
	entries    []TraceEntry
	exhausted  bool
}

func newTracer() *Tracer { return &Tracer{} }

func (t *Tracer) Start(cond TraceConditions, byteLimit int) {
	t.active = true
	t.conditions = cond
	t.limit = byteLimit / 16 // a TraceEntry is treated as a fixed 16-byte record for budgeting
	if t.limit <= 0 {
		t.limit = 1024
	}
	t.entries = t.entries[:0]
	t.exhausted = false
}

func (t *Tracer) Stop() { t.active = false }

func (t *Tracer) Cancel() {
	t.active = false
	t.entries = nil
	t.exhausted = false
}

// RecordInstruction appends an instruction-boundary trace entry if
// instruction tracing is enabled and the buffer has room.
func (t *Tracer) RecordInstruction(cycle uint64, cpu *CPU6502) {
	if !t.active || !t.conditions.Instructions {
		return
	}
	t.append(TraceEntry{Cycle: cycle, PC: cpu.PC, Kind: "instr", A: cpu.A, X: cpu.X, Y: cpu.Y, SR: cpu.SR})
}

// RecordInterrupt appends an IRQ/NMI edge trace entry.
func (t *Tracer) RecordInterrupt(cycle uint64, kind string) {
	if !t.active || !t.conditions.Interrupts {
		return
	}
	t.append(TraceEntry{Cycle: cycle, Kind: kind})
}

func (t *Tracer) append(e TraceEntry) {
	if len(t.entries) >= t.limit {
		t.exhausted = true // spec.md §7: "the trace simply stops recording; the core continues"
		return
	}
	t.entries = append(t.entries, e)
}

// Entries returns the captured trace so far, for the host to drain.
func (t *Tracer) Entries() []TraceEntry { return t.entries }

func (t *Tracer) Exhausted() bool { return t.exhausted }

// applyTraceMessage handles Start-trace/Stop-trace/Cancel-trace.
func (m *Machine) applyTraceMessage(msg Message) (bool, string) {
	if m.tracer == nil {
		m.tracer = newTracer()
	}
	switch msg.Kind {
	case MsgStartTrace:
		p, _ := msg.Payload.(TraceStartPayload)
		m.tracer.Start(p.Conditions, p.ByteLimit)
	case MsgStopTrace:
		m.tracer.Stop()
	case MsgCancelTrace:
		m.tracer.Cancel()
	}
	return true, ""
}

// TraceStartPayload carries Start-trace's payload (spec.md §6).
type TraceStartPayload struct {
	Conditions TraceConditions
	ByteLimit  int
}
