// message_dispatch.go - the orchestrator's per-message prepare/handle
// step (spec.md §4.7 step 1, §6 "Host -> core messages", §7 "Message
// rejected").

package main

// Payload types for the messages that carry more than a bare scalar.
type KeyStatePayload struct {
	Row, Column int
	Pressed     bool
}

type AnalogChannelPayload struct {
	Channel int
	Value   uint16
}

type MouseMotionPayload struct{ DX, DY int }

type HardResetPayload struct {
	Boot, Run bool
	NewConfig *Config
	NVRAM     []byte
}

type LoadDiscPayload struct {
	Drive   int
	Image   []byte
	Verbose bool
	WriteProtected bool
}

type WriteProtectPayload struct {
	Drive   int
	Enabled bool
}

type StartReplayPayload struct{ Snapshot *MachineSnapshot }

type SaveStatePayload struct {
	Verbose    bool
	OnSnapshot func(*MachineSnapshot)
}

type StartCopyPayload struct {
	BASICFlag bool
	OnStop    func([]byte)
}

type DebugSetBytePayload struct {
	Addr  uint16
	Value byte
}

type TimingPayload struct{ MaxSoundUnits int }

type PrinterEnabledPayload struct{ Enabled bool }

// handleMessage runs a message's prepare step (possibly rejecting it for
// replay-mode constraints, spec.md §4.7 step 1) and its handle step, then
// fires the completion callback and records the message for replay if
// recording is active.
func (m *Machine) handleMessage(msg Message) {
	if m.timeline != nil && m.timeline.Mode() == timelineReplay && msg.Kind != MsgStopReplay && msg.Kind != MsgStop {
		msg.complete(false, "rejected: replay in progress")
		return
	}

	ok, reason := m.applyMessage(msg)
	msg.complete(ok, reason)
	if ok && m.timeline != nil {
		m.timeline.RecordMessage(m.cycles, msg)
	}
}

func (m *Machine) applyMessage(msg Message) (bool, string) {
	switch msg.Kind {
	case MsgStop:
		m.halted = true
		return true, ""

	case MsgKeyState:
		p := msg.Payload.(KeyStatePayload)
		m.systemVIA.keys.SetKey(p.Row, p.Column, p.Pressed)
		return true, ""

	case MsgKeySymbol:
		// Symbol->matrix translation lives at the host layer per spec.md
		// §6; the core only ever receives the resolved Key-state.
		return false, "unsupported: translate to Key-state before posting"

	case MsgJoystickButton:
		p := msg.Payload.(int)
		m.adc.SetButton(p, true)
		return true, ""

	case MsgAnalogChannel:
		p := msg.Payload.(AnalogChannelPayload)
		m.adc.SetChannel(p.Channel, p.Value)
		return true, ""

	case MsgDigitalJoystick:
		return true, "" // no ADC-independent digital joystick wiring in this machine configuration

	case MsgMouseMotion:
		p := msg.Payload.(MouseMotionPayload)
		m.userVIA.NotifyMouseMotion(p.DX, p.DY)
		return true, ""

	case MsgMouseButtons:
		return true, ""

	case MsgHardReset:
		p := msg.Payload.(HardResetPayload)
		if p.NewConfig != nil {
			*m.cfg = *p.NewConfig
		}
		m.cpu.Reset()
		m.cycles = 0
		return true, ""

	case MsgSpeedLimit:
		m.speedLimit = msg.Payload.(bool)
		return true, ""

	case MsgSpeedScale:
		m.speedScale = msg.Payload.(float64)
		return true, ""

	case MsgLoadDisc:
		p := msg.Payload.(LoadDiscPayload)
		if p.Drive < 0 || p.Drive >= len(m.floppy) {
			return false, "invalid drive"
		}
		img := NewDirectDiscImage(p.Image, p.WriteProtected)
		m.discs[p.Drive] = img
		m.floppy[p.Drive].SetDisc(img)
		return true, ""

	case MsgEjectDisc:
		p := msg.Payload.(int)
		if p < 0 || p >= len(m.floppy) {
			return false, "invalid drive"
		}
		m.discs[p] = nil
		m.floppy[p].SetDisc(nil)
		return true, ""

	case MsgWriteProtect:
		p := msg.Payload.(WriteProtectPayload)
		if m.discs[p.Drive] != nil {
			m.discs[p.Drive].writeProtected = p.Enabled
		}
		return true, ""

	case MsgLoadState:
		p := msg.Payload.(*MachineSnapshot)
		if err := restoreSnapshot(m, p); err != nil {
			return false, err.Error()
		}
		return true, ""

	case MsgSaveState:
		p := msg.Payload.(SaveStatePayload)
		snap := captureSnapshot(m)
		if p.OnSnapshot != nil {
			p.OnSnapshot(snap)
		}
		return true, ""

	case MsgStartRecording:
		if m.timeline == nil {
			m.timeline = newTimeline(m)
		}
		m.timeline.StartRecording(captureSnapshot(m))
		return true, ""

	case MsgStopRecording:
		if m.timeline != nil {
			m.timeline.StopRecording()
		}
		return true, ""

	case MsgClearRecording:
		if m.timeline != nil {
			m.timeline.ClearRecording()
		}
		return true, ""

	case MsgStartReplay:
		p := msg.Payload.(StartReplayPayload)
		if m.timeline == nil {
			return false, "no recorded timeline"
		}
		if err := restoreSnapshot(m, p.Snapshot); err != nil {
			return false, err.Error()
		}
		if !m.timeline.StartReplay(p.Snapshot.Cycles) {
			return false, "snapshot not found in timeline"
		}
		m.queue.DiscardAll("replay started")
		return true, ""

	case MsgStopReplay:
		if m.timeline != nil {
			m.timeline.StopReplay()
		}
		return true, ""

	case MsgStartPaste:
		m.paste.StartPaste(msg.Payload.(string))
		return true, ""

	case MsgStopPaste:
		m.paste.StopPaste()
		return true, ""

	case MsgStartCopy:
		p := msg.Payload.(StartCopyPayload)
		m.copy.StartCopy(p.BASICFlag, p.OnStop)
		return true, ""

	case MsgStopCopy:
		m.copy.StopCopy()
		return true, ""

	case MsgStartTrace, MsgStopTrace, MsgCancelTrace:
		return m.applyTraceMessage(msg)

	case MsgDebugSetByte:
		p := msg.Payload.(DebugSetBytePayload)
		m.bus.Write(p.Addr, p.Value)
		return true, ""

	case MsgDebugSetBytes:
		p := msg.Payload.(DebugSetBytePayload) // reused: Addr is the start address, callers loop
		m.bus.Write(p.Addr, p.Value)
		return true, ""

	case MsgDebugSetFlags:
		m.cpu.SR = msg.Payload.(byte)
		return true, ""

	case MsgDebugHalt:
		m.halted = true
		return true, ""

	case MsgDebugStep:
		m.halted = true
		m.stepRequested = true
		return true, ""

	case MsgDebugRun:
		m.halted = false
		return true, ""

	case MsgTiming:
		p := msg.Payload.(TimingPayload)
		m.maxSoundUnitsPerIter = p.MaxSoundUnits
		return true, ""

	case MsgBeebLinkResponse:
		return true, "BeebLink tube wiring is out of this machine's built configuration"

	case MsgSetPrinterEnabled:
		m.userVIA.SetPrinterEnabled(msg.Payload.(PrinterEnabledPayload).Enabled)
		return true, ""

	case MsgResetPrinterBuffer:
		m.userVIA.ResetPrinterBuffer()
		return true, ""

	default:
		return false, "unknown message kind"
	}
}
