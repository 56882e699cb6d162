// via_user.go - user VIA wiring (spec.md §4.4 "User VIA wiring"): parallel
// printer on port A, and on the Master Compact mouse X motion pulsed onto
// CB1. Port B has no peripheral wired (no user-port device, no EEPROM).

package main

// UserVIA bundles the VIA6522 core with the printer/user-port peripherals
// port A/B are wired to.
type UserVIA struct {
	via *VIA6522

	printerEnabled bool
	printerBuffer  []byte

	// Master Compact wiring: CB1 carries mouse X motion instead of a
	// printer acknowledge. No EEPROM bus is driven from port B.
	isCompact bool
	mouseDX   int
}

func newUserVIA(cpu *CPU6502, isCompact bool) *UserVIA {
	u := &UserVIA{via: newVIA6522("user", cpu, irqSourceUserVIA), isCompact: isCompact}
	u.via.OnWritePortA = u.onWritePortA
	u.via.ReadPortA = func() byte { return 0xFF }
	return u
}

func (u *UserVIA) onWritePortA(value byte) {
	if !u.printerEnabled {
		return
	}
	u.printerBuffer = append(u.printerBuffer, value)
	u.via.StrobeC2(true) // printer ACK handshake completes via PCR-pulse CA2
}

// SetPrinterEnabled / ResetPrinterBuffer implement the matching §6 host
// messages.
func (u *UserVIA) SetPrinterEnabled(enabled bool) { u.printerEnabled = enabled }
func (u *UserVIA) ResetPrinterBuffer()             { u.printerBuffer = u.printerBuffer[:0] }
func (u *UserVIA) PrinterBuffer() []byte           { return u.printerBuffer }

// NotifyMouseMotion feeds a Mouse-motion message's delta into CB1 pulses
// on the Compact (spec.md §6 "Mouse-motion"); on other models this is a
// no-op since the user port has no mouse wiring.
func (u *UserVIA) NotifyMouseMotion(dx, dy int) {
	if !u.isCompact {
		return
	}
	u.mouseDX += dx
	for ; u.mouseDX > 0; u.mouseDX-- {
		u.via.SetCB1(true)
		u.via.SetCB1(false)
	}
}

func (u *UserVIA) Tick() { u.via.Tick() }

func (u *UserVIA) ReadRegister(reg byte) byte { return u.via.ReadRegister(reg) }
func (u *UserVIA) WriteRegister(reg, v byte)  { u.via.WriteRegister(reg, v) }
