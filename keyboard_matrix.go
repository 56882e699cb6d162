// keyboard_matrix.go - the 10x8 (row x column) key matrix scanned through
// system VIA port A, with the addressable latch's keyboard-write-enable
// bit selecting scan-mode vs output-mode (spec.md §4.4, §6 "Key-state" /
// "Key-symbol" messages).

package main

// KeyboardMatrix tracks which of the 80 (row, column) positions are
// currently pressed and produces the port-A scan result the system VIA
// reads, plus the "any key pressed outside the currently-scanned column"
// IRQ condition wired to CA2.
type KeyboardMatrix struct {
	pressed [8][10]bool // [column][row], matching the real matrix wiring

	autoScanColumn byte // written to port A when keyboard-write-enable is low
}

func newKeyboardMatrix() *KeyboardMatrix { return &KeyboardMatrix{} }

// SetKey updates one matrix position (spec.md §6 Key-state message).
func (k *KeyboardMatrix) SetKey(row, column int, pressed bool) {
	if column < 0 || column >= 8 || row < 0 || row >= 10 {
		return
	}
	k.pressed[column][row] = pressed
}

// IsPressed reports a single key's current state (round-trip invariant:
// spec.md §8 "A key press followed by a key release returns the matrix
// row to its pre-press state" - callers diff against this).
func (k *KeyboardMatrix) IsPressed(row, column int) bool {
	if column < 0 || column >= 8 || row < 0 || row >= 10 {
		return false
	}
	return k.pressed[column][row]
}

// ReadPortA returns the scan result for whatever (row, column) the latch's
// screen-base-adjacent bits currently select, when keyboard-write-enable
// is deasserted (scan mode): bit 7 mirrors "any key other than the one
// being addressed is down", used to drive CA2 (spec.md §4.4 "C2 input <-
// keyboard IRQ").
func (k *KeyboardMatrix) ReadPortA(portAWritten byte, writeEnabled bool) byte {
	column := int(portAWritten & 0x0F)
	row := int((portAWritten >> 4) & 0x07)
	if writeEnabled {
		return portAWritten
	}
	result := portAWritten & 0x7F
	if column < 8 && k.pressed[column][row] {
		result |= 0x80
	}
	return result
}

// AnyKeyDown reports whether any matrix position (other than row 0, which
// is reserved for SHIFT/CTRL-style modifiers on some layouts) is pressed -
// the condition the system VIA's CA2 keyboard-IRQ line tracks continuously
// regardless of the currently scanned column.
func (k *KeyboardMatrix) AnyKeyDown() bool {
	for col := 0; col < 8; col++ {
		for row := 1; row < 10; row++ {
			if k.pressed[col][row] {
				return true
			}
		}
	}
	return false
}
