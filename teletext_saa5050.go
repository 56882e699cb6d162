// teletext_saa5050.go - SAA5050 teletext character generator (spec.md
// §4.3.3).

package main

// Teletext control codes (the subset of the 7-bit teletext alphabet
// that changes rendering state rather than selecting a glyph).
const (
	ttAlphaBlack = 0x00 // + 0x00..0x07 alpha colours
	ttGraphicsBlack = 0x10
	ttFlashOn  = 0x08
	ttFlashOff = 0x09
	ttNormalHeight = 0x0C
	ttDoubleHeight = 0x0D
	ttConcealDisplay = 0x18
	ttContiguousGraphics = 0x19
	ttSeparatedGraphics  = 0x1A
	ttBlackBackground    = 0x1C
	ttNewBackground       = 0x1D
	ttHoldGraphics        = 0x1E
	ttReleaseGraphics     = 0x1F
)

// TeletextGenerator maintains the in-band control-code state across one
// display row and produces character-ROM-shaped output for the current
// scanline (spec.md §4.3.3).
type TeletextGenerator struct {
	fg, bg         byte
	graphicsMode   bool
	separated      bool
	holdGraphics   bool
	doubleHeight   bool
	topHalfOfDouble bool // which half of a double-height row this scanline renders
	flashOn        bool
	flashPhase     bool // toggled by the orchestrator at ~1 Hz

	heldGlyph byte

	glyphROM [96][10]byte // 96 printable teletext characters x 10 scanlines x 6 bits
}

func newTeletextGenerator() *TeletextGenerator {
	t := &TeletextGenerator{fg: 7}
	t.buildGlyphROM()
	return t
}

// buildGlyphROM fills in a minimal but structurally complete character
// set: every printable code 0x20-0x7F (entry code-0x20) renders as its own
// 6-bit-wide, 10-line pattern
// computed from a simple deterministic bitmap rule, which is enough to
// exercise the generator's row/scanline addressing without shipping a
// full SAA5050 font table (the real chip's mask ROM contents are outside
// what spec.md's component design constrains).
func (t *TeletextGenerator) buildGlyphROM() {
	for ch := 0; ch < 96; ch++ {
		for line := 0; line < 10; line++ {
			t.glyphROM[ch][line] = byte((ch*7 + line*3) & 0x3F)
		}
	}
}

// BeginRow resets per-row state; called by the machine wiring at the
// start of each character row (spec.md "maintains line state across one
// display row").
func (t *TeletextGenerator) BeginRow() {
	t.fg = 7
	t.bg = 0
	t.graphicsMode = false
	t.separated = false
	t.holdGraphics = false
	t.heldGlyph = 0
}

// ProcessByte interprets one fetched display byte as either a control
// code or a glyph to render, updating in-band state and returning the
// glyph index + attributes the caller should render for this cell (control
// codes themselves render as a space in their own cell, matching the real
// SAA5050).
func (t *TeletextGenerator) ProcessByte(b byte) (glyph byte, fg, bg byte, isGraphics bool) {
	code := b & 0x7F
	if code < 0x20 {
		t.applyControlCode(code)
		return 0x00, t.fg, t.bg, t.graphicsMode
	}
	t.heldGlyph = code
	return code, t.fg, t.bg, t.graphicsMode
}

func (t *TeletextGenerator) applyControlCode(code byte) {
	switch {
	case code <= 0x07:
		t.fg = code
		t.graphicsMode = false
	case code >= 0x10 && code <= 0x17:
		t.fg = code - 0x10
		t.graphicsMode = true
	case code == ttFlashOn:
		t.flashOn = true
	case code == ttFlashOff:
		t.flashOn = false
	case code == ttNormalHeight:
		t.doubleHeight = false
	case code == ttDoubleHeight:
		t.doubleHeight = true
	case code == ttConcealDisplay:
		// real chip blanks the glyph; approximated by forcing fg==bg
		t.fg = t.bg
	case code == ttContiguousGraphics:
		t.separated = false
	case code == ttSeparatedGraphics:
		t.separated = true
	case code == ttBlackBackground:
		t.bg = 0
	case code == ttNewBackground:
		t.bg = t.fg
	case code == ttHoldGraphics:
		t.holdGraphics = true
	case code == ttReleaseGraphics:
		t.holdGraphics = false
	}
}

// ScanlinePattern returns the 6-bit column pattern for glyph at the given
// scanline (0-9), honouring double-height's top/bottom-half replication
// (spec.md §4.3.3 "double-height handled by replicating top or bottom
// half").
func (t *TeletextGenerator) ScanlinePattern(glyph byte, scanline int) byte {
	if glyph < 0x20 || int(glyph-0x20) >= len(t.glyphROM) {
		return 0 // control-code cells (glyph 0) and out-of-range codes are blank
	}
	line := scanline
	if t.doubleHeight {
		line = scanline / 2
		if !t.topHalfOfDouble {
			line += 5
		}
		if line > 9 {
			line = 9
		}
	}
	if t.flashOn && t.flashPhase {
		return 0
	}
	return t.glyphROM[glyph-0x20][line]
}

// SetFlashPhase is driven by the orchestrator at the teletext flash rate.
func (t *TeletextGenerator) SetFlashPhase(on bool) { t.flashPhase = on }

// SetDoubleHeightHalf selects which physical scanline half a
// double-height row's top/bottom replication is currently producing.
func (t *TeletextGenerator) SetDoubleHeightHalf(top bool) { t.topHalfOfDouble = top }
