// teletext_saa5050_test.go - tests for the SAA5050 teletext generator's
// control-code state machine (spec.md §4.3.3).

package main

import "testing"

func TestTeletext_BeginRowResetsState(t *testing.T) {
	tg := newTeletextGenerator()
	tg.ProcessByte(0x02) // set fg alpha colour 2
	tg.ProcessByte(0x1D) // new background -> bg = fg
	tg.BeginRow()
	if tg.fg != 7 || tg.bg != 0 {
		t.Errorf("after BeginRow, fg/bg = %d/%d, want 7/0", tg.fg, tg.bg)
	}
}

func TestTeletext_AlphaColourCodeSetsForegroundAndExitsGraphics(t *testing.T) {
	tg := newTeletextGenerator()
	tg.ProcessByte(0x11) // graphics colour 1
	if !tg.graphicsMode || tg.fg != 1 {
		t.Fatalf("graphicsMode=%v fg=%d after graphics colour code, want true/1", tg.graphicsMode, tg.fg)
	}
	tg.ProcessByte(0x03) // alpha colour 3
	if tg.graphicsMode || tg.fg != 3 {
		t.Errorf("graphicsMode=%v fg=%d after alpha colour code, want false/3", tg.graphicsMode, tg.fg)
	}
}

func TestTeletext_ControlCodeRendersAsBlankGlyph(t *testing.T) {
	tg := newTeletextGenerator()
	glyph, _, _, _ := tg.ProcessByte(0x01) // control code
	if glyph != 0x00 {
		t.Errorf("glyph = %#x for a control code, want 0x00 (blank cell)", glyph)
	}
	glyph, _, _, _ = tg.ProcessByte(0x41) // 'A', printable
	if glyph != 0x41 {
		t.Errorf("glyph = %#x for a printable code, want the code itself", glyph)
	}
}

func TestTeletext_NewBackgroundTracksCurrentForeground(t *testing.T) {
	tg := newTeletextGenerator()
	tg.ProcessByte(0x04) // fg = 4
	tg.ProcessByte(0x1D) // new background
	if tg.bg != 4 {
		t.Errorf("bg = %d after New Background, want 4 (tracks current fg)", tg.bg)
	}
}

func TestTeletext_DoubleHeightSelectsTopOrBottomHalf(t *testing.T) {
	tg := newTeletextGenerator()
	tg.ProcessByte(0x0D) // double height
	glyph := byte(0x41)

	tg.SetDoubleHeightHalf(true)
	top := tg.ScanlinePattern(glyph, 8)
	tg.SetDoubleHeightHalf(false)
	bottom := tg.ScanlinePattern(glyph, 8)
	if top == bottom {
		t.Error("top and bottom half of a double-height row should read different glyph ROM lines")
	}
}

func TestTeletext_FlashOnAndPhaseBlanksGlyph(t *testing.T) {
	tg := newTeletextGenerator()
	tg.ProcessByte(0x08) // flash on
	tg.SetFlashPhase(true)
	if got := tg.ScanlinePattern(0x41, 3); got != 0 {
		t.Errorf("ScanlinePattern during the blank flash phase = %#x, want 0", got)
	}
	tg.SetFlashPhase(false)
	if got := tg.ScanlinePattern(0x41, 3); got == 0 && tg.glyphROM[0x41-0x20][3] != 0 {
		t.Error("ScanlinePattern during the visible flash phase should render the glyph normally")
	}
}

func TestTeletext_OutOfRangeGlyphReturnsZero(t *testing.T) {
	tg := newTeletextGenerator()
	if got := tg.ScanlinePattern(200, 0); got != 0 {
		t.Errorf("ScanlinePattern for an out-of-range glyph = %#x, want 0", got)
	}
}
