// paging_rommapper_test.go - tests for sideways ROM mapper offset
// computation (spec.md §4.2, §8 "Paging region bits beyond the declared
// ROM type's mask are ignored").

package main

import "testing"

func TestRomMapperOffset_16KBIsIdentitySubPage(t *testing.T) {
	for sub := 0; sub < 4; sub++ {
		if got := romMapperOffset(ROMMapper16KB, 0xFF, sub); got != sub {
			t.Errorf("ROMMapper16KB subPage %d = %d, want %d (region has no effect)", sub, got, sub)
		}
	}
}

func TestRomMapperOffset_RegionBitsBeyondMaskAreIgnored(t *testing.T) {
	// ROMMapperABE only consults bit 0; bits beyond that must not affect
	// the computed offset.
	a := romMapperOffset(ROMMapperABE, 0x01, 2)
	b := romMapperOffset(ROMMapperABE, 0xFF, 2) // 0xFF & mask(0x01) == 0x01
	if a != b {
		t.Errorf("ROMMapperABE region 0x01 vs 0xFF (masked to the same bit) gave %d vs %d, want equal", a, b)
	}

	c := romMapperOffset(ROMMapperABE, 0x00, 2)
	if a == c {
		t.Error("region bit 0 actually differing (0x01 vs 0x00) should change the offset")
	}
}

func TestRomMapperOffset_CCIBaseSelectsOneOfFourBanks(t *testing.T) {
	got := romMapperOffset(ROMMapperCCIBase, 0x02, 1)
	want := 2*4 + 1
	if got != want {
		t.Errorf("ROMMapperCCIBase region=2 subPage=1 = %d, want %d", got, want)
	}
}

func TestRomMapperOffset_PALQSTFixesLowerEightKiB(t *testing.T) {
	for sub := 0; sub < 2; sub++ {
		got := romMapperOffset(ROMMapperPALQST, 0xFF, sub)
		if got != sub {
			t.Errorf("ROMMapperPALQST fixed subPage %d = %d, want %d regardless of region", sub, got, sub)
		}
	}
	got := romMapperOffset(ROMMapperPALQST, 0x01, 2)
	want := 2 + 1*2 + 0
	if got != want {
		t.Errorf("ROMMapperPALQST region=1 subPage=2 = %d, want %d", got, want)
	}
}
