// paging_rommapper.go - sideways ROM mapper types (spec.md §4.2).
//
// Grounded on spec.md's own mapper table; implemented as a per-type
// region-mask table plus one switch on the mapper type in romMapperOffset.

package main

// ROMMapperType selects how a sideways ROM slot's mapper-region byte picks
// which physical 4 KiB subset is visible at a given address.
type ROMMapperType int

const (
	ROMMapper16KB ROMMapperType = iota
	ROMMapperCCIWord
	ROMMapperABE
	ROMMapperABEP
	ROMMapperCCIBase
	ROMMapperCCISpell
	ROMMapperPALQST
	ROMMapperPALTed
	ROMMapperPALWap
)

// romMapperRegionMask returns the bits of the mapper-region byte that this
// mapper type actually consults; all other bits are ignored (spec.md §8
// boundary behaviour: "Paging region bits beyond the declared ROM type's
// mask are ignored").
var romMapperRegionMask = map[ROMMapperType]byte{
	ROMMapper16KB:     0x00,
	ROMMapperCCIWord:  0x01,
	ROMMapperABE:      0x01,
	ROMMapperABEP:     0x01,
	ROMMapperCCIBase:  0x03,
	ROMMapperCCISpell: 0x07,
	ROMMapperPALQST:   0x03,
	ROMMapperPALTed:   0x03,
	ROMMapperPALWap:   0x07,
}

// romMapperOffset, given a (masked) region byte and a 4 KiB sub-page index
// within the visible 16 KiB CPU window (0..3), returns the big-page index
// within the slot's allocated image that should be mapped there.
func romMapperOffset(mt ROMMapperType, region byte, subPage int) int {
	region &= romMapperRegionMask[mt]
	switch mt {
	case ROMMapper16KB:
		return subPage

	case ROMMapperCCIWord, ROMMapperABE, ROMMapperABEP:
		// region bit 0 selects upper/lower 16 KiB; sub-pages map 1:1 within it.
		return int(region)*4 + subPage

	case ROMMapperCCIBase:
		// region bits 0..1 select one of 4 x 16 KiB banks.
		return int(region)*4 + subPage

	case ROMMapperCCISpell:
		// region bits 0..2 select one of 8 x 16 KiB banks.
		return int(region)*4 + subPage

	case ROMMapperPALQST, ROMMapperPALWap:
		// 8 KiB at $8000-$9FFF fixed (sub-pages 0,1); region paginates the
		// 8 KiB at $A000-$BFFF (sub-pages 2,3) within a larger bank image.
		if subPage < 2 {
			return subPage
		}
		return 2 + int(region)*2 + (subPage - 2)

	case ROMMapperPALTed:
		if subPage < 2 {
			return subPage
		}
		return 2 + int(region)*2 + (subPage - 2)

	default:
		return subPage
	}
}
