// config_diagnostics.go - machine model selection, configuration and
// plain-text diagnostics logging.
//
// The teacher never reaches for a structured logging library anywhere in
// the retrieval pack; it logs with fmt.Printf/fmt.Fprintf gated by boolean
// verbosity flags (see via6522.Options{DumpBinary, DumpAscii} and the
// teacher's own -verbose-style CLI flags). This file follows the same idiom.

package main

import (
	"fmt"
	"os"
)

// Model identifies one of the four machine variants the paging engine and
// orchestrator know how to build.
type Model int

const (
	ModelB Model = iota
	ModelBPlus
	ModelMaster128
	ModelMasterCompact
)

func (m Model) String() string {
	switch m {
	case ModelB:
		return "Model B"
	case ModelBPlus:
		return "B+"
	case ModelMaster128:
		return "Master 128"
	case ModelMasterCompact:
		return "Master Compact"
	default:
		return "unknown model"
	}
}

// ROMImage names a sideways ROM slot's backing image and mapper type.
type ROMImage struct {
	Slot   int
	Path   string
	Mapper ROMMapperType
}

// Config is the ambient configuration struct threaded through machine
// construction, shaped like the teacher's small Options/...Config structs
// (GUIConfig{Width,Height,Title,Resizable}, via6522.Options{...}).
type Config struct {
	Model      Model
	OSROMPath  string
	SidewaysROMs []ROMImage
	NVRAMPath  string // Master-only CMOS RAM persistence
	Verbose    bool

	// UpdateFlags selects which optional subsystems are installed; see
	// machine_orchestrator.go's tick-variant dispatch.
	UpdateFlags UpdateFlagMask
}

// UpdateFlagMask is a bitmask of optional subsystems, letting machines
// without e.g. a second processor skip the per-cycle cost of checking for
// one (spec.md §4.7 "Update-flag dispatch").
type UpdateFlagMask uint32

const (
	UpdateFlagMouse UpdateFlagMask = 1 << iota
	UpdateFlagADC
	UpdateFlagTube
	UpdateFlagBeebLink
	UpdateFlagPrinter
	UpdateFlagDebugHalts
)

func (m UpdateFlagMask) has(f UpdateFlagMask) bool { return m&f != 0 }

// diagLogf writes a diagnostic line to stderr when Verbose is set. It is
// the core's only logging primitive, matching the teacher's plain
// fmt.Fprintf-gated-by-a-bool style rather than pulling in a structured
// logging library (see DESIGN.md's standard-library-only justification).
func (c *Config) diagLogf(format string, args ...any) {
	if c == nil || !c.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func bigPageBudgetForModel(m Model) (andy, hazel, shadow int) {
	switch m {
	case ModelB:
		return 0, 0, 0
	case ModelBPlus:
		return 3, 0, 5
	case ModelMaster128:
		return 1, 2, 5
	case ModelMasterCompact:
		return 1, 2, 5
	default:
		return 0, 0, 0
	}
}
