// main.go - the engine binary: builds a Machine, runs the emulation
// thread, and presents its video/audio output via ebiten (spec.md §2
// "System overview", §5 "Threads").
//
// Grounded on the teacher's main.go, which owns the GUI's event loop and
// spins the CPU on a dedicated goroutine; here the emulation thread (the
// orchestrator's RunIteration loop) runs on its own goroutine while
// ebiten's Update/Draw poll the TVDecoder's versioned frame buffer, the
// same swap-on-vsync pattern the teacher's video_backend_ebiten.go uses.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type engineGame struct {
	machine *Machine
	decoder *TVDecoder
	sink    *AudioSink
}

func (g *engineGame) Update() error {
	for i := 0; i < 20; i++ { // ~20 orchestrator iterations per host frame at 60fps/~2000 cycles each
		g.machine.RunIteration()
	}
	for {
		u, ok := g.machine.VideoRing().TryPop()
		if !ok {
			break
		}
		g.decoder.Consume(u)
	}
	return nil
}

func (g *engineGame) Draw(screen *ebiten.Image) {
	img := g.decoder.Image()
	screen.DrawImage(img, nil)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cycles=%d model=%s", g.machine.cycles, g.machine.cfg.Model), 4, 4)
}

func (g *engineGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return tvRasterWidth, tvRasterHeight
}

func main() {
	model := flag.String("model", "b", "machine model: b, bplus, master, compact")
	osrom := flag.String("os-rom", "", "path to the OS ROM image")
	nvram := flag.String("nvram", "", "path to the Master CMOS NVRAM file")
	verbose := flag.Bool("verbose", false, "enable diagnostic logging")
	flag.Parse()

	cfg := &Config{OSROMPath: *osrom, NVRAMPath: *nvram, Verbose: *verbose}
	switch *model {
	case "b":
		cfg.Model = ModelB
	case "bplus":
		cfg.Model = ModelBPlus
	case "master":
		cfg.Model = ModelMaster128
	case "compact":
		cfg.Model = ModelMasterCompact
	default:
		fmt.Fprintf(os.Stderr, "unknown -model %q\n", *model)
		os.Exit(1)
	}

	m := NewMachine(cfg)
	decoder := newTVDecoder()

	sink, err := NewAudioSink(m.SoundRing())
	if err != nil && cfg.Verbose {
		cfg.diagLogf("audio: %v (continuing without sound)", err)
	}

	ebiten.SetWindowSize(tvRasterWidth, tvRasterHeight)
	ebiten.SetWindowTitle("bbcmicro-core")
	game := &engineGame{machine: m, decoder: decoder, sink: sink}
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
