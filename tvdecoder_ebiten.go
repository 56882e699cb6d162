// tvdecoder_ebiten.go - reference TV-decoder consumer: assembles the video
// ring buffer's stream of VideoUnit values into a 736x576 ARGB8888 raster
// (spec.md §4.3.4). Grounded on the teacher's video_backend_ebiten.go, which
// drives an ebiten *ebiten.Image from a raw pixel slice on the same
// swap-on-vsync cadence.
//
// This consumer sits outside the hard emulation core (spec.md's explicit
// scope note: "a separate consumer component"); the core only ever writes
// VideoUnit values to the ring buffer and never imports this file's types.

package main

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

const (
	tvRasterWidth  = 736
	tvRasterHeight = 576
)

// TVDecoder tracks beam position across the incoming VideoUnit stream and
// exposes a versioned, swappable texture buffer (spec.md §4.3.4).
type TVDecoder struct {
	beamX, beamY int

	front atomic.Pointer[tvFrame] // last fully-assembled frame, safe for concurrent read
	back  *tvFrame                // frame currently being assembled

	teletext *TeletextGenerator
	rowDataA, rowDataB []byte // held teletext bytes for the current character row, for double-height replay

	version uint64
}

// tvFrame is one complete raster plus the ebiten image wrapping it.
type tvFrame struct {
	pix     []byte // ARGB8888, tvRasterWidth*tvRasterHeight*4
	version uint64
	image   *ebiten.Image
}

func newTVDecoder() *TVDecoder {
	d := &TVDecoder{teletext: newTeletextGenerator()}
	d.back = newTVFrame()
	d.front.Store(newTVFrame())
	return d
}

func newTVFrame() *tvFrame {
	return &tvFrame{pix: make([]byte, tvRasterWidth*tvRasterHeight*4)}
}

// Consume feeds one VideoUnit into the raster assembly (spec.md §6: "one
// video data unit per 0.5us emulated").
func (d *TVDecoder) Consume(u VideoUnit) {
	switch u.Kind {
	case videoUnitHSync:
		d.beamX = 0
		d.beamY++
		if d.beamY >= tvRasterHeight {
			d.swapFrame()
		}
	case videoUnitVSync:
		d.beamX = 0
		d.beamY = 0
	case videoUnitBitmap:
		d.plotBitmap(u)
	case videoUnitTeletext:
		d.plotTeletext(u)
	}
}

func (d *TVDecoder) plotBitmap(u VideoUnit) {
	for i := 0; i < 8; i++ {
		d.setPixel(d.beamX+i, u.Pixels[i])
	}
	d.beamX += 8
}

func (d *TVDecoder) plotTeletext(u VideoUnit) {
	glyph, fg, bg, _ := d.teletext.ProcessByte(u.DataA)
	for half := 0; half < 2; half++ {
		d.teletext.SetDoubleHeightHalf(half == 0)
		pattern := d.teletext.ScanlinePattern(glyph, d.beamY%10)
		for bit := 5; bit >= 0; bit-- {
			colour := bg
			if pattern&(1<<uint(bit)) != 0 {
				colour = fg
			}
			d.setPixel(d.beamX+(5-bit), rgb12FromTeletextColour(colour))
		}
	}
	d.beamX += 12 // two sub-pixels per character cell (spec.md §4.3.3)
}

// rgb12FromTeletextColour maps a 3-bit teletext RGB colour onto the same
// 12-bit packed format the bitmap path's palette produces.
func rgb12FromTeletextColour(c byte) uint16 {
	var r, g, b uint16
	if c&0x01 != 0 {
		r = 0xF
	}
	if c&0x02 != 0 {
		g = 0xF
	}
	if c&0x04 != 0 {
		b = 0xF
	}
	return r<<8 | g<<4 | b
}

func (d *TVDecoder) setPixel(x int, rgb12 uint16) {
	if x < 0 || x >= tvRasterWidth || d.beamY < 0 || d.beamY >= tvRasterHeight {
		return
	}
	r := byte((rgb12>>8)&0xF) * 17
	g := byte((rgb12>>4)&0xF) * 17
	b := byte(rgb12&0xF) * 17
	off := (d.beamY*tvRasterWidth + x) * 4
	d.back.pix[off+0] = b
	d.back.pix[off+1] = g
	d.back.pix[off+2] = r
	d.back.pix[off+3] = 0xFF
}

func (d *TVDecoder) swapFrame() {
	d.version++
	d.back.version = d.version
	d.front.Store(d.back)
	d.back = newTVFrame()
	d.beamY = 0
}

// LatestFrame returns the most recently completed raster and its version
// counter (spec.md §4.3.4 "versioned, swappable texture buffer").
func (d *TVDecoder) LatestFrame() (pix []byte, version uint64) {
	f := d.front.Load()
	return f.pix, f.version
}

// Image lazily builds (or reuses, if unchanged) an *ebiten.Image for the
// latest completed frame - the reference on-screen presentation path.
func (d *TVDecoder) Image() *ebiten.Image {
	f := d.front.Load()
	if f.image == nil {
		f.image = ebiten.NewImage(tvRasterWidth, tvRasterHeight)
	}
	f.image.WritePixels(f.pix)
	return f.image
}

// ScaledRGBA rescales the latest frame into dst using x/image/draw, the way
// the teacher's font2rgba tool composites glyph sub-images (grounded on
// tools/font2rgba.go's draw.Draw usage), for a reduced-size view rather
// than full-resolution presentation. Nothing in this repository calls it.
func (d *TVDecoder) ScaledRGBA(dst *image.RGBA) {
	pix, _ := d.LatestFrame()
	src := &image.RGBA{
		Pix:    pix,
		Stride: tvRasterWidth * 4,
		Rect:   image.Rect(0, 0, tvRasterWidth, tvRasterHeight),
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
}
