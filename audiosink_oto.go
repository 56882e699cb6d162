// audiosink_oto.go - reference host-side consumer draining the sound ring
// buffer to the speaker (spec.md §4.3.4-adjacent "separate consumer
// component" pattern, applied to audio). Grounded on the teacher's
// audio_backend_oto.go, which wraps an *oto.Player fed from an
// atomic.Pointer[SoundChip] swap; here the feed is the SoundRingBuffer
// instead.

package main

import (
	"io"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 125_000 // one sound unit per 16 cycles at a 2 MHz core clock

// AudioSink drains SoundUnit values from a SoundRingBuffer and feeds them
// to an oto player as interleaved stereo PCM (channels 0+1 mixed to left,
// 2+3 to right, matching the teacher's simple stereo-fold mixing choice).
type AudioSink struct {
	ring    *SoundRingBuffer
	ctx     *oto.Context
	player  *oto.Player
}

// NewAudioSink builds an oto context and starts a player pulling from
// ring via an io.Reader adapter.
func NewAudioSink(ring *SoundRingBuffer) (*AudioSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audioSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &AudioSink{ring: ring, ctx: ctx}
	s.player = ctx.NewPlayer(&soundRingReader{ring: ring})
	s.player.Play()
	return s, nil
}

func (s *AudioSink) Close() error {
	return s.player.Close()
}

// soundRingReader adapts the ring buffer to io.Reader, producing silence
// when the ring is empty rather than blocking (the emulation thread never
// waits on the audio consumer, per spec.md §5).
type soundRingReader struct {
	ring *SoundRingBuffer
}

func (r *soundRingReader) Read(p []byte) (int, error) {
	n := 0
	for n+4 <= len(p) {
		u, ok := r.ring.TryPop()
		if !ok {
			break
		}
		left := int16(u.Channels[0]) + int16(u.Channels[1])
		right := int16(u.Channels[2]) + int16(u.Channels[3])
		p[n] = byte(left)
		p[n+1] = byte(left >> 8)
		p[n+2] = byte(right)
		p[n+3] = byte(right >> 8)
		n += 4
	}
	if n == 0 {
		// Fill with a small block of silence instead of returning
		// io.EOF, so the player keeps polling rather than stopping.
		fill := len(p)
		if fill > 256 {
			fill = 256
		}
		for i := 0; i < fill; i++ {
			p[i] = 0
		}
		n = fill
	}
	return n, nil
}

var _ io.Reader = (*soundRingReader)(nil)
