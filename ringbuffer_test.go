// ringbuffer_test.go - tests for the SPSC ring buffers (spec.md §8
// testable property 8 "ring-buffer safety").

package main

import "testing"

func TestVideoRingBuffer_PushPopOrder(t *testing.T) {
	r := NewVideoRingBuffer(4)
	for i := 0; i < 3; i++ {
		u := VideoUnit{Kind: videoUnitBitmap, Pixels: [8]uint16{uint16(i)}}
		if !r.TryPush(u) {
			t.Fatalf("push %d: unexpected full", i)
		}
	}
	for i := 0; i < 3; i++ {
		u, ok := r.TryPop()
		if !ok {
			t.Fatalf("pop %d: unexpected empty", i)
		}
		if u.Pixels[0] != uint16(i) {
			t.Errorf("pop %d: got pixel %d, want %d (FIFO order violated)", i, u.Pixels[0], i)
		}
	}
	if _, ok := r.TryPop(); ok {
		t.Error("pop on empty ring should fail")
	}
}

func TestVideoRingBuffer_NeverExceedsCapacity(t *testing.T) {
	r := NewVideoRingBuffer(4)
	for i := 0; i < 4; i++ {
		if !r.TryPush(VideoUnit{}) {
			t.Fatalf("push %d should succeed, capacity is 4", i)
		}
	}
	if r.TryPush(VideoUnit{}) {
		t.Error("push on a full ring should fail")
	}
	if used := r.Used(); used != 4 {
		t.Errorf("Used() = %d, want 4", used)
	}
}

func TestVideoRingBuffer_NonPowerOfTwoPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-power-of-two capacity")
		}
	}()
	NewVideoRingBuffer(3)
}

func TestSoundRingBuffer_PushPopOrder(t *testing.T) {
	r := NewSoundRingBuffer(8)
	for i := 0; i < 5; i++ {
		if !r.TryPush(SoundUnit{Channels: [4]int8{int8(i)}}) {
			t.Fatalf("push %d: unexpected full", i)
		}
	}
	for i := 0; i < 5; i++ {
		u, ok := r.TryPop()
		if !ok {
			t.Fatalf("pop %d: unexpected empty", i)
		}
		if u.Channels[0] != int8(i) {
			t.Errorf("pop %d: got channel %d, want %d", i, u.Channels[0], i)
		}
	}
}

func TestSoundRingBuffer_UsedTracksWraparound(t *testing.T) {
	r := NewSoundRingBuffer(4)
	for i := 0; i < 3; i++ {
		r.TryPush(SoundUnit{})
	}
	r.TryPop()
	r.TryPop()
	if used := r.Used(); used != 1 {
		t.Fatalf("Used() = %d, want 1", used)
	}
	for i := 0; i < 3; i++ {
		if !r.TryPush(SoundUnit{}) {
			t.Fatalf("push after wraparound %d should succeed", i)
		}
	}
	if used := r.Used(); used != 4 {
		t.Errorf("Used() = %d, want 4 after wraparound fill", used)
	}
}
