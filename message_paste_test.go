// message_paste_test.go - tests for the paste/copy controllers (spec.md §6
// "Start-paste", "Stop-paste", "Start-copy", "Stop-copy").

package main

import "testing"

func TestPasteController_FeedsOneByteAtATimeThenDeactivates(t *testing.T) {
	p := newPasteController()
	p.StartPaste("AB")
	if !p.Active() {
		t.Fatal("should be active right after StartPaste")
	}

	b, ok := p.NextByte()
	if !ok || b != 'A' {
		t.Fatalf("first NextByte = %q, %v, want 'A', true", b, ok)
	}
	if !p.Active() {
		t.Error("should still be active with one byte left")
	}

	b, ok = p.NextByte()
	if !ok || b != 'B' {
		t.Fatalf("second NextByte = %q, %v, want 'B', true", b, ok)
	}
	if p.Active() {
		t.Error("should deactivate once the last byte is drained")
	}

	_, ok = p.NextByte()
	if ok {
		t.Error("NextByte after draining should report false")
	}
}

func TestPasteController_StopPasteAbortsEarly(t *testing.T) {
	p := newPasteController()
	p.StartPaste("hello")
	p.NextByte()
	p.StopPaste()
	if p.Active() {
		t.Error("StopPaste should deactivate immediately")
	}
	if _, ok := p.NextByte(); ok {
		t.Error("NextByte after StopPaste should report false")
	}
}

func TestPasteController_EmptyStringIsImmediatelyInactive(t *testing.T) {
	p := newPasteController()
	p.StartPaste("")
	if _, ok := p.NextByte(); ok {
		t.Error("NextByte on an empty paste should report false immediately")
	}
}

func TestCopyController_CapturesOnlyWhileActive(t *testing.T) {
	c := newCopyController()
	c.OnWRCH('x') // before StartCopy: must be ignored
	c.StartCopy(true, nil)
	c.OnWRCH('a')
	c.OnWRCH('b')
	if string(c.captured) != "ab" {
		t.Errorf("captured = %q, want %q", c.captured, "ab")
	}
}

func TestCopyController_StopCopyFiresCallbackOnceWithCapturedBytes(t *testing.T) {
	c := newCopyController()
	var got []byte
	calls := 0
	c.StartCopy(false, func(b []byte) { got = b; calls++ })
	c.OnWRCH('h')
	c.OnWRCH('i')
	c.StopCopy()
	if calls != 1 {
		t.Fatalf("onStop called %d times, want exactly 1", calls)
	}
	if string(got) != "hi" {
		t.Errorf("onStop received %q, want %q", got, "hi")
	}

	c.StopCopy() // calling again while inactive must not refire
	if calls != 1 {
		t.Error("StopCopy while already inactive should not refire the callback")
	}
}
