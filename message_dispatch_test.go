// message_dispatch_test.go - tests for the orchestrator's message
// prepare/handle step (spec.md §4.7 step 1, §6 "Host -> core messages",
// §7 "Message rejected").

package main

import "testing"

func newTestMachine() *Machine {
	return NewMachine(&Config{Model: ModelB})
}

func TestMachine_KeyStateUpdatesKeyboardMatrix(t *testing.T) {
	m := newTestMachine()
	ok, reason := m.applyMessage(Message{Kind: MsgKeyState, Payload: KeyStatePayload{Row: 2, Column: 1, Pressed: true}})
	if !ok {
		t.Fatalf("MsgKeyState rejected: %s", reason)
	}
	if !m.systemVIA.keys.IsPressed(2, 1) {
		t.Error("key should be pressed in the keyboard matrix after MsgKeyState")
	}
}

func TestMachine_KeySymbolIsRejected(t *testing.T) {
	m := newTestMachine()
	ok, reason := m.applyMessage(Message{Kind: MsgKeySymbol})
	if ok {
		t.Error("MsgKeySymbol should be rejected; symbol translation happens at the host layer")
	}
	if reason == "" {
		t.Error("a rejected message should carry a non-empty reason")
	}
}

func TestMachine_LoadDiscRejectsInvalidDrive(t *testing.T) {
	m := newTestMachine()
	ok, _ := m.applyMessage(Message{Kind: MsgLoadDisc, Payload: LoadDiscPayload{Drive: 9, Image: []byte{0}}})
	if ok {
		t.Error("MsgLoadDisc with an out-of-range drive should be rejected")
	}
}

func TestMachine_LoadDiscThenEjectDisc(t *testing.T) {
	m := newTestMachine()
	image := make([]byte, 10*256) // one track worth
	ok, reason := m.applyMessage(Message{Kind: MsgLoadDisc, Payload: LoadDiscPayload{Drive: 0, Image: image}})
	if !ok {
		t.Fatalf("MsgLoadDisc rejected: %s", reason)
	}
	if m.discs[0] == nil {
		t.Fatal("disc 0 should be loaded")
	}
	ok, reason = m.applyMessage(Message{Kind: MsgEjectDisc, Payload: 0})
	if !ok {
		t.Fatalf("MsgEjectDisc rejected: %s", reason)
	}
	if m.discs[0] != nil {
		t.Error("disc 0 should be ejected (nil)")
	}
}

func TestMachine_HardResetZeroesCycles(t *testing.T) {
	m := newTestMachine()
	m.cycles = 12345
	ok, _ := m.applyMessage(Message{Kind: MsgHardReset, Payload: HardResetPayload{}})
	if !ok {
		t.Fatal("MsgHardReset should succeed")
	}
	if m.cycles != 0 {
		t.Errorf("cycles = %d after hard reset, want 0", m.cycles)
	}
}

func TestMachine_ReplayInProgressRejectsOrdinaryMessages(t *testing.T) {
	m := newTestMachine()
	m.timeline = newTimeline(m)
	snap := captureSnapshot(m)
	m.timeline.StartRecording(snap)
	m.timeline.RecordMessage(0, Message{Kind: MsgKeyState, Payload: KeyStatePayload{}})
	m.timeline.StopRecording()
	if !m.timeline.StartReplay(0) {
		t.Fatal("StartReplay should find the recorded snapshot at cycle 0")
	}

	var gotOK bool
	var gotReason string
	m.handleMessage(Message{
		Kind: MsgKeyState, Payload: KeyStatePayload{},
		OnComplete: func(ok bool, reason string) { gotOK, gotReason = ok, reason },
	})
	if gotOK {
		t.Error("an ordinary message during replay should be rejected")
	}
	if gotReason == "" {
		t.Error("rejection should carry a reason")
	}
}

func TestMachine_StopMessageHaltsDuringReplay(t *testing.T) {
	m := newTestMachine()
	m.timeline = newTimeline(m)
	snap := captureSnapshot(m)
	m.timeline.StartRecording(snap)
	m.timeline.StopRecording()
	m.timeline.StartReplay(0)

	var gotOK bool
	m.handleMessage(Message{Kind: MsgStop, OnComplete: func(ok bool, reason string) { gotOK = ok }})
	if !gotOK {
		t.Error("MsgStop must still be accepted even while a replay is in progress")
	}
	if !m.halted {
		t.Error("MsgStop should halt the machine")
	}
}
