// timeline_test.go - tests for the record/replay event log (spec.md §8
// testable property 10 "Replay determinism", §4.8 "When the final event
// is reached, replay terminates.").

package main

import "testing"

func syntheticTimeline(cycles ...uint64) *Timeline {
	t := &Timeline{}
	for _, c := range cycles {
		t.events = append(t.events, TimelineEvent{Cycle: c, Kind: EventSnapshot, Snap: &MachineSnapshot{Cycles: c}})
	}
	return t
}

func TestTimeline_StartReplayFindsFirstEventAtOrAfterCycle(t *testing.T) {
	tl := syntheticTimeline(0, 100, 200, 300)

	if !tl.StartReplay(150) {
		t.Fatal("StartReplay(150) should find the event at cycle 200")
	}
	next, ok := tl.NextEventCycle()
	if !ok || next != 200 {
		t.Errorf("NextEventCycle = %d, ok=%v, want 200, true", next, ok)
	}
}

func TestTimeline_StartReplayPastLastEventFails(t *testing.T) {
	tl := syntheticTimeline(0, 100, 200)
	if tl.StartReplay(1000) {
		t.Error("StartReplay past the last event should fail, not silently start an empty replay")
	}
}

func TestTimeline_AdvanceToConsumesEventsInCycleOrder(t *testing.T) {
	tl := syntheticTimeline(0, 100, 200, 300)
	tl.StartReplay(0)

	var visited []uint64
	for _, c := range []uint64{0, 50, 100, 150, 200, 250, 300} {
		before := tl.replayPos
		tl.AdvanceTo(c)
		if tl.replayPos > before {
			visited = append(visited, c)
		}
	}
	want := []uint64{0, 100, 200, 300}
	if len(visited) != len(want) {
		t.Fatalf("consumed events at cycles %v, want %v", visited, want)
	}
	for i, c := range want {
		if visited[i] != c {
			t.Errorf("event %d consumed at cycle %d, want %d", i, visited[i], c)
		}
	}
}

func TestTimeline_ReplayTerminatesAtFinalEvent(t *testing.T) {
	tl := syntheticTimeline(0, 100)
	tl.StartReplay(0)
	tl.AdvanceTo(0)
	if tl.Mode() != timelineReplay {
		t.Fatalf("mode = %v after first event, want still replaying", tl.Mode())
	}
	tl.AdvanceTo(100)
	if tl.Mode() != timelineIdle {
		t.Errorf("mode = %v after final event, want idle (replay should auto-terminate)", tl.Mode())
	}
}

func TestTimeline_ValidateRejectsOutOfOrderSnapshots(t *testing.T) {
	tl := &Timeline{events: []TimelineEvent{
		{Cycle: 100, Kind: EventSnapshot, Snap: &MachineSnapshot{}},
		{Cycle: 50, Kind: EventSnapshot, Snap: &MachineSnapshot{}}, // out of order
	}}
	if err := tl.Validate(); err == nil {
		t.Error("Validate should reject a snapshot log with decreasing cycle numbers")
	}
}

func TestTimeline_ValidateRejectsActionBeforeAnySnapshot(t *testing.T) {
	tl := &Timeline{events: []TimelineEvent{
		{Cycle: 10, Kind: EventAction, Message: Message{Kind: MsgDebugStep}},
	}}
	if err := tl.Validate(); err == nil {
		t.Error("Validate should reject an action event with no preceding snapshot")
	}
}

func TestTimeline_ValidateAcceptsWellFormedLog(t *testing.T) {
	tl := &Timeline{events: []TimelineEvent{
		{Cycle: 0, Kind: EventSnapshot, Snap: &MachineSnapshot{}},
		{Cycle: 10, Kind: EventAction, Message: Message{Kind: MsgDebugStep}},
		{Cycle: 20, Kind: EventAction, Message: Message{Kind: MsgDebugStep}},
		{Cycle: 100, Kind: EventSnapshot, Snap: &MachineSnapshot{}},
	}}
	if err := tl.Validate(); err != nil {
		t.Errorf("Validate rejected a well-formed log: %v", err)
	}
}
