// timeline_script.go - Lua-scripted action-event generation for synthetic
// replay fixtures (SPEC_FULL.md domain stack: gopher-lua), exercised by
// timeline_script_test.go; timeline_test.go builds its event lists by hand.
//
// Grounded on the teacher's go.mod dependency on github.com/yuin/gopher-lua
// (pulled in for scripting); this gives it the same role here: a small
// embeddable surface for "type this string as keypresses over N seconds".

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ScriptedEvent is one action a Lua fixture script schedules.
type ScriptedEvent struct {
	Cycle   uint64
	Message Message
}

// RunEventScript executes a Lua script that calls a small fixture API
// (key(row, col, pressed, cycle), paste(text, cycle), mouse(dx, dy,
// cycle)) and returns the resulting ordered list of scheduled events.
func RunEventScript(source string) ([]ScriptedEvent, error) {
	L := lua.NewState()
	defer L.Close()

	var events []ScriptedEvent

	L.SetGlobal("key", L.NewFunction(func(L *lua.LState) int {
		row := L.CheckInt(1)
		col := L.CheckInt(2)
		pressed := L.CheckBool(3)
		cycle := uint64(L.CheckInt64(4))
		events = append(events, ScriptedEvent{
			Cycle: cycle,
			Message: Message{Kind: MsgKeyState, Payload: KeyStatePayload{Row: row, Column: col, Pressed: pressed}},
		})
		return 0
	}))

	L.SetGlobal("paste", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		cycle := uint64(L.CheckInt64(2))
		events = append(events, ScriptedEvent{
			Cycle:   cycle,
			Message: Message{Kind: MsgStartPaste, Payload: text},
		})
		return 0
	}))

	L.SetGlobal("mouse", L.NewFunction(func(L *lua.LState) int {
		dx := L.CheckInt(1)
		dy := L.CheckInt(2)
		cycle := uint64(L.CheckInt64(3))
		events = append(events, ScriptedEvent{
			Cycle:   cycle,
			Message: Message{Kind: MsgMouseMotion, Payload: MouseMotionPayload{DX: dx, DY: dy}},
		})
		return 0
	}))

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("timeline script: %w", err)
	}
	return events, nil
}
