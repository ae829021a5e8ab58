package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// Terminals report key presses (and auto-repeats) but never releases, so a
// key counts as held for a few ticks after its last press.
const (
	// InitialHold covers the gap before the terminal starts auto-repeating.
	InitialHold = 30
	// RepeatHold is the extension granted by each repeat.
	RepeatHold = 6
)

// HeldKeys approximates a held-key snapshot from a stream of presses.
type HeldKeys struct {
	until map[core.Action]int
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{until: make(map[core.Action]int)}
}

// Press records a press of a at the given tick. Pressing one direction
// releases the opposite one.
func (h *HeldKeys) Press(a core.Action, tick int) {
	switch a {
	case core.ActionUp:
		delete(h.until, core.ActionDown)
	case core.ActionDown:
		delete(h.until, core.ActionUp)
	default:
		return
	}

	hold := InitialHold
	if h.until[a] > tick {
		hold = RepeatHold
	}
	h.until[a] = max(h.until[a], tick+hold)
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
}

// Frame returns the actions still held at tick.
func (h *HeldKeys) Frame(tick int) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if until > tick {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

// termInput adapts Bubble Tea messages to core.Input.
type termInput struct {
	events []core.Event
	held   *HeldKeys
	tick   int
}

func newTermInput() *termInput {
	return &termInput{held: NewHeldKeys()}
}

func (in *termInput) push(ev core.Event) {
	in.events = append(in.events, ev)
}

// PollEvents drains the events received since the previous tick.
func (in *termInput) PollEvents() []core.Event {
	events := in.events
	in.events = nil
	return events
}

// Held returns the keys held at the current tick.
func (in *termInput) Held() core.InputFrame {
	return in.held.Frame(in.tick)
}
