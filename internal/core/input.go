package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp          // W, Up arrow - move paddle up
	ActionDown        // S, Down arrow - move paddle down
	ActionQuit        // Q, Ctrl+C, Esc, window close - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of actions held during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// EventKind identifies a discrete input event.
type EventKind int

const (
	// EventQuit asks the session to terminate.
	EventQuit EventKind = iota + 1
	// EventPointerRelease is a released pointer button at (X, Y).
	EventPointerRelease
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventPointerRelease:
		return "PointerRelease"
	default:
		return "Unknown"
	}
}

// Event is a discrete input event. X and Y are playfield coordinates and
// only meaningful for pointer events.
type Event struct {
	Kind EventKind
	X, Y float64
}

// QuitEvent returns a quit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// PointerRelease returns a pointer-release event at (x, y).
func PointerRelease(x, y float64) Event {
	return Event{Kind: EventPointerRelease, X: x, Y: y}
}

// Input is the boundary between a backend's event source and the simulation.
// PollEvents drains the discrete events since the previous tick, Held
// reports which directional actions are currently held.
type Input interface {
	PollEvents() []Event
	Held() InputFrame
}
