package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move placement cursor up
	ActionDown           // S, Down arrow - move placement cursor down
	ActionLeft           // A, Left arrow - move placement cursor left
	ActionRight          // D, Right arrow - move placement cursor right
	ActionConfirm        // Enter, Space - place the selected block at the cursor
	ActionCycle          // Tab - cycle the selected tray slot
	ActionSlot1          // 1 - select tray slot 1
	ActionSlot2          // 2 - select tray slot 2
	ActionSlot3          // 3 - select tray slot 3
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Esc - pause/unpause game
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCycle:
		return "Cycle"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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

// PointerPhase identifies where a pointer event sits in a press/move/release
// stream. The platform does not guarantee strict ordering; games must treat
// out-of-phase events as no-ops.
type PointerPhase int

const (
	PointerPress PointerPhase = iota
	PointerMove
	PointerRelease
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPress:
		return "Press"
	case PointerMove:
		return "Move"
	case PointerRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// PointerEvent is a single sample of the pointer stream delivered to games
// that support direct manipulation (drag and drop).
type PointerEvent struct {
	Phase PointerPhase
	Pos   Vec // Position in continuous screen space
}
