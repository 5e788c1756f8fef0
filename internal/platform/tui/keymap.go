package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "tab":
		return core.ActionCycle, false
	case "1":
		return core.ActionSlot1, false
	case "2":
		return core.ActionSlot2, false
	case "3":
		return core.ActionSlot3, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event.
// The second return is false for mouse activity the games don't consume,
// such as wheel motion.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{
			Phase: core.PointerPress,
			Pos:   core.V(float64(msg.X), float64(msg.Y)),
		}, true
	case tea.MouseActionMotion:
		return core.PointerEvent{
			Phase: core.PointerMove,
			Pos:   core.V(float64(msg.X), float64(msg.Y)),
		}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{
			Phase: core.PointerRelease,
			Pos:   core.V(float64(msg.X), float64(msg.Y)),
		}, true
	}
	return core.PointerEvent{}, false
}
