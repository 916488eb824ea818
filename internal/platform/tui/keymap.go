package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydive/internal/core"
)

// steerStep is how far one arrow press moves the steering target, in cells.
const steerStep = 4

// KeyMapper translates Bubble Tea key messages to session actions and
// steering directions. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a session action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// MapSteer translates a key message to a steering input relative to from,
// the player's current center. Arrows and WASD drag the target one step;
// space starts a dive.
func (km *KeyMapper) MapSteer(msg tea.KeyMsg, from core.Vector2) (core.InputEvent, bool) {
	var d core.Vector2
	switch msg.String() {
	case "left", "a":
		d = core.Vec(-2*steerStep, 0)
	case "right", "d":
		d = core.Vec(2*steerStep, 0)
	case "up", "w":
		d = core.Vec(0, -steerStep)
	case "down", "s":
		d = core.Vec(0, steerStep)
	case " ":
		return core.NewInputEvent(core.InputHold, from), true
	default:
		return core.InputEvent{}, false
	}
	return core.NewInputEvent(core.InputDrag, from.Add(d)), true
}

// MapMouse translates a mouse message to a steering input. Left click taps,
// dragging with the left button held steers continuously and a right click
// dives.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.InputEvent, bool) {
	pos := core.Vec(float32(msg.X), float32(msg.Y))
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return core.NewInputEvent(core.InputTap, pos), true
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		return core.NewInputEvent(core.InputDrag, pos), true
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		return core.NewInputEvent(core.InputHold, pos), true
	}
	return core.InputEvent{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionStats
	}
	return MenuActionNone
}
