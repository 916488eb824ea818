package core

import "time"

// Action represents a semantic session action, abstracted from physical key presses.
// Steering goes through InputEvent; actions drive the session lifecycle.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - begin the dive
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionMute           // M - toggle audio
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputType classifies a pointer-style input event.
type InputType int

const (
	InputTap  InputType = iota // single touch/click at a point
	InputDrag                  // continuous steer toward a point
	InputHold                  // press-and-hold, triggers a dive
)

// String returns a human-readable name for the input type.
func (t InputType) String() string {
	switch t {
	case InputTap:
		return "Tap"
	case InputDrag:
		return "Drag"
	case InputHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// InputEvent is a platform-neutral steering event in world coordinates.
type InputEvent struct {
	Type      InputType
	Position  Vector2
	Timestamp time.Time
}

// NewInputEvent creates an event stamped with the current time.
func NewInputEvent(t InputType, pos Vector2) InputEvent {
	return InputEvent{Type: t, Position: pos, Timestamp: time.Now()}
}
