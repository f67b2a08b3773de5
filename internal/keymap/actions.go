// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionBack Action = "back" // esc/backspace - leave one level

	// Focus movement
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"

	// Activation of the focused control
	ActionActivate Action = "activate"

	// Slideshow and clip playback
	ActionPlayPause Action = "play_pause"

	// Camera grid shortcuts
	ActionCamera1 Action = "camera_1"
	ActionCamera2 Action = "camera_2"
	ActionCamera3 Action = "camera_3"
	ActionCamera4 Action = "camera_4"
	ActionCamera5 Action = "camera_5"
)

// CameraIndex returns the camera index of a camera shortcut action.
func (a Action) CameraIndex() (int, bool) {
	switch a {
	case ActionCamera1:
		return 0, true
	case ActionCamera2:
		return 1, true
	case ActionCamera3:
		return 2, true
	case ActionCamera4:
		return 3, true
	case ActionCamera5:
		return 4, true
	}
	return 0, false
}
