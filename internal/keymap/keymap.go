package keymap

// Binding ties keys to an action. Description and Context feed the help
// overlay.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionBack, []string{"esc", "backspace"}, "Back one level", ContextGlobal},
	{ActionActivate, []string{"enter"}, "Activate focused entry", ContextGlobal},

	// Two direction pairs
	{ActionMoveUp, []string{"up", "k"}, "Move up", ContextGlobal},
	{ActionMoveDown, []string{"down", "j"}, "Move down", ContextGlobal},
	{ActionMoveLeft, []string{"left", "h"}, "Move left / previous", ContextGlobal},
	{ActionMoveRight, []string{"right", "l"}, "Move right / next", ContextGlobal},

	// Camera grid
	{ActionCamera1, []string{"1"}, "Camera 1 full screen", ContextCamera},
	{ActionCamera2, []string{"2"}, "Camera 2 full screen", ContextCamera},
	{ActionCamera3, []string{"3"}, "Camera 3 full screen", ContextCamera},
	{ActionCamera4, []string{"4"}, "Camera 4 full screen", ContextCamera},
	{ActionCamera5, []string{"5"}, "Camera 5 full screen", ContextCamera},

	// Slideshow and playback
	{ActionPlayPause, []string{" ", "space", "p"}, "Play/pause", ContextSlideshow},
	{ActionPlayPause, []string{" ", "space", "p"}, "Pause/resume clip", ContextVideo},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
