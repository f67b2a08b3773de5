// Package player drives the external video renderer used for live camera
// streams and downloaded clips.
package player

// State represents the playback state machine.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲   ▲                        │ │
//	     │   │ stop / process exit    │ │ pause
//	     │   └────────────────────────┘ ▼
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	        stop / process exit  └──────────┘
//
// Valid transitions:
//   - Stopped → Playing (via Play)
//   - Playing → Paused  (via Pause, the process is sent SIGSTOP)
//   - Paused  → Playing (via Resume, the process is sent SIGCONT)
//   - Playing/Paused → Stopped (via Stop, or the renderer exiting)
//
// Play while active stops the running renderer first. Toggle flips
// Playing and Paused and is a no-op when Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a renderer is running (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
