package player

import "time"

// Ended is reported when a renderer exits on its own. Session is the value
// given to Play. Err is nil for a clean exit. Stops requested through Stop or
// Play are not reported.
type Ended struct {
	URI     string
	Session int
	Err     error
}

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(uri string, session int) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	URI() string
	Elapsed() time.Duration
	Ended() <-chan Ended
	Close()
}

// Verify Process implements Interface at compile time.
var _ Interface = (*Process)(nil)
