package dashboard

import "time"

// Effect is a side effect requested by a transition. The caller performs
// effects and feeds their results back as events.
type Effect interface {
	effect()
}

type (
	// ArmTimer asks for a Tick carrying Generation after Interval.
	ArmTimer struct {
		Generation int
		Interval   time.Duration
	}
	// ListRemote asks for a RemoteListed event for Path.
	ListRemote struct {
		RequestID int
		Path      string
	}
	// DownloadRemote asks for a Downloaded event for Locator.
	DownloadRemote struct {
		RequestID int
		Locator   string
	}
	// PlayURI starts the renderer. Live streams retry on end, clips restart.
	// Generation identifies the session; its end must carry the same value.
	PlayURI struct {
		URI        string
		Live       bool
		Generation int
	}
	// StopPlayback stops the renderer.
	StopPlayback struct{}
	// TogglePlayback pauses or resumes the renderer.
	TogglePlayback struct{}
	// ScheduleRetry asks for a RetryStream carrying Generation after Delay.
	ScheduleRetry struct {
		Generation int
		Attempt    int
		Delay      time.Duration
	}
)

func (ArmTimer) effect()       {}
func (ListRemote) effect()     {}
func (DownloadRemote) effect() {}
func (PlayURI) effect()        {}
func (StopPlayback) effect()   {}
func (TogglePlayback) effect() {}
func (ScheduleRetry) effect()  {}
