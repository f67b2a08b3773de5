package dashboard

import (
	"github.com/camdash/camdash/internal/content"
)

// Event is an input to Transition.
type Event interface {
	event()
}

type (
	// OpenPhotoViewer enters the local photo archive at its root.
	OpenPhotoViewer struct{}
	// OpenRemoteViewer enters the remote clip archive at its root.
	OpenRemoteViewer struct{}
	// OpenCamera shows one camera full screen.
	OpenCamera struct{ Index int }
	// CloseToGrid returns to the camera grid from anywhere.
	CloseToGrid struct{}
	// EnterFolder descends into a subfolder of the current listing.
	EnterFolder struct{ Locator string }
	// LeaveFolder undoes one level of navigation.
	LeaveFolder struct{}
	// EnterLeafContent opens one leaf of the current listing.
	EnterLeafContent struct{ Locator string }
	// ShowLeaves opens the aggregate leaf view of the current folder.
	ShowLeaves struct{}
	// JumpTo truncates the breadcrumb to Depth visible segments.
	JumpTo struct{ Depth int }
	// TogglePlay flips Slideshow and Play, or pauses clip playback.
	TogglePlay struct{}
	// Next and Previous step through the slideshow.
	Next     struct{}
	Previous struct{}
	// Tick is the autoplay timer firing.
	Tick struct{ Generation int }
	// StreamEnded reports that the renderer of session Generation stopped.
	// Err is nil on a clean end.
	StreamEnded struct {
		Generation int
		Err        error
	}
	// RetryStream is the delayed restart of a live stream.
	RetryStream struct{ Generation int }
	// RemoteListed is the result of a ListRemote effect.
	RemoteListed struct {
		RequestID int
		Entries   []content.Entry
		Err       error
	}
	// Downloaded is the result of a DownloadRemote effect.
	Downloaded struct {
		RequestID int
		Locator   string
		LocalPath string
		Err       error
	}
)

func (OpenPhotoViewer) event()  {}
func (OpenRemoteViewer) event() {}
func (OpenCamera) event()       {}
func (CloseToGrid) event()      {}
func (EnterFolder) event()      {}
func (LeaveFolder) event()      {}
func (EnterLeafContent) event() {}
func (ShowLeaves) event()       {}
func (JumpTo) event()           {}
func (TogglePlay) event()       {}
func (Next) event()             {}
func (Previous) event()         {}
func (Tick) event()             {}
func (StreamEnded) event()      {}
func (RetryStream) event()      {}
func (RemoteListed) event()     {}
func (Downloaded) event()       {}
