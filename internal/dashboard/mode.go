// Package dashboard holds the navigation state of the kiosk and the
// transition function that changes it.
package dashboard

// Mode is the screen the dashboard is on.
//
// Valid transitions:
//   - Camera           → CameraFullscreen (via OpenCamera)
//   - Camera           → PhotoFolder      (via OpenPhotoViewer)
//   - Camera           → RemoteFolder     (via OpenRemoteViewer)
//   - PhotoFolder      → Slideshow        (via EnterFolder on a leaf-only folder, ShowLeaves)
//   - PhotoFolder      → Camera           (via LeaveFolder at root)
//   - Slideshow        ↔ Play             (via TogglePlay)
//   - Slideshow/Play   → PhotoFolder      (via LeaveFolder, Next past the last item)
//   - RemoteFolder     → RemoteVideo      (via EnterLeafContent + Downloaded)
//   - RemoteFolder     → Camera           (via LeaveFolder at root)
//   - RemoteVideo      → RemoteFolder     (via LeaveFolder)
//   - CameraFullscreen → Camera           (via LeaveFolder)
//   - any              → Camera           (via CloseToGrid)
type Mode string

const (
	ModeCamera           Mode = "camera"
	ModeCameraFullscreen Mode = "camera_fullscreen"
	ModePhotoFolder      Mode = "photo_folder"
	ModeSlideshow        Mode = "slideshow"
	ModePlay             Mode = "play"
	ModeRemoteFolder     Mode = "remote_folder"
	ModeRemoteVideo      Mode = "remote_video"
)

func (m Mode) String() string { return string(m) }

// IsSlideshow is true for Slideshow and Play.
func (m Mode) IsSlideshow() bool {
	return m == ModeSlideshow || m == ModePlay
}

// IsFolder is true for the two folder browsers.
func (m Mode) IsFolder() bool {
	return m == ModePhotoFolder || m == ModeRemoteFolder
}

// IsPlayback is true when the external renderer owns the display.
func (m Mode) IsPlayback() bool {
	return m == ModeCameraFullscreen || m == ModeRemoteVideo
}

// Origin records how a leaf view was entered, which decides where
// LeaveFolder goes.
type Origin int

const (
	// OriginDirect: the folder held only leaves, so entering it opened the
	// leaf view. Leaving pops the folder.
	OriginDirect Origin = iota
	// OriginAggregate: opened from the aggregate entry of a folder view.
	// Leaving returns to that same folder view.
	OriginAggregate
)

// RemoteLevel is the sub-level of the remote browser.
type RemoteLevel int

const (
	RemoteFolders RemoteLevel = iota
	RemoteFiles
)
