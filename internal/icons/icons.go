// Package icons decorates grid labels according to the configured style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder   string
	Photo    string
	Video    string
	Document string
	File     string
	Camera   string
	Back     string
	Play     string
	Pause    string
	Previous string
	Next     string
}

var (
	nerdIcons = Icons{
		Folder:   "\uf07b ",     // nf-fa-folder
		Photo:    "\uf03e ",     // nf-fa-image
		Video:    "\uf03d ",     // nf-fa-video_camera
		Document: "\uf15c ",     // nf-fa-file_text
		File:     "\uf15b ",     // nf-fa-file
		Camera:   "\U000f0100 ", // nf-md-camera
		Back:     "\uf060 ",     // nf-fa-arrow_left
		Play:     "\uf04b ",     // nf-fa-play
		Pause:    "\uf04c ",     // nf-fa-pause
		Previous: "\uf048 ",     // nf-fa-step_backward
		Next:     "\uf051 ",     // nf-fa-step_forward
	}

	unicodeIcons = Icons{
		Folder:   "📁 ",
		Photo:    "🖼 ",
		Video:    "🎬 ",
		Document: "📄 ",
		File:     "📎 ",
		Camera:   "📷 ",
		Back:     "← ",
		Play:     "▶ ",
		Pause:    "⏸ ",
		Previous: "⏮ ",
		Next:     "⏭ ",
	}

	noneIcons = Icons{
		Folder: "/",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// IsPrefix returns true if the folder icon should be prepended.
func IsPrefix() bool {
	return current != noneIcons
}

// FormatDir formats a directory name with the appropriate icon.
// For "none" style the marker is a "/" suffix.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

func FormatPhoto(name string) string    { return current.Photo + name }
func FormatVideo(name string) string    { return current.Video + name }
func FormatDocument(name string) string { return current.Document + name }
func FormatFile(name string) string     { return current.File + name }
func FormatCamera(name string) string   { return current.Camera + name }
func FormatBack(label string) string    { return current.Back + label }
func FormatPlay(label string) string    { return current.Play + label }
func FormatPause(label string) string   { return current.Pause + label }
func FormatPrev(label string) string    { return current.Previous + label }
func FormatNext(label string) string    { return current.Next + label }
