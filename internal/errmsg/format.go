// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Cameras
	OpLoadCameras Op = "load camera list"
	OpPlayStream  Op = "play camera stream"

	// Local photo archive
	OpListFolder Op = "open folder"
	OpOpenPhoto  Op = "open photo"

	// Remote clip archive
	OpListRemote Op = "list clips"
	OpDownload   Op = "download clip"
	OpPlayClip   Op = "play clip"

	// State
	OpCacheLookup Op = "read download cache"
	OpCacheRecord Op = "update download cache"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
