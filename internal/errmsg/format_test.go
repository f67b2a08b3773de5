//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpListFolder,
			err:      nil,
			expected: "",
		},
		{
			name:     "folder operation",
			op:       OpListFolder,
			err:      errors.New("no such file or directory"),
			expected: "Failed to open folder: no such file or directory",
		},
		{
			name:     "remote listing",
			op:       OpListRemote,
			err:      errors.New("network error"),
			expected: "Failed to list clips: network error",
		},
		{
			name:     "download",
			op:       OpDownload,
			err:      errors.New("disk full"),
			expected: "Failed to download clip: disk full",
		},
		{
			name:     "camera stream",
			op:       OpPlayStream,
			err:      errors.New("connection refused"),
			expected: "Failed to play camera stream: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDownload,
			context:  "20250801T015438-frontdoor.mp4",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpDownload,
			context:  "20250801T015438-frontdoor.mp4",
			err:      errors.New("timeout"),
			expected: "Failed to download clip '20250801T015438-frontdoor.mp4': timeout",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpListFolder,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open folder: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
