//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := Default()

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"esc", ActionBack},
		{"backspace", ActionBack},
		{"enter", ActionActivate},
		{"up", ActionMoveUp},
		{"k", ActionMoveUp},
		{"down", ActionMoveDown},
		{"j", ActionMoveDown},
		{"left", ActionMoveLeft},
		{"h", ActionMoveLeft},
		{"right", ActionMoveRight},
		{"l", ActionMoveRight},
		{" ", ActionPlayPause},
		{"3", ActionCamera3},
		{"x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_ResolveInContext(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		key      string
		contexts []string
		expected Action
	}{
		{"digit on camera grid", "3", []string{ContextGlobal, ContextCamera}, ActionCamera3},
		{"digit in slideshow", "3", []string{ContextGlobal, ContextSlideshow}, ""},
		{"space in slideshow", " ", []string{ContextGlobal, ContextSlideshow}, ActionPlayPause},
		{"space in video", "p", []string{ContextGlobal, ContextVideo}, ActionPlayPause},
		{"space on camera grid", " ", []string{ContextGlobal, ContextCamera}, ""},
		{"global without context", "enter", nil, ActionActivate},
		{"global in any context", "esc", []string{ContextVideo}, ActionBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.key, tt.contexts...); got != tt.expected {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.key, tt.contexts, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysForDeduplicates(t *testing.T) {
	r := Default()
	keys := r.KeysFor(ActionPlayPause)
	if len(keys) != 3 {
		t.Errorf("KeysFor(play_pause) = %v, want 3 unique keys", keys)
	}
	if !slices.Contains(keys, "space") {
		t.Errorf("KeysFor(play_pause) = %v, missing space", keys)
	}
}

func TestEveryKeyHasOneAction(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestByContext(t *testing.T) {
	if got := len(ByContext("camera")); got != 5 {
		t.Errorf("ByContext(camera) = %d bindings, want 5", got)
	}
	if got := len(ByContext("nope")); got != 0 {
		t.Errorf("ByContext(nope) = %d bindings, want 0", got)
	}
}

func TestCameraIndex(t *testing.T) {
	for i, a := range []Action{ActionCamera1, ActionCamera2, ActionCamera3, ActionCamera4, ActionCamera5} {
		got, ok := a.CameraIndex()
		if !ok || got != i {
			t.Errorf("%s.CameraIndex() = %d, %v", a, got, ok)
		}
	}
	if _, ok := ActionQuit.CameraIndex(); ok {
		t.Error("ActionQuit.CameraIndex() reported ok")
	}
}
