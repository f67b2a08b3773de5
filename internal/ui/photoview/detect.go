package photoview

import (
	"os"
	"strings"
)

// ProtocolEnv overrides detection: "kitty", "sixel", "halfblocks" or "none".
const ProtocolEnv = "CAMDASH_IMAGE_PROTOCOL"

// Detect returns the best ImageProtocol for the current terminal. Terminals
// without a graphics protocol get half blocks; nil means photos are disabled.
func Detect() ImageProtocol {
	switch os.Getenv(ProtocolEnv) {
	case "kitty":
		return &KittyProtocol{}
	case "sixel":
		return NewSixelProtocol()
	case "halfblocks":
		return NewHalfblockProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return &KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return NewHalfblockProtocol()
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but doesn't support Kitty protocol.
	// Parent terminal variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if version := os.Getenv("KONSOLE_VERSION"); version != "" {
		if len(version) >= 4 && version[:4] >= "2204" {
			return true
		}
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	if term == "foot" || term == "foot-extra" {
		return true
	}
	switch termProgram {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	// mlterm is a common choice on small kiosk displays.
	if strings.HasPrefix(term, "mlterm") {
		return true
	}
	// xterm only has sixel when built with it; TERM is the best hint we get.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
