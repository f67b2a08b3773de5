package popupctl

// Type identifies an overlay drawn above the dashboard.
type Type int

const (
	None Type = iota
	// Help lists the key bindings of the current screen.
	Help
	// Error is a one-line failure that any key dismisses.
	Error
)

func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case Error:
		return "error"
	}
	return "none"
}

// Priority decides which visible overlay receives keys, first wins.
var Priority = []Type{Error, Help}

// RenderOrder draws overlays bottom to top, so an error covers help.
var RenderOrder = []Type{Help, Error}
