// Package handler provides a result type and chain function for key handlers.
// Each handler sees the pressed key and the action it resolved to, and either
// consumes it or lets the next handler try.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/keymap"
)

// Key is one key press as seen by handlers.
type Key struct {
	// Name is the bubbletea key string, e.g. "enter", "l", "3".
	Name string
	// Action is what the key resolves to; empty when unbound.
	Action keymap.Action
}

// Resolve builds a Key using the bindings resolver holds for contexts.
func Resolve(resolver *keymap.Resolver, name string, contexts ...string) Key {
	return Key{Name: name, Action: resolver.Resolve(name, contexts...)}
}

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handler attempts to handle a key.
type Handler func(Key) Result

// Chain offers key to handlers in order until one handles it.
func Chain(key Key, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
