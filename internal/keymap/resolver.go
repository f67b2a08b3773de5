package keymap

import "slices"

// Binding contexts. Global bindings resolve on every screen.
const (
	ContextGlobal    = "global"
	ContextCamera    = "camera"
	ContextSlideshow = "slideshow"
	ContextVideo     = "video"
)

type scoped struct {
	context string
	action  Action
}

// Resolver maps key strings to actions, scoped by the context of the screen
// they are pressed on.
type Resolver struct {
	bindings map[string][]scoped // key -> actions per context
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string][]scoped),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = append(r.bindings[key], scoped{context: b.Context, action: b.Action})
		}
		// Collect all keys for each action (may have duplicates from different contexts)
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	// Deduplicate keys per action
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Default builds a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action for a key in one of contexts, or empty string if
// not bound there. Global bindings always apply; with no contexts every
// binding of the key is considered.
func (r *Resolver) Resolve(key string, contexts ...string) Action {
	for _, s := range r.bindings[key] {
		if len(contexts) == 0 || s.context == ContextGlobal || slices.Contains(contexts, s.context) {
			return s.action
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
