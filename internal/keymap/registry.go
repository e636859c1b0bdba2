// Package keymap maps key presses to named commands, with per-context
// bindings and user overrides.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Binding associates a key with a command in a context.
type Binding struct {
	Key     string // bubbletea key string, e.g. "ctrl+y"
	Command string // command ID
	Context string // "global" or a plugin focus context
}

// Command is an executable action a key can be bound to.
type Command struct {
	ID      string
	Title   string // shown in the help overlay
	Handler func() tea.Cmd
}

// CommandMsg is emitted when a bound command has no registered handler.
// The app model dispatches these by ID.
type CommandMsg struct {
	ID string
}

// Registry holds bindings, commands, and user overrides.
type Registry struct {
	bindings  map[string]map[string]string // context -> key -> command ID
	order     map[string][]Binding         // listing order per context
	commands  map[string]Command
	overrides map[string]string // key -> command ID, wins in every context
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string]map[string]string),
		order:     make(map[string][]Binding),
		commands:  make(map[string]Command),
		overrides: make(map[string]string),
	}
}

// Bind registers a binding. A later Bind for the same key and context
// replaces the earlier one.
func (r *Registry) Bind(b Binding) {
	if b.Context == "" {
		b.Context = "global"
	}
	keys, ok := r.bindings[b.Context]
	if !ok {
		keys = make(map[string]string)
		r.bindings[b.Context] = keys
	}
	if _, replaced := keys[b.Key]; replaced {
		list := r.order[b.Context]
		for i := range list {
			if list[i].Key == b.Key {
				list[i] = b
				break
			}
		}
	} else {
		r.order[b.Context] = append(r.order[b.Context], b)
	}
	keys[b.Key] = b.Command
}

// RegisterCommand registers a command and its handler.
func (r *Registry) RegisterCommand(c Command) {
	r.commands[c.ID] = c
}

// GetCommand returns the command with the given ID.
func (r *Registry) GetCommand(id string) (Command, bool) {
	c, ok := r.commands[id]
	return c, ok
}

// SetUserOverride binds a key to a command ID ahead of every context.
func (r *Registry) SetUserOverride(key, commandID string) {
	r.overrides[key] = commandID
}

// Lookup resolves a key in a context. Overrides win, then the context's
// bindings, then global.
func (r *Registry) Lookup(key, context string) (string, bool) {
	if id, ok := r.overrides[key]; ok {
		return id, true
	}
	if keys, ok := r.bindings[context]; ok {
		if id, ok := keys[key]; ok {
			return id, true
		}
	}
	if context != "global" {
		if id, ok := r.bindings["global"][key]; ok {
			return id, true
		}
	}
	return "", false
}

// Handle resolves a key press to a command and returns its tea.Cmd.
// Commands without a handler yield a CommandMsg for the app to dispatch.
// Returns nil when the key is unbound.
func (r *Registry) Handle(msg tea.KeyMsg, context string) tea.Cmd {
	id, ok := r.Lookup(msg.String(), context)
	if !ok {
		return nil
	}
	if c, ok := r.commands[id]; ok && c.Handler != nil {
		return c.Handler()
	}
	return func() tea.Msg { return CommandMsg{ID: id} }
}

// BindingsForContext returns the context's bindings in registration order.
func (r *Registry) BindingsForContext(context string) []Binding {
	return r.order[context]
}
