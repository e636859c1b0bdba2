package plugin

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Registry holds the registered plugins in tab order.
type Registry struct {
	ctx     *Context
	plugins []Plugin
}

// NewRegistry creates a registry that initializes plugins with ctx.
func NewRegistry(ctx *Context) *Registry {
	return &Registry{ctx: ctx}
}

// Register initializes a plugin and adds it to the tab order. A plugin
// whose Init fails is skipped and the error logged.
func (r *Registry) Register(p Plugin) {
	if err := p.Init(r.ctx); err != nil {
		if r.ctx != nil && r.ctx.Logger != nil {
			r.ctx.Logger.Error("plugin init failed", "plugin", p.ID(), "err", err)
		}
		return
	}
	r.plugins = append(r.plugins, p)
}

// Plugins returns the registered plugins in tab order.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// Get returns the plugin with the given ID.
func (r *Registry) Get(id string) Plugin {
	for _, p := range r.plugins {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// StartAll collects the start commands of every plugin.
func (r *Registry) StartAll() []tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range r.plugins {
		if cmd := p.Start(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// StopAll stops every plugin in reverse order.
func (r *Registry) StopAll() {
	for i := len(r.plugins) - 1; i >= 0; i-- {
		r.plugins[i].Stop()
	}
}
