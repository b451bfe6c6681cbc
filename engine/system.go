package engine

import "github.com/lixenwraith/vi-pong/session"

// System is one unit of per-tick logic
// Lower Priority runs first; Sets gates the system on the session state
type System interface {
	Name() string
	Priority() int
	Sets() session.Set
	Update(ctx *Context)
}

// SystemFunc adapts a function into a System
type SystemFunc struct {
	SystemName     string
	SystemPriority int
	SystemSets     session.Set
	Fn             func(ctx *Context)
}

func (s SystemFunc) Name() string        { return s.SystemName }
func (s SystemFunc) Priority() int       { return s.SystemPriority }
func (s SystemFunc) Sets() session.Set   { return s.SystemSets }
func (s SystemFunc) Update(ctx *Context) { s.Fn(ctx) }
