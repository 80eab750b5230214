package object

import (
	"io"

	"github.com/wisplang/wisp/internal/token"
)

// Tracer receives one event per AST node Execute call (statements and
// expressions alike) when tracing is enabled. internal/trace implements this to record JSON
// step events; Context stays independent of that package so object
// never imports it.
type Tracer interface {
	Record(node string, pos token.Position, result *Holder)
}

// Context is the execution environment threaded through every
// Execute call: the output stream, an optional tracer, and the
// "self name" hint (spec §9) that NewInstance consumes to pre-insert
// a partially constructed instance into the enclosing closure before
// its __init__ runs.
type Context struct {
	Out      io.Writer
	Tracer   Tracer
	SelfName string

	// MaxCallDepth bounds nested method calls (internal/config's
	// MaxCallDepth knob, wired through here). Zero means unbounded.
	// CallDepth is the current nesting depth, maintained by
	// Instance.Call.
	MaxCallDepth int
	CallDepth    int
}

// NewContext returns a Context writing to out with tracing and call
// depth limiting disabled.
func NewContext(out io.Writer) *Context {
	return &Context{Out: out}
}

// Trace forwards to the attached Tracer, if any. Every Execute
// implementation in package ast calls this after computing its result, so tracing stays opt-in and a no-op when no Tracer is set.
func (c *Context) Trace(node string, pos token.Position, result *Holder) {
	if c.Tracer != nil {
		c.Tracer.Record(node, pos, result)
	}
}
