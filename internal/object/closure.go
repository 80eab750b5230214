package object

// Closure is an unordered identifier-to-holder mapping. It serves both
// as lexical scope (global scope, a method call's locals) and as the
// field storage of a ClassInstance — the two uses share this one type
// because both are "a name resolves to a holder" stores with the same
// overwrite-on-rebind semantics.
type Closure struct {
	vars map[string]*Holder
}

// NewClosure returns an empty closure.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]*Holder)}
}

// Get looks up name, returning (nil, false) if unbound.
func (c *Closure) Get(name string) (*Holder, bool) {
	h, ok := c.vars[name]
	return h, ok
}

// Set binds name to h, overwriting any existing binding.
func (c *Closure) Set(name string, h *Holder) {
	c.vars[name] = h
}

// Has reports whether name is currently bound.
func (c *Closure) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}
