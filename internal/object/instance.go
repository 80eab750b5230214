package object

import "fmt"

// Instance is a runtime instance of a class: a non-null class
// reference plus an owned closure of field bindings. Fields are
// created on first assignment, not at construction.
type Instance struct {
	Class  *Class
	Fields *Closure
}

// NewInstance constructs a fresh, fieldless instance of cls.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: NewClosure()}
}

func (i *Instance) Kind() Kind   { return InstanceKind }
func (i *Instance) IsTrue() bool { return false }

// Print is the stable debug form used when the instance has no
// __str__ method; callers wanting __str__ dispatch use the
// evaluator's Stringify instead.
func (i *Instance) Print() string {
	return fmt.Sprintf("<%s instance at %p>", i.Class.Name, i)
}

// GetField retrieves a field's holder, or (nil, false) if never set.
func (i *Instance) GetField(name string) (*Holder, bool) {
	return i.Fields.Get(name)
}

// SetField stores h under name, overwriting any previous binding.
func (i *Instance) SetField(name string, h *Holder) {
	i.Fields.Set(name, h)
}

// Call is the method-call frame (spec C6): it resolves name via
// arity-sensitive lookup with inheritance, builds a fresh closure
// binding "self" to a shared holder of the receiver and each formal
// parameter to the corresponding actual, and executes the method
// body in that closure. Missing a matching-arity method is a runtime
// error; the caller (MethodCall's Execute) is responsible for the
// "non-instance receiver or missing method yields None" rule instead
// of erroring, per spec §4.6 — Call itself always errors on a miss so
// that direct embedder use gets a precise diagnostic.
func (i *Instance) Call(name string, args []*Holder, ctx *Context) (*Holder, error) {
	method, ok := i.Class.Lookup(name, len(args))
	if !ok {
		return nil, fmt.Errorf("no method %q with %d argument(s) on class %s", name, len(args), i.Class.Name)
	}

	if ctx != nil {
		if ctx.MaxCallDepth > 0 && ctx.CallDepth >= ctx.MaxCallDepth {
			return nil, fmt.Errorf("call depth exceeded %d while calling %s.%s", ctx.MaxCallDepth, i.Class.Name, name)
		}
		ctx.CallDepth++
		defer func() { ctx.CallDepth-- }()
	}

	frame := NewClosure()
	frame.Set("self", Share(Own(i)))
	for idx, param := range method.Params {
		frame.Set(param, args[idx])
	}

	return method.Body.Execute(frame, ctx), nil
}

// HasMethod reports whether the class (with inheritance) has a method
// named name accepting exactly arity arguments.
func (i *Instance) HasMethod(name string, arity int) bool {
	_, ok := i.Class.Lookup(name, arity)
	return ok
}
