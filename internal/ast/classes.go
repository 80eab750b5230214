package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/werrors"
)

// ClassDefinition binds Class's name in the current closure to the
// class value. Class is built up front (by the parser) rather than
// incrementally at Execute time — a class declaration has no dynamic
// part beyond naming it into scope.
type ClassDefinition struct {
	Pos   token.Position
	Class *object.Class
}

func (c *ClassDefinition) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	h := object.Own(c.Class)
	closure.Set(c.Class.Name, h)
	ctx.Trace("ClassDefinition", c.Pos, h)
	return h
}

// NewInstance constructs a fresh instance of the class bound to
// ClassName. If __init__ exists with matching arity, Args are
// evaluated and passed to it with the instance as self. Before Args
// are evaluated, the instance is inserted into closure under
// ctx.SelfName (the one-shot hint left by the enclosing Assignment,
// spec §9), so the arguments can refer to the instance being built.
// __init__'s own frame holds only self and its parameters.
type NewInstance struct {
	Pos       token.Position
	ClassName string
	Args      []object.Node
}

func (n *NewInstance) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	classHolder, ok := closure.Get(n.ClassName)
	if !ok {
		panic(werrors.NewRuntimeErrorf(n.Pos, "undefined class %q", n.ClassName))
	}
	cls, ok := classHolder.Value.(*object.Class)
	if !ok {
		panic(werrors.NewRuntimeErrorf(n.Pos, "%q is not a class", n.ClassName))
	}

	inst := object.NewInstance(cls)
	instHolder := object.Own(inst)

	selfName := ctx.SelfName
	ctx.SelfName = ""
	if selfName != "" {
		closure.Set(selfName, instHolder)
	}

	if _, ok := cls.Lookup("__init__", len(n.Args)); ok {
		args := make([]*object.Holder, len(n.Args))
		for i, a := range n.Args {
			args[i] = a.Execute(closure, ctx)
		}
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			panic(werrors.NewRuntimeError(n.Pos, err.Error()))
		}
	}

	ctx.Trace("NewInstance", n.Pos, instHolder)
	return instHolder
}

// MethodCall evaluates Receiver; if it is a class instance and it has
// a method Name of matching arity, calls it and returns the result.
// Otherwise — non-instance receiver, or no matching method — the call
// yields None rather than erroring, per spec §4.6.
type MethodCall struct {
	Pos      token.Position
	Receiver object.Node
	Name     string
	Args     []object.Node
}

func (m *MethodCall) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	receiver := m.Receiver.Execute(closure, ctx)
	var result *object.Holder

	var inst *object.Instance
	var ok bool
	if receiver != nil {
		inst, ok = receiver.Value.(*object.Instance)
	}
	if !ok || !inst.HasMethod(m.Name, len(m.Args)) {
		result = object.Own(object.None{})
	} else {
		args := make([]*object.Holder, len(m.Args))
		for i, a := range m.Args {
			args[i] = a.Execute(closure, ctx)
		}
		called, err := inst.Call(m.Name, args, ctx)
		if err != nil {
			panic(werrors.NewRuntimeError(m.Pos, err.Error()))
		}
		result = called
	}

	ctx.Trace("MethodCall", m.Pos, result)
	return result
}
