// Package ast implements the AST node contract (spec C5) and the
// statement/expression evaluation semantics (spec C6) by giving each
// node type an Execute method satisfying object.Node. Evaluation is
// purely recursive: there is no separate visitor or type-switch
// dispatcher, by design (spec C5/C6) — each node knows how to
// evaluate itself.
package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/werrors"
)

var _ object.Node = (*NumberLiteral)(nil)

// NumberLiteral is an integer literal expression.
type NumberLiteral struct {
	Pos   token.Position
	Value int64
}

func (n *NumberLiteral) Execute(_ *object.Closure, ctx *object.Context) *object.Holder {
	h := object.Own(object.Number(n.Value))
	ctx.Trace("NumberLiteral", n.Pos, h)
	return h
}

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Pos   token.Position
	Value string
}

func (n *StringLiteral) Execute(_ *object.Closure, ctx *object.Context) *object.Holder {
	h := object.Own(object.String(n.Value))
	ctx.Trace("StringLiteral", n.Pos, h)
	return h
}

// BoolLiteral is a True/False literal expression.
type BoolLiteral struct {
	Pos   token.Position
	Value bool
}

func (n *BoolLiteral) Execute(_ *object.Closure, ctx *object.Context) *object.Holder {
	h := object.Own(object.Bool(n.Value))
	ctx.Trace("BoolLiteral", n.Pos, h)
	return h
}

// NoneLiteral is the None literal expression.
type NoneLiteral struct {
	Pos token.Position
}

func (n *NoneLiteral) Execute(_ *object.Closure, ctx *object.Context) *object.Holder {
	h := object.Own(object.None{})
	ctx.Trace("NoneLiteral", n.Pos, h)
	return h
}

// VariableValue resolves a dotted identifier path: Path[0] is looked
// up in the closure, then each subsequent element is looked up as a
// field of the preceding class-instance value. A missing name at any
// step is a runtime error.
type VariableValue struct {
	Pos  token.Position
	Path []string
}

func (v *VariableValue) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	result := resolvePath(closure, v.Path, v.Pos)
	ctx.Trace("VariableValue", v.Pos, result)
	return result
}

// resolvePath implements the dotted-path walk shared by VariableValue
// and FieldAssignment's object-path resolution.
func resolvePath(closure *object.Closure, path []string, pos token.Position) *object.Holder {
	h, ok := closure.Get(path[0])
	if !ok {
		panic(werrors.NewRuntimeErrorf(pos, "undefined variable %q", path[0]))
	}
	for _, field := range path[1:] {
		inst, ok := h.Value.(*object.Instance)
		if !ok {
			panic(werrors.NewRuntimeErrorf(pos, "cannot access field %q on non-instance value", field))
		}
		h, ok = inst.GetField(field)
		if !ok {
			panic(werrors.NewRuntimeErrorf(pos, "instance of %s has no field %q", inst.Class.Name, field))
		}
	}
	return h
}

// resolveInstancePath resolves path to a *object.Instance, used by
// FieldAssignment and MethodCall to find the receiver.
func resolveInstancePath(closure *object.Closure, path []string, pos token.Position) *object.Instance {
	h := resolvePath(closure, path, pos)
	inst, ok := h.Value.(*object.Instance)
	if !ok {
		panic(werrors.NewRuntimeErrorf(pos, "expected a class instance, got %s", h.Value.Kind()))
	}
	return inst
}

// Assignment evaluates Rhs and binds Name to the result in the
// current closure, overwriting any existing binding. While Rhs runs it
// records Name as ctx.SelfName, a one-shot hint NewInstance consumes
// (spec §9's "self name" mechanism), so in `x = Point(...)` the
// constructor's argument expressions already see `x` bound to the new
// instance. The hint is cleared once Rhs has been evaluated.
type Assignment struct {
	Pos  token.Position
	Name string
	Rhs  object.Node
}

func (a *Assignment) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	ctx.SelfName = a.Name
	val := a.Rhs.Execute(closure, ctx)
	ctx.SelfName = ""
	closure.Set(a.Name, val)
	ctx.Trace("Assignment", a.Pos, val)
	return val
}

// FieldAssignment resolves ObjectPath to a class-instance, evaluates
// Rhs, and stores the result under Field on that instance, overwriting
// any previous value.
type FieldAssignment struct {
	Pos        token.Position
	ObjectPath []string
	Field      string
	Rhs        object.Node
}

func (f *FieldAssignment) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	inst := resolveInstancePath(closure, f.ObjectPath, f.Pos)
	val := f.Rhs.Execute(closure, ctx)
	inst.SetField(f.Field, val)
	ctx.Trace("FieldAssignment", f.Pos, val)
	return val
}
