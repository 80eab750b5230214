package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/werrors"
)

// ArithOp identifies one of the four arithmetic operators.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mult
	Div
)

// Arithmetic evaluates Left and Right and applies Op. Number op Number
// yields Number (Div by zero is a runtime error; integer division
// truncates toward zero). Add additionally concatenates two Strings,
// and additionally dispatches to __add__(other) when Left evaluates
// to a class instance with such a method. Any other combination is a
// runtime error.
type Arithmetic struct {
	Pos         token.Position
	Op          ArithOp
	Left, Right object.Node
}

func (a *Arithmetic) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	left := a.Left.Execute(closure, ctx)
	right := a.Right.Execute(closure, ctx)

	result := a.apply(left, right, ctx)
	ctx.Trace("Arithmetic", a.Pos, result)
	return result
}

func (a *Arithmetic) apply(left, right *object.Holder, ctx *object.Context) *object.Holder {
	if ln, ok := valueAs[object.Number](left); ok {
		if rn, ok := valueAs[object.Number](right); ok {
			return object.Own(a.applyNumbers(ln, rn))
		}
	}
	if a.Op == Add {
		if ls, ok := valueAs[object.String](left); ok {
			if rs, ok := valueAs[object.String](right); ok {
				return object.Own(ls + rs)
			}
		}
		if !left.IsNone() {
			if inst, ok := left.Value.(*object.Instance); ok && inst.HasMethod("__add__", 1) {
				result, err := inst.Call("__add__", []*object.Holder{right}, ctx)
				if err != nil {
					panic(werrors.NewRuntimeError(a.Pos, err.Error()))
				}
				return result
			}
		}
	}
	panic(werrors.NewRuntimeErrorf(a.Pos, "unsupported operand kinds for arithmetic: %s and %s", kindOf(left), kindOf(right)))
}

func (a *Arithmetic) applyNumbers(l, r object.Number) object.Number {
	switch a.Op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mult:
		return l * r
	case Div:
		if r == 0 {
			panic(werrors.NewRuntimeError(a.Pos, "division by zero"))
		}
		return l / r
	default:
		panic(werrors.NewRuntimeErrorf(a.Pos, "unknown arithmetic operator"))
	}
}

func valueAs[T object.Value](h *object.Holder) (T, bool) {
	var zero T
	if h.IsNone() {
		return zero, false
	}
	v, ok := h.Value.(T)
	return v, ok
}

func kindOf(h *object.Holder) object.Kind {
	if h.IsNone() {
		return object.NoneKind
	}
	return h.Value.Kind()
}
