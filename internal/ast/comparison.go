package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/werrors"
)

// CompareOp identifies one of the six comparison operators. Each
// wraps one of the comparator functors in object's built-ins (spec
// C7); NotEqual/Greater/LessOrEqual/GreaterOrEqual are defined in
// terms of Equal and Less there, not re-derived here.
type CompareOp int

const (
	CmpEqual CompareOp = iota
	CmpNotEqual
	CmpLess
	CmpGreater
	CmpLessOrEqual
	CmpGreaterOrEqual
)

// Comparison evaluates Left and Right and applies Op, always
// producing a Bool.
type Comparison struct {
	Pos         token.Position
	Op          CompareOp
	Left, Right object.Node
}

func (c *Comparison) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	left := c.Left.Execute(closure, ctx)
	right := c.Right.Execute(closure, ctx)

	var (
		result bool
		err    error
	)
	switch c.Op {
	case CmpEqual:
		result, err = object.Equal(left, right, ctx)
	case CmpNotEqual:
		result, err = object.NotEqual(left, right, ctx)
	case CmpLess:
		result, err = object.Less(left, right, ctx)
	case CmpGreater:
		result, err = object.Greater(left, right, ctx)
	case CmpLessOrEqual:
		result, err = object.LessOrEqual(left, right, ctx)
	case CmpGreaterOrEqual:
		result, err = object.GreaterOrEqual(left, right, ctx)
	}
	if err != nil {
		panic(werrors.NewRuntimeError(c.Pos, err.Error()))
	}

	h := object.Own(object.Bool(result))
	ctx.Trace("Comparison", c.Pos, h)
	return h
}
