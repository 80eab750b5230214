package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

// LogicalOp identifies And or Or.
type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

// Logical evaluates both operands and produces a Bool via IsTrue
// coercion. The source language does not mandate short-circuiting, so
// both sides are always evaluated; this keeps the node total and safe
// even though And/Or are not lazy.
type Logical struct {
	Pos         token.Position
	Op          LogicalOp
	Left, Right object.Node
}

func (l *Logical) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	left := l.Left.Execute(closure, ctx)
	right := l.Right.Execute(closure, ctx)

	var result bool
	switch l.Op {
	case LogicalAnd:
		result = object.IsTrue(left) && object.IsTrue(right)
	case LogicalOr:
		result = object.IsTrue(left) || object.IsTrue(right)
	}

	h := object.Own(object.Bool(result))
	ctx.Trace("Logical", l.Pos, h)
	return h
}

// Not produces the Bool negation of Operand's IsTrue coercion.
type Not struct {
	Pos     token.Position
	Operand object.Node
}

func (n *Not) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	operand := n.Operand.Execute(closure, ctx)
	h := object.Own(object.Bool(!object.IsTrue(operand)))
	ctx.Trace("Not", n.Pos, h)
	return h
}
