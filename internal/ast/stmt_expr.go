package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

// ExpressionStatement wraps an expression used as a statement (e.g. a
// bare method call for its side effects), discarding its value. This
// is not one of spec's named node kinds — it exists so the CLI's
// parser (SPEC_FULL's supplemented feature) has somewhere to put a
// top-level expression that is syntactically a statement.
type ExpressionStatement struct {
	Pos  token.Position
	Expr object.Node
}

func (e *ExpressionStatement) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	e.Expr.Execute(closure, ctx)
	result := object.Own(object.None{})
	ctx.Trace("ExpressionStatement", e.Pos, result)
	return result
}
