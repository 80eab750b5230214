package ast

import (
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

// IfElse evaluates Cond, coerces it with IsTrue, and executes the
// chosen branch. A missing Else with a false condition yields None.
type IfElse struct {
	Pos  token.Position
	Cond object.Node
	Then object.Node
	Else object.Node // nil if there is no else branch
}

func (i *IfElse) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	cond := i.Cond.Execute(closure, ctx)
	var result *object.Holder
	if object.IsTrue(cond) {
		result = i.Then.Execute(closure, ctx)
	} else if i.Else != nil {
		result = i.Else.Execute(closure, ctx)
	} else {
		result = object.Own(object.None{})
	}
	ctx.Trace("IfElse", i.Pos, result)
	return result
}

// Compound evaluates statements in order, discarding their results,
// and always yields None.
type Compound struct {
	Pos   token.Position
	Stmts []object.Node
}

func (c *Compound) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	for _, stmt := range c.Stmts {
		stmt.Execute(closure, ctx)
	}
	result := object.Own(object.None{})
	ctx.Trace("Compound", c.Pos, result)
	return result
}

// returnSignal is the non-local control-flow value Return panics with
// and MethodBody recovers. It never escapes a MethodBody frame, and
// is not a RuntimeError: a returnSignal reaching the top of the
// evaluator (a Return used outside any method body) is a programmer
// error in the AST construction, not a language-level runtime error.
type returnSignal struct {
	value *object.Holder
}

// Return evaluates Expr and unwinds non-locally out of the innermost
// enclosing MethodBody with the result, skipping any remaining
// statements in between without running their side effects.
type Return struct {
	Pos  token.Position
	Expr object.Node
}

func (r *Return) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	val := r.Expr.Execute(closure, ctx)
	ctx.Trace("Return", r.Pos, val)
	panic(returnSignal{value: val})
}

// MethodBody executes Body and catches a Return unwind, yielding its
// payload. A body that completes without hitting Return yields None.
type MethodBody struct {
	Pos  token.Position
	Body object.Node
}

func (m *MethodBody) Execute(closure *object.Closure, ctx *object.Context) (result *object.Holder) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(returnSignal); ok {
				result = sig.value
				ctx.Trace("MethodBody", m.Pos, result)
				return
			}
			panic(r) // not ours to handle: RuntimeError or similar propagates
		}
	}()
	m.Body.Execute(closure, ctx)
	result = object.Own(object.None{})
	ctx.Trace("MethodBody", m.Pos, result)
	return result
}
