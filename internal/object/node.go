package object

// Node is the AST execution contract (spec C5): every statement and
// expression node evaluates itself against a closure and context and
// yields a holder. Statements that "do not return a value" yield a
// None holder; expressions yield their computed value.
type Node interface {
	Execute(closure *Closure, ctx *Context) *Holder
}
