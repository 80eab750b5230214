package ast

import (
	"fmt"

	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

// renderHolder is the print form shared by Print and Stringify: it
// extends object.Print with ClassInstance dunder dispatch — a
// *object.Instance prints by invoking __str__() if one exists with
// zero parameters, otherwise it falls back to object.Print's stable
// debug form. This lives in package ast, not object, because it needs
// Instance.Call, which in turn needs a Context to run the method body
// in.
func renderHolder(h *object.Holder, ctx *object.Context) string {
	if h == nil {
		return "None"
	}
	inst, ok := h.Value.(*object.Instance)
	if !ok {
		return object.Print(h)
	}
	if !inst.HasMethod("__str__", 0) {
		return object.Print(h)
	}
	result, err := inst.Call("__str__", nil, ctx)
	if err != nil {
		return object.Print(h)
	}
	return object.Print(result)
}

// Print evaluates each argument left-to-right, prints it to the
// context's output stream, and separates arguments with a single
// space. A trailing newline is always emitted, even for zero
// arguments.
type Print struct {
	Pos  token.Position
	Args []object.Node
}

func (p *Print) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	for i, arg := range p.Args {
		if i > 0 {
			fmt.Fprint(ctx.Out, " ")
		}
		fmt.Fprint(ctx.Out, renderHolder(arg.Execute(closure, ctx), ctx))
	}
	fmt.Fprintln(ctx.Out)

	result := object.Own(object.None{})
	ctx.Trace("Print", p.Pos, result)
	return result
}

// Stringify evaluates X and returns a String value equal to what
// Print would emit for a single argument, without the trailing
// newline.
type Stringify struct {
	Pos token.Position
	X   object.Node
}

func (s *Stringify) Execute(closure *object.Closure, ctx *object.Context) *object.Holder {
	val := s.X.Execute(closure, ctx)
	result := object.Own(object.String(renderHolder(val, ctx)))
	ctx.Trace("Stringify", s.Pos, result)
	return result
}
