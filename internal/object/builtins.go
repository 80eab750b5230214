// This file implements C7: the centralized, pure comparison and
// truthiness built-ins the evaluator and embedders both use. "Pure"
// here means pure with respect to the language's state — Equal and
// Less still need a Context to dispatch __eq__/__lt__ when the left
// operand is a class instance that defines them.
package object

import "fmt"

// Equal implements spec's Equal comparator: both Bool, both Number,
// both String compare with underlying ==; an Instance with __eq__(o)
// delegates to it; two absent holders are equal; any other
// combination is a runtime error.
func Equal(a, b *Holder, ctx *Context) (bool, error) {
	if a.IsNone() && b.IsNone() {
		return true, nil
	}
	if a.IsNone() || b.IsNone() {
		return false, fmt.Errorf("cannot compare None with a non-None value for equality")
	}

	switch av := a.Value.(type) {
	case Bool:
		if bv, ok := b.Value.(Bool); ok {
			return av == bv, nil
		}
	case Number:
		if bv, ok := b.Value.(Number); ok {
			return av == bv, nil
		}
	case String:
		if bv, ok := b.Value.(String); ok {
			return av == bv, nil
		}
	case *Instance:
		if av.HasMethod("__eq__", 1) {
			result, err := av.Call("__eq__", []*Holder{b}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(result), nil
		}
	}
	return false, fmt.Errorf("cannot compare %s and %s for equality", a.Value.Kind(), b.Value.Kind())
}

// Less implements spec's Less comparator: same value-kind pattern as
// Equal, with __lt__(o) delegation for instances.
func Less(a, b *Holder, ctx *Context) (bool, error) {
	if a.IsNone() || b.IsNone() {
		return false, fmt.Errorf("cannot order None values")
	}

	switch av := a.Value.(type) {
	case Number:
		if bv, ok := b.Value.(Number); ok {
			return av < bv, nil
		}
	case String:
		if bv, ok := b.Value.(String); ok {
			return av < bv, nil
		}
	case Bool:
		if bv, ok := b.Value.(Bool); ok {
			return !bool(av) && bool(bv), nil
		}
	case *Instance:
		if av.HasMethod("__lt__", 1) {
			result, err := av.Call("__lt__", []*Holder{b}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(result), nil
		}
	}
	return false, fmt.Errorf("cannot order %s and %s", a.Value.Kind(), b.Value.Kind())
}

// NotEqual is !Equal.
func NotEqual(a, b *Holder, ctx *Context) (bool, error) {
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater is !(Less || Equal).
func Greater(a, b *Holder, ctx *Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !(lt || eq), nil
}

// LessOrEqual is !Greater.
func LessOrEqual(a, b *Holder, ctx *Context) (bool, error) {
	gt, err := Greater(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterOrEqual is !Less.
func GreaterOrEqual(a, b *Holder, ctx *Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
