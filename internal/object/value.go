// Package object implements the runtime value model (spec C3/C4): a
// closed set of tagged value kinds, shared value holders, class and
// method tables with inheritance, and the lexical closures and
// execution context threaded through evaluation.
//
// Node, the AST execution contract (spec C5), is declared here rather
// than in package ast to avoid an import cycle: Class and Method need
// a method body type, and the evaluator (package ast) needs Value,
// Holder, Closure and Context. Declaring the interface at this end and
// implementing it in ast keeps object self-contained.
package object

import (
	"strconv"
)

// Kind tags the closed set of runtime value variants.
type Kind int

const (
	NoneKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ClassKind
	InstanceKind
)

func (k Kind) String() string {
	switch k {
	case NoneKind:
		return "None"
	case BoolKind:
		return "Bool"
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	case ClassKind:
		return "Class"
	case InstanceKind:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// Value is satisfied by every runtime value kind. Implementations are
// None, Bool, Number, String, *Class and *Instance — a closed set, so
// callers type-switch rather than extend via embedding.
type Value interface {
	Kind() Kind
	// IsTrue is the boolean coercion used by conditionals and logical
	// operators.
	IsTrue() bool
	// Print renders the value's built-in textual form. For *Instance
	// this is a stable debug form; callers that want __str__ dispatch
	// go through the evaluator's Stringify, not this method.
	Print() string
}

// None is the language's absence value (distinct from "no holder" —
// see Holder's doc comment).
type None struct{}

func (None) Kind() Kind   { return NoneKind }
func (None) IsTrue() bool { return false }
func (None) Print() string {
	return "None"
}

// Bool wraps a boolean scalar.
type Bool bool

func (b Bool) Kind() Kind    { return BoolKind }
func (b Bool) IsTrue() bool  { return bool(b) }
func (b Bool) Print() string {
	if b {
		return "True"
	}
	return "False"
}

// Number wraps a signed 64-bit integer scalar.
type Number int64

func (n Number) Kind() Kind   { return NumberKind }
func (n Number) IsTrue() bool { return n != 0 }
func (n Number) Print() string {
	return strconv.FormatInt(int64(n), 10)
}

// String wraps a string scalar.
type String string

func (s String) Kind() Kind    { return StringKind }
func (s String) IsTrue() bool  { return len(s) > 0 }
func (s String) Print() string { return string(s) }
