package object

// Method is a named, ordered list of formal parameters plus a body
// (an AST node). Methods are immutable once declared — the evaluator
// never rewrites a Method's Params at call time; instead each call
// builds a fresh Closure binding formals to actuals (spec §9's
// "method lookup correctness" note).
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// Arity is the number of formal parameters, used for arity-sensitive
// lookup.
func (m *Method) Arity() int { return len(m.Params) }

// Class stores a class's own methods in declaration order plus a
// by-name-and-arity index for O(1) local lookup, and an optional
// parent for single inheritance.
type Class struct {
	Name    string
	Parent  *Class
	Methods []*Method

	byArity map[string]map[int]*Method
}

// NewClass constructs an empty class named name with optional parent.
func NewClass(name string, parent *Class) *Class {
	return &Class{
		Name:    name,
		Parent:  parent,
		byArity: make(map[string]map[int]*Method),
	}
}

func (c *Class) Kind() Kind    { return ClassKind }
func (c *Class) IsTrue() bool  { return false }
func (c *Class) Print() string { return "Class <" + c.Name + ">" }

// AddMethod appends m to the class's own method list and indexes it by
// name and arity, in declaration order.
func (c *Class) AddMethod(m *Method) {
	c.Methods = append(c.Methods, m)
	byName, ok := c.byArity[m.Name]
	if !ok {
		byName = make(map[int]*Method)
		c.byArity[m.Name] = byName
	}
	byName[m.Arity()] = m
}

// Lookup resolves method name with exactly arity formal parameters,
// walking C, parent(C), parent(parent(C)), ... and returning the first
// match. A method is present with k args only if both name and arity
// match — this is spec's arity-sensitive lookup.
func (c *Class) Lookup(name string, arity int) (*Method, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if byName, ok := cls.byArity[name]; ok {
			if m, ok := byName[arity]; ok {
				return m, true
			}
		}
	}
	return nil, false
}
