package ast

import (
	"bytes"
	"testing"

	"github.com/wisplang/wisp/internal/object"
)

// TestScenario3PointClass builds the Point example from spec §8 by
// hand, the way a parser would: a class with __init__ and __str__,
// instantiation, and a print of the resulting instance.
//
//	class Point:
//	  def __init__(a, b):
//	    self.x = a
//	    self.y = b
//	  def __str__():
//	    return str(self.x) + ',' + str(self.y)
//	p = Point(3, 4)
//	print p
func TestScenario3PointClass(t *testing.T) {
	point := object.NewClass("Point", nil)
	point.AddMethod(&object.Method{
		Name:   "__init__",
		Params: []string{"a", "b"},
		Body: &MethodBody{Body: &Compound{Stmts: []object.Node{
			&FieldAssignment{ObjectPath: []string{"self"}, Field: "x", Rhs: &VariableValue{Path: []string{"a"}}},
			&FieldAssignment{ObjectPath: []string{"self"}, Field: "y", Rhs: &VariableValue{Path: []string{"b"}}},
		}}},
	})
	point.AddMethod(&object.Method{
		Name: "__str__",
		Body: &MethodBody{Body: &Return{Expr: &Arithmetic{
			Op:   Add,
			Left: &Stringify{X: &VariableValue{Path: []string{"self", "x"}}},
			Right: &Arithmetic{
				Op:    Add,
				Left:  &StringLiteral{Value: ","},
				Right: &Stringify{X: &VariableValue{Path: []string{"self", "y"}}},
			},
		}}},
	})

	closure := object.NewClosure()
	var buf bytes.Buffer
	ctx := object.NewContext(&buf)

	(&ClassDefinition{Class: point}).Execute(closure, ctx)
	(&Assignment{Name: "p", Rhs: &NewInstance{ClassName: "Point", Args: []object.Node{
		&NumberLiteral{Value: 3}, &NumberLiteral{Value: 4},
	}}}).Execute(closure, ctx)
	(&Print{Args: []object.Node{&VariableValue{Path: []string{"p"}}}}).Execute(closure, ctx)

	if buf.String() != "3,4\n" {
		t.Fatalf("got %q, want %q", buf.String(), "3,4\n")
	}
}

// TestScenario6EqDunder builds:
//
//	class C:
//	  def __eq__(o):
//	    return True
//	a = C()
//	b = C()
//	print a == b
func TestScenario6EqDunder(t *testing.T) {
	c := object.NewClass("C", nil)
	c.AddMethod(&object.Method{
		Name:   "__eq__",
		Params: []string{"o"},
		Body:   &MethodBody{Body: &Return{Expr: &BoolLiteral{Value: true}}},
	})

	closure := object.NewClosure()
	var buf bytes.Buffer
	ctx := object.NewContext(&buf)

	(&ClassDefinition{Class: c}).Execute(closure, ctx)
	(&Assignment{Name: "a", Rhs: &NewInstance{ClassName: "C"}}).Execute(closure, ctx)
	(&Assignment{Name: "b", Rhs: &NewInstance{ClassName: "C"}}).Execute(closure, ctx)
	(&Print{Args: []object.Node{
		&Comparison{Op: CmpEqual, Left: &VariableValue{Path: []string{"a"}}, Right: &VariableValue{Path: []string{"b"}}},
	}}).Execute(closure, ctx)

	if buf.String() != "True\n" {
		t.Fatalf("got %q, want %q", buf.String(), "True\n")
	}
}

func TestMethodCallOnNonInstanceYieldsNone(t *testing.T) {
	closure := object.NewClosure()
	ctx := object.NewContext(&bytes.Buffer{})
	result := (&MethodCall{Receiver: &NumberLiteral{Value: 1}, Name: "foo"}).Execute(closure, ctx)
	if !result.IsNone() {
		t.Errorf("expected None, got %v", result.Value)
	}
}

func TestMethodCallArityMismatchYieldsNone(t *testing.T) {
	cls := object.NewClass("C", nil)
	cls.AddMethod(&object.Method{Name: "m", Params: []string{"x"}, Body: &MethodBody{Body: &Return{Expr: &NumberLiteral{Value: 1}}}})
	closure := object.NewClosure()
	closure.Set("c", object.Own(object.NewInstance(cls)))
	ctx := object.NewContext(&bytes.Buffer{})

	result := (&MethodCall{Receiver: &VariableValue{Path: []string{"c"}}, Name: "m"}).Execute(closure, ctx)
	if !result.IsNone() {
		t.Errorf("expected None for arity mismatch, got %v", result.Value)
	}
}

func TestRecursiveConstructorSeesSelfName(t *testing.T) {
	// x = Counter(5, x) where __init__ stashes its second argument under
	// a field — exercising that Assignment's SelfName hint binds x to the
	// instance being built before its constructor arguments are
	// evaluated and __init__ runs (spec §9).
	cls := object.NewClass("Counter", nil)
	cls.AddMethod(&object.Method{
		Name:   "__init__",
		Params: []string{"n", "me"},
		Body: &MethodBody{Body: &Compound{Stmts: []object.Node{
			&FieldAssignment{ObjectPath: []string{"self"}, Field: "n", Rhs: &VariableValue{Path: []string{"n"}}},
			&FieldAssignment{ObjectPath: []string{"self"}, Field: "me", Rhs: &VariableValue{Path: []string{"me"}}},
		}}},
	})
	closure := object.NewClosure()
	closure.Set("Counter", object.Own(cls))
	ctx := object.NewContext(&bytes.Buffer{})

	(&Assignment{Name: "x", Rhs: &NewInstance{ClassName: "Counter", Args: []object.Node{&NumberLiteral{Value: 5}, &VariableValue{Path: []string{"x"}}}}}).Execute(closure, ctx)

	bound, ok := closure.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if ctx.SelfName != "" {
		t.Errorf("SelfName hint should be consumed (one-shot), got %q", ctx.SelfName)
	}
	inst := bound.Value.(*object.Instance)
	field, _ := inst.GetField("n")
	if field.Value.(object.Number) != 5 {
		t.Errorf("got %v, want 5", field.Value)
	}
	me, _ := inst.GetField("me")
	if me.Value != object.Value(inst) {
		t.Errorf("__init__ saw x = %v, want the instance under construction", me.Value)
	}
}
