package ast

import (
	"bytes"
	"testing"

	"github.com/wisplang/wisp/internal/object"
)

func run(t *testing.T, stmts []object.Node) (string, *object.Closure) {
	t.Helper()
	var buf bytes.Buffer
	closure := object.NewClosure()
	ctx := object.NewContext(&buf)
	for _, s := range stmts {
		s.Execute(closure, ctx)
	}
	return buf.String(), closure
}

func TestScenario1SimpleAssignment(t *testing.T) {
	// x = 4; print x
	stmts := []object.Node{
		&Assignment{Name: "x", Rhs: &NumberLiteral{Value: 4}},
		&Print{Args: []object.Node{&VariableValue{Path: []string{"x"}}}},
	}
	out, _ := run(t, stmts)
	if out != "4\n" {
		t.Fatalf("got %q, want %q", out, "4\n")
	}
}

func TestScenario2StringConcat(t *testing.T) {
	// x = 'hello'; y = 'world'; print x + ' ' + y
	stmts := []object.Node{
		&Assignment{Name: "x", Rhs: &StringLiteral{Value: "hello"}},
		&Assignment{Name: "y", Rhs: &StringLiteral{Value: "world"}},
		&Print{Args: []object.Node{
			&Arithmetic{Op: Add, Left: &Arithmetic{
				Op:   Add,
				Left: &VariableValue{Path: []string{"x"}},
				Right: &StringLiteral{Value: " "},
			}, Right: &VariableValue{Path: []string{"y"}}},
		}},
	}
	out, _ := run(t, stmts)
	if out != "hello world\n" {
		t.Fatalf("got %q, want %q", out, "hello world\n")
	}
}

func TestScenario4ComparisonChain(t *testing.T) {
	// print 1 == 1, 1 != 2, 2 < 3, 3 <= 3
	stmts := []object.Node{
		&Print{Args: []object.Node{
			&Comparison{Op: CmpEqual, Left: &NumberLiteral{Value: 1}, Right: &NumberLiteral{Value: 1}},
			&Comparison{Op: CmpNotEqual, Left: &NumberLiteral{Value: 1}, Right: &NumberLiteral{Value: 2}},
			&Comparison{Op: CmpLess, Left: &NumberLiteral{Value: 2}, Right: &NumberLiteral{Value: 3}},
			&Comparison{Op: CmpLessOrEqual, Left: &NumberLiteral{Value: 3}, Right: &NumberLiteral{Value: 3}},
		}},
	}
	out, _ := run(t, stmts)
	if out != "True True True True\n" {
		t.Fatalf("got %q, want %q", out, "True True True True\n")
	}
}

func TestScenario5IfElse(t *testing.T) {
	// if 0: print 'a' else: print 'b'
	stmts := []object.Node{
		&IfElse{
			Cond: &NumberLiteral{Value: 0},
			Then: &Print{Args: []object.Node{&StringLiteral{Value: "a"}}},
			Else: &Print{Args: []object.Node{&StringLiteral{Value: "b"}}},
		},
	}
	out, _ := run(t, stmts)
	if out != "b\n" {
		t.Fatalf("got %q, want %q", out, "b\n")
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on division by zero")
		}
	}()
	closure := object.NewClosure()
	ctx := object.NewContext(&bytes.Buffer{})
	(&Arithmetic{Op: Div, Left: &NumberLiteral{Value: 1}, Right: &NumberLiteral{Value: 0}}).Execute(closure, ctx)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on undefined variable")
		}
	}()
	closure := object.NewClosure()
	ctx := object.NewContext(&bytes.Buffer{})
	(&VariableValue{Path: []string{"nope"}}).Execute(closure, ctx)
}

func TestFieldAssignmentAndDottedAccess(t *testing.T) {
	cls := object.NewClass("Box", nil)
	closure := object.NewClosure()
	closure.Set("Box", object.Own(cls))
	ctx := object.NewContext(&bytes.Buffer{})

	(&Assignment{Name: "b", Rhs: &NewInstance{ClassName: "Box"}}).Execute(closure, ctx)
	(&FieldAssignment{ObjectPath: []string{"b"}, Field: "x", Rhs: &NumberLiteral{Value: 7}}).Execute(closure, ctx)

	got := (&VariableValue{Path: []string{"b", "x"}}).Execute(closure, ctx)
	if got.Value.(object.Number) != 7 {
		t.Fatalf("got %v, want 7", got.Value)
	}
}

func TestLogicalOperatorsAndNot(t *testing.T) {
	closure := object.NewClosure()
	ctx := object.NewContext(&bytes.Buffer{})

	and := (&Logical{Op: LogicalAnd, Left: &BoolLiteral{Value: true}, Right: &BoolLiteral{Value: false}}).Execute(closure, ctx)
	if object.IsTrue(and) {
		t.Error("true and false should be false")
	}
	or := (&Logical{Op: LogicalOr, Left: &BoolLiteral{Value: true}, Right: &BoolLiteral{Value: false}}).Execute(closure, ctx)
	if !object.IsTrue(or) {
		t.Error("true or false should be true")
	}
	not := (&Not{Operand: &BoolLiteral{Value: false}}).Execute(closure, ctx)
	if !object.IsTrue(not) {
		t.Error("not false should be true")
	}
}
