package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wisplang/wisp/internal/ast"
	"github.com/wisplang/wisp/internal/object"
)

func TestRecordBuildsQueryableJSON(t *testing.T) {
	rec := NewRecorder()
	closure := object.NewClosure()
	ctx := object.NewContext(&bytes.Buffer{})
	ctx.Tracer = rec

	(&ast.Assignment{Name: "x", Rhs: &ast.NumberLiteral{Value: 4}}).Execute(closure, ctx)
	(&ast.Print{Args: []object.Node{&ast.VariableValue{Path: []string{"x"}}}}).Execute(closure, ctx)

	if len(rec.Lines()) != 4 {
		t.Fatalf("got %d lines, want 4 (NumberLiteral, Assignment, VariableValue, Print)", len(rec.Lines()))
	}
	if got := rec.Field(0, "node"); got != "NumberLiteral" {
		t.Errorf("line 0 node = %q, want NumberLiteral", got)
	}
	if got := rec.Field(1, "node"); got != "Assignment" {
		t.Errorf("line 1 node = %q, want Assignment", got)
	}
	if got := rec.Field(1, "result"); got != "4" {
		t.Errorf("line 1 result = %q, want 4", got)
	}
}

func TestWriteToJoinsLinesWithTrailingNewline(t *testing.T) {
	rec := NewRecorder()
	closure := object.NewClosure()
	ctx := object.NewContext(&bytes.Buffer{})
	ctx.Tracer = rec

	(&ast.Print{Args: nil}).Execute(closure, ctx)

	var buf bytes.Buffer
	if _, err := rec.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("expected trailing newline, got %q", buf.String())
	}
}

func TestFieldOutOfRangeReturnsEmpty(t *testing.T) {
	rec := NewRecorder()
	if got := rec.Field(5, "node"); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
