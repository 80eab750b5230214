// Package trace implements object.Tracer as a JSON step recorder.
// Each recorded event is a single JSON object built field-by-field
// with tidwall/sjson rather than marshalled from a Go struct, so a
// consumer can query individual fields back out with tidwall/gjson
// without ever unmarshalling into a typed value.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

var _ object.Tracer = (*Recorder)(nil)

// Recorder accumulates one JSON line per Record call.
type Recorder struct {
	lines []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one JSON object describing a single node's
// evaluation: its kind, source position, and a printed form of its
// result.
func (r *Recorder) Record(node string, pos token.Position, result *object.Holder) {
	line := "{}"
	line, _ = sjson.Set(line, "node", node)
	line, _ = sjson.Set(line, "line", pos.Line)
	line, _ = sjson.Set(line, "column", pos.Column)
	line, _ = sjson.Set(line, "result", renderResult(result))
	r.lines = append(r.lines, line)
}

func renderResult(h *object.Holder) string {
	if h == nil || h.IsNone() {
		return "None"
	}
	return object.Print(h)
}

// Lines returns the recorded JSON lines in recording order.
func (r *Recorder) Lines() []string {
	return r.lines
}

// WriteTo writes every recorded line to w, one per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(r.lines, "\n"))
	if err == nil && len(r.lines) > 0 {
		var extra int
		extra, err = io.WriteString(w, "\n")
		n += extra
	}
	return int64(n), err
}

// Field queries line i for path using gjson, returning the raw string
// form of whatever value is found (or "" if absent).
func (r *Recorder) Field(i int, path string) string {
	if i < 0 || i >= len(r.lines) {
		return ""
	}
	return gjson.Get(r.lines[i], path).String()
}

// String renders the recorder for debugging as "N trace events".
func (r *Recorder) String() string {
	return fmt.Sprintf("%d trace events", len(r.lines))
}
