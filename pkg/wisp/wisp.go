// Package wisp is the public embedding API: construct an Engine,
// optionally register config/tracing options, and Eval source text.
// It wires internal/lexer, internal/parser, internal/ast and
// internal/object together the way the teacher's pkg/dwscript wires
// its lexer/parser/interp packages behind a small functional-options
// constructor.
package wisp

import (
	"bytes"
	"io"

	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/parser"
	"github.com/wisplang/wisp/internal/trace"
)

// Result is the outcome of an Eval call.
type Result struct {
	Output string
	Trace  *trace.Recorder // nil unless tracing was enabled
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithTrace enables JSON step tracing (SPEC_FULL's ambient trace
// facility); Result.Trace is populated only when this is set.
func WithTrace(enabled bool) Option {
	return func(e *Engine) { e.trace = enabled }
}

// WithConfig overrides the engine's non-semantic configuration,
// otherwise config.Default() is used.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// Engine evaluates wisp source text. The zero value is not usable;
// construct one with New.
type Engine struct {
	out   io.Writer
	trace bool
	cfg   config.Config
}

// New constructs an Engine with opts applied over sensible defaults
// (output discarded, tracing off, default config).
func New(opts ...Option) *Engine {
	e := &Engine{out: io.Discard, cfg: config.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetOutput redirects where Eval prints program output.
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

// Eval lexes, parses, and executes src, returning its printed output.
// A lex or parse error is returned as-is; a runtime error (panicked by
// the evaluator, per spec C5/C7) is recovered here and returned as a
// plain error, since Engine is the top-level embedder boundary the
// evaluator's panic/recover design assumes exists.
func (e *Engine) Eval(src string) (result Result, err error) {
	l, lexErr := lexer.New(src)
	if lexErr != nil {
		return Result{}, lexErr
	}
	prog, parseErr := parser.New(l).ParseProgram()
	if parseErr != nil {
		return Result{}, parseErr
	}

	var buf bytes.Buffer
	ctx := object.NewContext(io.MultiWriter(e.out, &buf))
	ctx.MaxCallDepth = e.cfg.MaxCallDepth

	var recorder *trace.Recorder
	if e.trace {
		recorder = trace.NewRecorder()
		ctx.Tracer = recorder
	}

	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
		}
	}()

	prog.Execute(object.NewClosure(), ctx)
	return Result{Output: buf.String(), Trace: recorder}, nil
}

func toError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return &evalPanic{r}
}

// evalPanic wraps a non-error panic value (defensive: every runtime
// failure in package ast panics a *werrors.RuntimeError, which already
// satisfies error) so Eval's signature never needs to panic itself.
type evalPanic struct{ value any }

func (p *evalPanic) Error() string {
	if s, ok := p.value.(string); ok {
		return s
	}
	return "wisp: unexpected evaluation panic"
}
