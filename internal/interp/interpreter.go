package interp

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
	"github.com/cwbudde/fplc/internal/parser"
)

// ImportResolver fetches the source text of a named unit on behalf of
// IMPORT (spec.md §4.4); it is supplied by the host, never the core.
type ImportResolver func(name string) (string, error)

// BuiltinFunc implements one entry of the builtin registry (spec.md
// §4.4): it receives already-evaluated arguments, the call site's
// position for error reporting, and the calling environment — needed
// by EVAL, which re-enters the pipeline sharing the caller's scope.
type BuiltinFunc func(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error)

// Interpreter is a single, independent evaluation of one program: its
// own global frame, RNG, builtin bindings, and output sink (spec.md §9:
// "Each call to run constructs its own environment, RNG, builtin
// registry binding, and output sink. No process-global state"),
// grounded on the teacher's interp.Interpreter at a far smaller scale.
type Interpreter struct {
	Global   *Environment
	Stdout   io.Writer
	Stdin    *bufio.Reader
	Resolver ImportResolver
	Tracer   *Tracer

	imported map[string]bool
	rand     *rand.Rand
}

// New creates an Interpreter ready to Run a program. stdin/stdout are
// the host's collaborators (spec.md §6); resolver may be nil if the
// program never IMPORTs.
func New(stdout io.Writer, stdin io.Reader, resolver ImportResolver) *Interpreter {
	return &Interpreter{
		Global:   NewEnvironment(),
		Stdout:   stdout,
		Stdin:    bufio.NewReader(stdin),
		Resolver: resolver,
		imported: make(map[string]bool),
		rand:     rand.New(rand.NewSource(1)),
	}
}

// ExitStatus is the outcome of Run: the process exit code and, for an
// uncaught error, the rendered message (spec.md §6).
type ExitStatus struct {
	Code    int
	Message string
}

// Run parses and evaluates source against this Interpreter's global
// frame, the core's single pure entry point (spec.md §6).
func (it *Interpreter) Run(source string) ExitStatus {
	p, err := parser.New(source)
	if err != nil {
		return it.uncaught(err, source)
	}
	tree, err := p.ParseProgram()
	if err != nil {
		return it.uncaught(err, source)
	}

	_, err = it.evalProgram(tree, it.Global)
	if err != nil {
		if isExitSignal(err) {
			return ExitStatus{Code: 0}
		}
		return it.uncaught(err, source)
	}
	return ExitStatus{Code: 0}
}

func (it *Interpreter) uncaught(err error, source string) ExitStatus {
	if se, ok := err.(*errors.ScriptError); ok {
		return ExitStatus{Code: 1, Message: errors.FormatWithSource(se, source, "")}
	}
	return ExitStatus{Code: 1, Message: err.Error()}
}

// evalProgram runs a flat statement list against env, stopping early on
// the first Return/Exit signal or error (used for both the top-level
// program and IMPORTed unit bodies, which execute in the global scope).
func (it *Interpreter) evalProgram(prog *ast.Program, env *Environment) (*Signal, error) {
	for _, stmt := range prog.Statements {
		sig, err := it.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func (it *Interpreter) trace(format string, args ...any) {
	if it.Tracer != nil {
		it.Tracer.Printf(format, args...)
	}
}
