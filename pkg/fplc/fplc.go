// Package fplc is the public, host-independent embedding surface for the
// interpreter (spec.md §6): "The core exposes a single pure entry point:
// run(source, stdin, stdout, importResolver) -> ExitStatus." Every host —
// the CLI in cmd/fplc, a future web/wasm adapter — goes through Run.
package fplc

import (
	"io"
	"strings"

	"github.com/cwbudde/fplc/internal/interp"
)

// ImportResolver fetches the source text of a named IMPORT unit. It is
// supplied by the host; the core never reads from disk or network itself
// (spec.md §6).
type ImportResolver = interp.ImportResolver

// ExitStatus is the outcome of a Run: the process exit code and, for an
// uncaught error, its rendered message (spec.md §6/§7).
type ExitStatus = interp.ExitStatus

// Options configures a single Run call. Stdout/Stdin default to nil-safe
// no-ops so a caller can omit whichever collaborator its host doesn't
// need (e.g. a headless eval that never calls INPUT()).
type Options struct {
	Stdout   io.Writer
	Stdin    io.Reader
	Resolver ImportResolver
	Trace    io.Writer // non-nil enables debug tracing, see cmd/fplc's -d flag
}

// Run parses and evaluates source once, in a fresh, fully independent
// Interpreter (spec.md §9: "Each call to run constructs its own
// environment, RNG, builtin registry binding, and output sink"). It never
// retains state across calls.
func Run(source string, opts Options) ExitStatus {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}

	it := interp.New(stdout, stdin, opts.Resolver)
	it.Tracer = interp.NewTracer(opts.Trace)
	return it.Run(source)
}
