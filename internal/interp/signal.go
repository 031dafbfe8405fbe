package interp

// SignalKind distinguishes the non-error control-flow signals that
// unwind through block/statement execution (spec.md §9: "Return, Exit,
// and recoverable Error are distinct signals. Only Error is captured by
// TRY"), grounded on the teacher's runtime.ControlFlow/ControlFlowKind
// narrowed to the two signals this language has (no Break/Continue).
type SignalKind int

const (
	SignalNone SignalKind = iota
	SignalReturn
	SignalExit
)

// Signal carries an in-flight Return or Exit unwinding a call or the
// top-level program. A nil *Signal means normal completion.
type Signal struct {
	Kind  SignalKind
	Value Value // meaningful only for SignalReturn
}

// exitSignal crosses a (Value, error)-shaped call boundary (procedure
// and method calls) carrying an EXIT() that must keep unwinding all the
// way to the top level. TRY/CATCH recognizes and re-propagates it
// instead of catching it, per spec.md §7: "EXIT() and RETURN are
// control-flow signals, not errors, and are not caught by TRY."
type exitSignal struct{}

func (exitSignal) Error() string { return "EXIT" }

var errExit error = exitSignal{}

// isExitSignal reports whether err is the EXIT() unwinding marker.
func isExitSignal(err error) bool {
	_, ok := err.(exitSignal)
	return ok
}
