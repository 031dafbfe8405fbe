package interp

import (
	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
)

// evalTryCatch runs the TRY body; a recoverable *errors.ScriptError is
// bound as a String to CatchName and the handler block runs in its
// place. Any other error — notably the EXIT() unwinding marker — is not
// an error TRY recognizes and passes straight through unchanged
// (spec.md §7: "EXIT() and RETURN are control-flow signals, not
// errors, and are not caught by TRY").
func (it *Interpreter) evalTryCatch(n *ast.TryCatch, env *Environment) (*Signal, error) {
	sig, err := it.evalBlock(n.Body, env)
	if err == nil {
		return sig, nil
	}

	scriptErr, ok := err.(*errors.ScriptError)
	if !ok {
		return nil, err
	}

	catchEnv := NewEnclosedEnvironment(env)
	catchEnv.Define(n.CatchName, &StringValue{Value: scriptErr.CatchMessage()})
	return it.evalBlock(n.Handler, catchEnv)
}
