package interp

import (
	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
)

func (it *Interpreter) evalClassDecl(n *ast.ClassDecl, env *Environment) (*Signal, error) {
	class := &ClassValue{Name: n.Name, Methods: make(map[string]*ProcedureValue, len(n.Methods))}
	for _, m := range n.Methods {
		class.Methods[m.Name] = &ProcedureValue{Name: m.Name, Params: m.Params, Body: m.Body, Env: env}
	}
	env.Define(n.Name, class)
	return nil, nil
}

// instantiate creates an Instance with an empty field map bound to
// class (spec.md §4.3: "ClassName() creates an Instance with an empty
// field map bound to the class").
func (it *Interpreter) instantiate(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, Fields: make(map[string]Value)}
}

// callProcedure invokes a free-standing procedure: a new frame parented
// to its captured lexical frame, with parameters bound positionally
// (spec.md §4.3).
func (it *Interpreter) callProcedure(fn *ProcedureValue, args []Value, pos lexer.Position) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, errors.NewAt(errors.ArityError, pos, "%s() expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	callEnv := NewEnclosedEnvironment(fn.Env)
	for i, p := range fn.Params {
		callEnv.Define(p, CloneForAssignment(args[i]))
	}
	it.trace("call %s(%d args)", fn.Name, len(args))
	sig, err := it.evalBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sigErr := callSignalError(sig); sigErr != nil {
		return nil, sigErr
	}
	return signalToCallResult(sig), nil
}

// callMethod invokes a method with THIS bound to the receiving
// Instance (DESIGN.md Open Question #1: methods require an explicit
// THIS receiver, never implicit field lookup).
func (it *Interpreter) callMethod(fn *ProcedureValue, this *InstanceValue, args []Value, pos lexer.Position) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, errors.NewAt(errors.ArityError, pos, "%s() expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	callEnv := NewEnclosedEnvironment(fn.Env)
	callEnv.Define("THIS", this)
	for i, p := range fn.Params {
		callEnv.Define(p, CloneForAssignment(args[i]))
	}
	it.trace("call %s.%s(%d args)", this.Type(), fn.Name, len(args))
	sig, err := it.evalBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sigErr := callSignalError(sig); sigErr != nil {
		return nil, sigErr
	}
	return signalToCallResult(sig), nil
}

// signalToCallResult turns a RETURN signal into its value, or Null when
// the body fell off the end without returning (spec.md §4.3).
func signalToCallResult(sig *Signal) Value {
	if sig != nil && sig.Kind == SignalReturn {
		return sig.Value
	}
	return Null
}

// callSignalError turns an EXIT signal into the exitSignal marker so it
// keeps unwinding past this call's (Value, error) return shape; any
// other signal (RETURN, none) is not an error.
func callSignalError(sig *Signal) error {
	if sig != nil && sig.Kind == SignalExit {
		return errExit
	}
	return nil
}
