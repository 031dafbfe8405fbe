package interp

import (
	"strconv"
	"strings"

	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
	"github.com/cwbudde/fplc/internal/parser"
)

// builtins is the registry named in spec.md §4.4: name → handler. It is
// consulted by evalCall only after the calling environment has been
// checked for a same-named user declaration, so a program can shadow a
// builtin by declaring its own procedure or class under that name.
var builtins = map[string]BuiltinFunc{
	"INPUT":    builtinInput,
	"TOSTRING": builtinToString,
	"TONUM":    builtinToNum,
	"EVAL":     builtinEval,

	"ABS":       builtinAbs,
	"CEIL":      builtinCeil,
	"FLOOR":     builtinFloor,
	"ROUND":     builtinRound,
	"SQRT":      builtinSqrt,
	"POW":       builtinPow,
	"EXP":       builtinExp,
	"LOG":       builtinLog,
	"LOGTEN":    builtinLogTen,
	"LOGTWO":    builtinLogTwo,
	"SIN":       builtinSin,
	"COS":       builtinCos,
	"TAN":       builtinTan,
	"ASIN":      builtinAsin,
	"ACOS":      builtinAcos,
	"ATAN":      builtinAtan,
	"HYPOT":     builtinHypot,
	"MIN":       builtinMin,
	"MAX":       builtinMax,
	"GCD":       builtinGcd,
	"FACTORIAL": builtinFactorial,
	"DEGREES":   builtinDegrees,
	"RADIANS":   builtinRadians,
	"RANDOM":    builtinRandom,

	"INSERT":  builtinInsert,
	"APPEND":  builtinAppend,
	"REMOVE":  builtinRemove,
	"LENGTH":  builtinLength,
	"SORT":    builtinSort,
	"RANGE":   builtinRange,
	"REVERSE": builtinReverse,

	"SUBSTRING":  builtinSubstring,
	"CONCAT":     builtinConcat,
	"CONTAINS":   builtinContains,
	"FIND":       builtinFind,
	"SPLIT":      builtinSplit,
	"TRIM":       builtinTrim,
	"REPLACE":    builtinReplace,
	"UPPERCASE":  builtinUppercase,
	"LOWERCASE":  builtinLowercase,
	"STARTSWITH": builtinStartsWith,
	"ENDSWITH":   builtinEndsWith,

	"SLEEP":     builtinSleep,
	"TIMESTAMP": builtinTimestamp,
	"TIME":      builtinTime,
	"TIMEZONE":  builtinTimezone,
	"TIMEZONES": builtinTimezones,
}

func arityError(name string, pos lexer.Position, want int, got int) error {
	return errors.NewAt(errors.ArityError, pos, "%s() expects %d argument(s), got %d", name, want, got)
}

func requireArgc(name string, args []Value, pos lexer.Position, want int) error {
	if len(args) != want {
		return arityError(name, pos, want, len(args))
	}
	return nil
}

func requireString(v Value, pos lexer.Position, what string) (string, error) {
	s, ok := v.(*StringValue)
	if !ok {
		return "", errors.NewAt(errors.TypeError, pos, "%s must be String, got %s", what, v.Type())
	}
	return s.Value, nil
}

func requireList(v Value, pos lexer.Position, what string) (*ListValue, error) {
	l, ok := v.(*ListValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, pos, "%s must be List, got %s", what, v.Type())
	}
	return l, nil
}

func requireNumber(v Value, pos lexer.Position, what string) (float64, error) {
	f, ok := asFloat(v)
	if !ok {
		return 0, errors.NewAt(errors.TypeError, pos, "%s must be a number, got %s", what, v.Type())
	}
	return f, nil
}

// builtinInput reads a single line from the stdin collaborator (spec.md
// §4.4). A trailing newline, if present, is stripped; EOF yields "".
func builtinInput(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("INPUT", args, pos, 0); err != nil {
		return nil, err
	}
	line, err := it.Stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return &StringValue{Value: ""}, nil
	}
	return &StringValue{Value: line}, nil
}

// builtinToString renders the canonical top-level form (spec.md §4.3):
// unlike the nested form used inside Lists, a top-level String is not
// quoted and a top-level Null renders as the empty string.
func builtinToString(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("TOSTRING", args, pos, 1); err != nil {
		return nil, err
	}
	return &StringValue{Value: args[0].String()}, nil
}

// builtinToNum parses an Integer if the text has no '.', else a Float
// (spec.md §4.4); an unparseable string raises a catchable error.
func builtinToNum(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("TONUM", args, pos, 1); err != nil {
		return nil, err
	}
	s, err := requireString(args[0], pos, "TONUM argument")
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(s)
	if !strings.Contains(trimmed, ".") {
		if n, perr := strconv.ParseInt(trimmed, 10, 64); perr == nil {
			return &IntegerValue{Value: n}, nil
		}
	}
	f, perr := strconv.ParseFloat(trimmed, 64)
	if perr != nil {
		return nil, errors.NewAt(errors.TypeError, pos, "TONUM: cannot parse %q as a number", s)
	}
	return &FloatValue{Value: f}, nil
}

// builtinEval re-enters the pipeline on a fresh source string in the
// calling scope (spec.md §4.4): the last expression statement's value is
// returned, so a bare-expression program like "1 + 1" yields Integer 2.
func builtinEval(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("EVAL", args, pos, 1); err != nil {
		return nil, err
	}
	src, err := requireString(args[0], pos, "EVAL argument")
	if err != nil {
		return nil, err
	}
	p, perr := parser.New(src)
	if perr != nil {
		return nil, errors.NewAt(errors.ParseError, pos, "EVAL: %v", perr)
	}
	tree, perr := p.ParseProgram()
	if perr != nil {
		return nil, errors.NewAt(errors.ParseError, pos, "EVAL: %v", perr)
	}

	var result Value = Null
	for _, stmt := range tree.Statements {
		if exprStmt, ok := stmt.(*ast.ExpressionStatement); ok {
			v, err := it.evalExpression(exprStmt.Expr, env)
			if err != nil {
				return nil, err
			}
			result = v
			continue
		}
		sig, err := it.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return signalToCallResult(sig), nil
		}
	}
	return result, nil
}
