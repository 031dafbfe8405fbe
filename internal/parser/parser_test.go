package parser

import (
	"testing"

	"github.com/cwbudde/fplc/internal/ast"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	p, err := New(source)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: unexpected error: %v", err)
	}
	return prog
}

func parseOneStatement(t *testing.T, source string) ast.Statement {
	t.Helper()
	prog := parseProgram(t, source)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	return prog.Statements[0]
}

func TestParseAssign(t *testing.T) {
	stmt := parseOneStatement(t, `x <- 5`)
	assign, ok := stmt.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
	if assign.Name != "x" {
		t.Errorf("expected name %q, got %q", "x", assign.Name)
	}
	lit, ok := assign.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("expected IntegerLiteral(5), got %#v", assign.Value)
	}
}

func TestParseIndexAssign(t *testing.T) {
	stmt := parseOneStatement(t, `L[1] <- 9`)
	n, ok := stmt.(*ast.IndexAssign)
	if !ok {
		t.Fatalf("expected *ast.IndexAssign, got %T", stmt)
	}
	if v, ok := n.Target.(*ast.Variable); !ok || v.Name != "L" {
		t.Errorf("expected target variable L, got %#v", n.Target)
	}
}

func TestParseFieldAssign(t *testing.T) {
	stmt := parseOneStatement(t, `THIS.count <- 0`)
	n, ok := stmt.(*ast.FieldAssign)
	if !ok {
		t.Fatalf("expected *ast.FieldAssign, got %T", stmt)
	}
	if n.Field != "count" {
		t.Errorf("expected field %q, got %q", "count", n.Field)
	}
}

func TestParseReservedAssignTargetRejected(t *testing.T) {
	p, err := New(`TRUE <- 1`)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected an error assigning to the reserved word TRUE")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 + 2 - 3", "((1 + 2) - 3)"},
		{"a = b AND c < d", "((a = b) AND (c < d))"},
		{"NOT a AND b", "((NOT a) AND b)"},
		{"NOT a > b", "(NOT (a > b))"},
		{"a OR b AND c", "(a OR (b AND c))"},
		{"-a + b", "((-a) + b)"},
		{"a NOT= b", "(a NOT= b)"},
	}
	for _, tt := range tests {
		stmt := parseOneStatement(t, tt.source)
		exprStmt, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("source %q: expected *ast.ExpressionStatement, got %T", tt.source, stmt)
		}
		if got := exprStmt.Expr.String(); got != tt.want {
			t.Errorf("source %q: expected %q, got %q", tt.source, tt.want, got)
		}
	}
}

func TestParsePostfixChain(t *testing.T) {
	stmt := parseOneStatement(t, `a.b[1].c(1, 2)`)
	exprStmt := stmt.(*ast.ExpressionStatement)
	mc, ok := exprStmt.Expr.(*ast.MethodCall)
	if !ok {
		t.Fatalf("expected *ast.MethodCall, got %T", exprStmt.Expr)
	}
	if mc.Name != "c" || len(mc.Args) != 2 {
		t.Fatalf("unexpected method call shape: %#v", mc)
	}
	if _, ok := mc.Target.(*ast.Index); !ok {
		t.Fatalf("expected an Index target, got %T", mc.Target)
	}
}

func TestParseListLiteral(t *testing.T) {
	stmt := parseOneStatement(t, `L <- [1, 2, 3]`)
	assign := stmt.(*ast.Assign)
	list, ok := assign.Value.(*ast.ListLiteral)
	if !ok {
		t.Fatalf("expected *ast.ListLiteral, got %T", assign.Value)
	}
	if len(list.Elements) != 3 {
		t.Errorf("expected 3 elements, got %d", len(list.Elements))
	}
}

func TestParseEmptyListLiteral(t *testing.T) {
	stmt := parseOneStatement(t, `L <- []`)
	assign := stmt.(*ast.Assign)
	list := assign.Value.(*ast.ListLiteral)
	if len(list.Elements) != 0 {
		t.Errorf("expected 0 elements, got %d", len(list.Elements))
	}
}

func TestParseIfElse(t *testing.T) {
	stmt := parseOneStatement(t, `IF (x > 0) { DISPLAY(1) } ELSE { DISPLAY(2) }`)
	n, ok := stmt.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", stmt)
	}
	if n.Else == nil {
		t.Fatal("expected an Else block")
	}
	if len(n.Then.Statements) != 1 || len(n.Else.Statements) != 1 {
		t.Errorf("expected one statement per branch")
	}
}

func TestParseIfElseIfChain(t *testing.T) {
	stmt := parseOneStatement(t, `IF (x = 1) { DISPLAY(1) } ELSE IF (x = 2) { DISPLAY(2) } ELSE { DISPLAY(3) }`)
	n := stmt.(*ast.If)
	if n.Else == nil || len(n.Else.Statements) != 1 {
		t.Fatalf("expected a synthetic one-statement else block, got %#v", n.Else)
	}
	inner, ok := n.Else.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected nested *ast.If, got %T", n.Else.Statements[0])
	}
	if inner.Else == nil {
		t.Fatal("expected the innermost else branch")
	}
}

func TestParseRepeatTimes(t *testing.T) {
	stmt := parseOneStatement(t, `REPEAT 5 TIMES { DISPLAY(1) }`)
	n, ok := stmt.(*ast.RepeatTimes)
	if !ok {
		t.Fatalf("expected *ast.RepeatTimes, got %T", stmt)
	}
	if lit, ok := n.Count.(*ast.IntegerLiteral); !ok || lit.Value != 5 {
		t.Errorf("expected count 5, got %#v", n.Count)
	}
}

func TestParseRepeatUntil(t *testing.T) {
	stmt := parseOneStatement(t, `REPEAT UNTIL (x > 10) { x <- x + 1 }`)
	if _, ok := stmt.(*ast.RepeatUntil); !ok {
		t.Fatalf("expected *ast.RepeatUntil, got %T", stmt)
	}
}

func TestParseForEach(t *testing.T) {
	stmt := parseOneStatement(t, `FOR EACH item IN items { DISPLAY(item) }`)
	n, ok := stmt.(*ast.ForEach)
	if !ok {
		t.Fatalf("expected *ast.ForEach, got %T", stmt)
	}
	if n.Var != "item" {
		t.Errorf("expected loop var %q, got %q", "item", n.Var)
	}
}

func TestParseProcedureDecl(t *testing.T) {
	stmt := parseOneStatement(t, `PROCEDURE add(a, b) { RETURN(a + b) }`)
	n, ok := stmt.(*ast.ProcedureDecl)
	if !ok {
		t.Fatalf("expected *ast.ProcedureDecl, got %T", stmt)
	}
	if n.Name != "add" || len(n.Params) != 2 {
		t.Fatalf("unexpected procedure shape: %#v", n)
	}
}

func TestParseProcedureNoParams(t *testing.T) {
	stmt := parseOneStatement(t, `PROCEDURE greet() { DISPLAY("hi") }`)
	n := stmt.(*ast.ProcedureDecl)
	if len(n.Params) != 0 {
		t.Errorf("expected 0 params, got %d", len(n.Params))
	}
}

func TestParseClassDecl(t *testing.T) {
	stmt := parseOneStatement(t, `CLASS Counter() {
		PROCEDURE inc() { THIS.n <- THIS.n + 1 }
		PROCEDURE get() { RETURN(THIS.n) }
	}`)
	n, ok := stmt.(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", stmt)
	}
	if n.Name != "Counter" || len(n.Methods) != 2 {
		t.Fatalf("unexpected class shape: %#v", n)
	}
}

func TestParseClassRejectsNonProcedureMember(t *testing.T) {
	p, _ := New(`CLASS Bad() { x <- 1 }`)
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected an error for a non-PROCEDURE class member")
	}
}

func TestParseReturnVariants(t *testing.T) {
	bare := parseOneStatement(t, `RETURN`).(*ast.Return)
	if bare.Value != nil {
		t.Errorf("expected nil value for bare RETURN, got %#v", bare.Value)
	}
	empty := parseOneStatement(t, `RETURN()`).(*ast.Return)
	if empty.Value != nil {
		t.Errorf("expected nil value for RETURN(), got %#v", empty.Value)
	}
	withVal := parseOneStatement(t, `RETURN(42)`).(*ast.Return)
	if lit, ok := withVal.Value.(*ast.IntegerLiteral); !ok || lit.Value != 42 {
		t.Errorf("expected IntegerLiteral(42), got %#v", withVal.Value)
	}
}

func TestParseImport(t *testing.T) {
	stmt := parseOneStatement(t, `IMPORT mathutils`)
	n, ok := stmt.(*ast.Import)
	if !ok {
		t.Fatalf("expected *ast.Import, got %T", stmt)
	}
	if n.Name != "mathutils" {
		t.Errorf("expected name %q, got %q", "mathutils", n.Name)
	}
}

func TestParseTryCatch(t *testing.T) {
	stmt := parseOneStatement(t, `TRY { x <- 1 / 0 } CATCH (e) { DISPLAY(e) }`)
	n, ok := stmt.(*ast.TryCatch)
	if !ok {
		t.Fatalf("expected *ast.TryCatch, got %T", stmt)
	}
	if n.CatchName != "e" {
		t.Errorf("expected catch name %q, got %q", "e", n.CatchName)
	}
}

func TestParseExit(t *testing.T) {
	stmt := parseOneStatement(t, `EXIT()`)
	if _, ok := stmt.(*ast.Exit); !ok {
		t.Fatalf("expected *ast.Exit, got %T", stmt)
	}
}

// EXIT is an ordinary identifier, not a keyword, so it only becomes an
// Exit statement when spelled as a bare call; otherwise it's callable
// or assignable like any other name.
func TestExitIsNotAReservedWord(t *testing.T) {
	stmt := parseOneStatement(t, `EXIT <- 1`)
	if _, ok := stmt.(*ast.Assign); !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt)
	}
}

func TestParseFormatStringInterpolation(t *testing.T) {
	stmt := parseOneStatement(t, `DISPLAY(f"sum={1+1}")`)
	disp := stmt.(*ast.Display)
	fs, ok := disp.Value.(*ast.FormatString)
	if !ok {
		t.Fatalf("expected *ast.FormatString, got %T", disp.Value)
	}
	if len(fs.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %#v", len(fs.Parts), fs.Parts)
	}
	if fs.Parts[0].Literal != "sum=" {
		t.Errorf("expected literal part %q, got %q", "sum=", fs.Parts[0].Literal)
	}
	if fs.Parts[1].Expr == nil {
		t.Fatal("expected an expression part")
	}
}

func TestParseUnbalancedFormatStringBrace(t *testing.T) {
	p, err := New(`DISPLAY(f"{unterminated")`)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected an error for an unbalanced '{' in a formatted string")
	}
}

func TestParseUnexpectedTokenError(t *testing.T) {
	p, _ := New(`x <- )`)
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected an error for an unexpected token")
	}
}

func TestParseUnterminatedBlockError(t *testing.T) {
	p, _ := New(`IF (TRUE) { DISPLAY(1)`)
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected an error for an unterminated block")
	}
}

func TestParseCallNoArgs(t *testing.T) {
	stmt := parseOneStatement(t, `foo()`)
	exprStmt := stmt.(*ast.ExpressionStatement)
	call, ok := exprStmt.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", exprStmt.Expr)
	}
	if call.Name != "foo" || len(call.Args) != 0 {
		t.Errorf("unexpected call shape: %#v", call)
	}
}

func TestParseThisLiteral(t *testing.T) {
	stmt := parseOneStatement(t, `RETURN(THIS)`)
	ret := stmt.(*ast.Return)
	v, ok := ret.Value.(*ast.Variable)
	if !ok || v.Name != "THIS" {
		t.Fatalf("expected Variable(THIS), got %#v", ret.Value)
	}
}

func TestParseRawAndNullNanLiterals(t *testing.T) {
	stmt := parseOneStatement(t, `L <- [r"a\nb", NULL, NAN]`)
	list := stmt.(*ast.Assign).Value.(*ast.ListLiteral)
	if _, ok := list.Elements[0].(*ast.RawStringLiteral); !ok {
		t.Errorf("expected RawStringLiteral, got %T", list.Elements[0])
	}
	if _, ok := list.Elements[1].(*ast.NullLiteral); !ok {
		t.Errorf("expected NullLiteral, got %T", list.Elements[1])
	}
	if _, ok := list.Elements[2].(*ast.NanLiteral); !ok {
		t.Errorf("expected NanLiteral, got %T", list.Elements[2])
	}
}

// DISPLAY/DISPLAYINLINE are statements in grammar position but also
// callable as expressions yielding Null (spec.md §4.4).
func TestParseDisplayAsExpression(t *testing.T) {
	stmt := parseOneStatement(t, `x <- DISPLAY(1)`)
	assign := stmt.(*ast.Assign)
	if _, ok := assign.Value.(*ast.Display); !ok {
		t.Fatalf("expected *ast.Display as an expression, got %T", assign.Value)
	}

	stmt = parseOneStatement(t, `f(DISPLAYINLINE(1), 2)`)
	call := stmt.(*ast.ExpressionStatement).Expr.(*ast.Call)
	if _, ok := call.Args[0].(*ast.DisplayInline); !ok {
		t.Fatalf("expected *ast.DisplayInline as a call argument, got %T", call.Args[0])
	}
}
