package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `x <- 5
	x <- x + 10`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{IDENT, "x"},
		{ASSIGN, "<-"},
		{INT, "5"},
		{IDENT, "x"},
		{ASSIGN, "<-"},
		{IDENT, "x"},
		{PLUS, "+"},
		{INT, "10"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `IF ELSE FOR EACH IN REPEAT UNTIL TIMES PROCEDURE RETURN CLASS IMPORT TRY CATCH
		MOD AND OR NOT TRUE FALSE NULL NAN DISPLAY DISPLAYINLINE THIS`

	tests := []TokenType{
		IF, ELSE, FOR, EACH, IN, REPEAT, UNTIL, TIMES, PROCEDURE, RETURN, CLASS, IMPORT, TRY, CATCH,
		MOD, AND, OR, NOT, TRUE, FALSE, NULLLIT, NANLIT, DISPLAY, DISPLAYINLINE, THIS, EOF,
	}

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("expected %d tokens, got %d", len(tests), len(toks))
	}
	for i, want := range tests {
		if toks[i].Type != want {
			t.Errorf("token[%d]: expected %s, got %s", i, want, toks[i].Type)
		}
	}
}

// Keywords are matched case-insensitively (only the fixed keyword set;
// ordinary identifiers stay case-sensitive, DESIGN.md Open Question #4).
func TestKeywordsCaseInsensitive(t *testing.T) {
	toks, err := Tokenize("if ELSE If")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{IF, ELSE, IF, EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token[%d]: expected %s, got %s", i, w, toks[i].Type)
		}
	}
}

func TestIdentifiersCaseSensitive(t *testing.T) {
	toks, err := Tokenize("Foo foo FOO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, lit := range []string{"Foo", "foo", "FOO"} {
		if toks[i].Type != IDENT {
			t.Fatalf("token[%d]: expected IDENT, got %s", i, toks[i].Type)
		}
		if toks[i].Literal != lit {
			t.Errorf("token[%d]: expected literal %q, got %q", i, lit, toks[i].Literal)
		}
	}
}

func TestOperatorsAndNotEq(t *testing.T) {
	input := `( ) { } [ ] , . <- + - * / = NOT= < > <= >= NOT TRUE`
	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, DOT,
		ASSIGN, PLUS, MINUS, STAR, SLASH, EQ, NOTEQ, LT, GT, LE, GE,
		NOT, TRUE, EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token[%d]: expected %s, got %s (%q)", i, w, toks[i].Type, toks[i].Literal)
		}
	}
}

// "NOT" followed by "=" (possibly with whitespace between) collapses to
// a single NOTEQ token.
func TestNotEqWithSpace(t *testing.T) {
	toks, err := Tokenize("NOT    =")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != NOTEQ {
		t.Fatalf("expected NOTEQ, got %s", toks[0].Type)
	}
}

func TestNumbers(t *testing.T) {
	toks, err := Tokenize("5 3.14 0 10.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantType := []TokenType{INT, FLOAT, INT, FLOAT, EOF}
	wantLit := []string{"5", "3.14", "0", "10.0"}
	for i := range wantType {
		if toks[i].Type != wantType[i] {
			t.Errorf("token[%d]: expected %s, got %s", i, wantType[i], toks[i].Type)
		}
		if i < len(wantLit) && toks[i].Literal != wantLit[i] {
			t.Errorf("token[%d]: expected literal %q, got %q", i, wantLit[i], toks[i].Literal)
		}
	}
}

func TestTrailingDotIsInvalid(t *testing.T) {
	_, err := Tokenize("5.")
	if err == nil {
		t.Fatal("expected an error for a trailing '.' numeric literal")
	}
}

func TestPlainStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\\d\"e"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\tc\\d\"e"
	if toks[0].Type != STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	if toks[0].Literal != want {
		t.Errorf("expected %q, got %q", want, toks[0].Literal)
	}
}

func TestRawStringDisablesEscapes(t *testing.T) {
	toks, err := Tokenize(`r"a\nb"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != RAWSTRING {
		t.Fatalf("expected RAWSTRING, got %s", toks[0].Type)
	}
	if toks[0].Literal != `a\nb` {
		t.Errorf("expected literal %q, got %q", `a\nb`, toks[0].Literal)
	}
}

func TestFormatStringLiteralPreservesBraces(t *testing.T) {
	toks, err := Tokenize(`f"x={x}, y"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != FMTSTRING {
		t.Fatalf("expected FMTSTRING, got %s", toks[0].Type)
	}
	if toks[0].Literal != "x={x}, y" {
		t.Errorf("expected literal %q, got %q", "x={x}, y", toks[0].Literal)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	_, err := Tokenize(`"abc`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
}

func TestInvalidEscapeIsError(t *testing.T) {
	_, err := Tokenize(`"a\qb"`)
	if err == nil {
		t.Fatal("expected an error for an invalid escape sequence")
	}
}

func TestIllegalCharacter(t *testing.T) {
	_, err := Tokenize("x <- 5 @")
	if err == nil {
		t.Fatal("expected an error for an illegal character")
	}
}

func TestLineComment(t *testing.T) {
	toks, err := Tokenize("x <- 1 COMMENT this is ignored\ny <- 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var idents []string
	for _, tok := range toks {
		if tok.Type == IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 2 || idents[0] != "x" || idents[1] != "y" {
		t.Errorf("expected idents [x y], got %v", idents)
	}
}

func TestBlockComment(t *testing.T) {
	toks, err := Tokenize("x <- 1 COMMENTBLOCK ignored\nstill ignored COMMENTBLOCK y <- 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var idents []string
	for _, tok := range toks {
		if tok.Type == IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 2 || idents[0] != "x" || idents[1] != "y" {
		t.Errorf("expected idents [x y], got %v", idents)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, err := Tokenize("COMMENTBLOCK never closes")
	if err == nil {
		t.Fatal("expected an error for an unterminated COMMENTBLOCK")
	}
}

func TestPositionTracking(t *testing.T) {
	toks, err := Tokenize("x\ny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Pos.Line != 1 {
		t.Errorf("expected x on line 1, got %d", toks[0].Pos.Line)
	}
	if toks[1].Pos.Line != 2 {
		t.Errorf("expected y on line 2, got %d", toks[1].Pos.Line)
	}
}
