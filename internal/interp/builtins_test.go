package interp

import (
	"strconv"
	"strings"
	"testing"
)

func TestMathBuiltins(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"ABS(-5)", "5"},
		{"ABS(5)", "5"},
		{"ABS(-5.5)", "5.5"},
		{"CEIL(1.2)", "2"},
		{"FLOOR(1.8)", "1"},
		{"ROUND(1.5)", "2"},
		{"ROUND(-1.5)", "-2"},
		{"SQRT(16)", "4.0"},
		{"POW(2, 10)", "1024.0"},
		{"MIN(3, 7)", "3"},
		{"MAX(3, 7)", "7"},
		{"MIN(3.5, 2)", "2.0"},
		{"GCD(12, 18)", "6"},
		{"FACTORIAL(5)", "120"},
		{"FACTORIAL(0)", "1"},
		{"HYPOT(3, 4)", "5.0"},
	}
	for _, tt := range tests {
		out := runOK(t, "DISPLAY("+tt.expr+")")
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.expr, tt.want, strings.TrimSpace(out))
		}
	}
}

func TestSqrtOfNegativeIsNan(t *testing.T) {
	out := runOK(t, `DISPLAY(SQRT(-1))`)
	if strings.TrimSpace(out) != "NAN" {
		t.Errorf("expected %q, got %q", "NAN", out)
	}
}

func TestFactorialOfNegativeIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { x <- FACTORIAL(-1) } CATCH (e) { DISPLAY(e) }`)
	if !strings.Contains(out, "non-negative") {
		t.Errorf("expected a domain error mentioning non-negative, got %q", out)
	}
}

func TestLogOfNonPositiveIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { x <- LOG(0) } CATCH (e) { DISPLAY("caught") }`)
	if strings.TrimSpace(out) != "caught" {
		t.Errorf("expected %q, got %q", "caught", out)
	}
}

func TestRandomIsWithinBoundsAndReproducible(t *testing.T) {
	out1 := runOK(t, `REPEAT 5 TIMES { DISPLAY(RANDOM(1, 10)) }`)
	out2 := runOK(t, `REPEAT 5 TIMES { DISPLAY(RANDOM(1, 10)) }`)
	if out1 != out2 {
		t.Errorf("expected RANDOM to be deterministic across separate runs, got %q vs %q", out1, out2)
	}
	for _, line := range strings.Fields(out1) {
		if n, err := strconv.Atoi(line); err != nil || n < 1 || n > 10 {
			t.Errorf("expected each RANDOM(1, 10) result within bounds, got %q", line)
		}
	}
}

func TestRandomRejectsInvertedBounds(t *testing.T) {
	out := runOK(t, `TRY { x <- RANDOM(10, 1) } CATCH (e) { DISPLAY("caught") }`)
	if strings.TrimSpace(out) != "caught" {
		t.Errorf("expected %q, got %q", "caught", out)
	}
}

func TestListBuiltins(t *testing.T) {
	out := runOK(t, `L <- [1, 2, 3]
INSERT(L, 2, 99)
DISPLAY(L)
APPEND(L, 100)
DISPLAY(L)
REMOVE(L, 1)
DISPLAY(L)
DISPLAY(LENGTH(L))`)
	want := "[1, 99, 2, 3]\n[1, 99, 2, 3, 100]\n[99, 2, 3, 100]\n4\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestInsertAtEndEqualsAppend(t *testing.T) {
	out := runOK(t, `L <- [1, 2]
INSERT(L, 3, 9)
DISPLAY(L)`)
	if strings.TrimSpace(out) != "[1, 2, 9]" {
		t.Errorf("expected %q, got %q", "[1, 2, 9]", out)
	}
}

func TestInsertOutOfRangeIsCatchable(t *testing.T) {
	out := runOK(t, `L <- [1, 2]
TRY { INSERT(L, 10, 9) } CATCH (e) { DISPLAY(e) }`)
	if !strings.Contains(out, "Index out of range") {
		t.Errorf("expected %q in %q", "Index out of range", out)
	}
}

func TestSortIntegers(t *testing.T) {
	out := runOK(t, `DISPLAY(SORT([3, 1, 2]))`)
	if strings.TrimSpace(out) != "[1, 2, 3]" {
		t.Errorf("expected %q, got %q", "[1, 2, 3]", out)
	}
}

func TestSortStrings(t *testing.T) {
	out := runOK(t, `DISPLAY(SORT(["banana", "apple", "cherry"]))`)
	want := `["apple", "banana", "cherry"]`
	if strings.TrimSpace(out) != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestSortDoesNotMutateOriginal(t *testing.T) {
	out := runOK(t, `L <- [3, 1, 2]
S <- SORT(L)
DISPLAY(L)
DISPLAY(S)`)
	want := "[3, 1, 2]\n[1, 2, 3]\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestSortMixedTypesIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { x <- SORT([1, "two"]) } CATCH (e) { DISPLAY("caught") }`)
	if strings.TrimSpace(out) != "caught" {
		t.Errorf("expected %q, got %q", "caught", out)
	}
}

func TestRangeAscendingAndDescending(t *testing.T) {
	out := runOK(t, `DISPLAY(RANGE(5))
DISPLAY(RANGE(2, 5))
DISPLAY(RANGE(5, 2))`)
	want := "[1, 2, 3, 4, 5]\n[2, 3, 4, 5]\n[5, 4, 3, 2]\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestReverseDoesNotMutateOriginal(t *testing.T) {
	out := runOK(t, `L <- [1, 2, 3]
R <- REVERSE(L)
DISPLAY(L)
DISPLAY(R)`)
	want := "[1, 2, 3]\n[3, 2, 1]\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestStringBuiltins(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{`SUBSTRING("hello world", 1, 5)`, "hello"},
		{`CONCAT("foo", "bar")`, "foobar"},
		{`CONTAINS("hello world", "wor")`, "TRUE"},
		{`CONTAINS("hello world", "xyz")`, "FALSE"},
		{`FIND("hello world", "world")`, "7"},
		{`FIND("hello world", "xyz")`, "-1"},
		{`TRIM("  padded  ")`, "padded"},
		{`REPLACE("ababab", "a", "x")`, "xbxbxb"},
		{`UPPERCASE("hello")`, "HELLO"},
		{`LOWERCASE("HELLO")`, "hello"},
		{`STARTSWITH("hello world", "hello")`, "TRUE"},
		{`ENDSWITH("hello world", "world")`, "TRUE"},
		{`LENGTH("hello")`, "5"},
	}
	for _, tt := range tests {
		out := runOK(t, "DISPLAY("+tt.expr+")")
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.expr, tt.want, strings.TrimSpace(out))
		}
	}
}

func TestSubstringUsesRuneIndices(t *testing.T) {
	// "café" has 4 runes even though 'é' is 2 bytes in UTF-8; a
	// byte-indexed SUBSTRING would slice mid-rune here.
	out := runOK(t, `DISPLAY(SUBSTRING("café", 1, 4))`)
	if strings.TrimSpace(out) != "café" {
		t.Errorf("expected %q, got %q", "café", out)
	}
}

func TestSubstringOutOfRangeIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { x <- SUBSTRING("hi", 1, 10) } CATCH (e) { DISPLAY(e) }`)
	if !strings.Contains(out, "Index out of range") {
		t.Errorf("expected %q in %q", "Index out of range", out)
	}
}

func TestSplit(t *testing.T) {
	out := runOK(t, `DISPLAY(SPLIT("a,b,c", ","))`)
	want := `["a", "b", "c"]`
	if strings.TrimSpace(out) != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestToStringAndToNum(t *testing.T) {
	out := runOK(t, `DISPLAY(TOSTRING(42))
DISPLAY(TOSTRING(3.5))
DISPLAY(TONUM("42"))
DISPLAY(TONUM("3.5"))`)
	want := "42\n3.5\n42\n3.5\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestToNumUnparseableIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { x <- TONUM("not a number") } CATCH (e) { DISPLAY("caught") }`)
	if strings.TrimSpace(out) != "caught" {
		t.Errorf("expected %q, got %q", "caught", out)
	}
}

func TestTimestampRoundTripsThroughTime(t *testing.T) {
	out := runOK(t, `ts <- TIMESTAMP("2024-01-15 10:30:00.000000")
DISPLAY(TIME(ts))`)
	if strings.TrimSpace(out) != "2024-01-15 10:30:00.000000" {
		t.Errorf("expected a round-tripped timestamp string, got %q", out)
	}
}

func TestTimezoneUnknownNameIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { x <- TIMEZONE(0, "Nowhere/Nothing") } CATCH (e) { DISPLAY("caught") }`)
	if strings.TrimSpace(out) != "caught" {
		t.Errorf("expected %q, got %q", "caught", out)
	}
}

func TestTimezonesListsKnownZones(t *testing.T) {
	out := runOK(t, `DISPLAY(CONTAINS(TOSTRING(TIMEZONES()), "UTC"))`)
	if strings.TrimSpace(out) != "TRUE" {
		t.Errorf("expected the TIMEZONES() list to contain UTC, got %q", out)
	}
}

func TestSleepZeroReturnsImmediately(t *testing.T) {
	out := runOK(t, `SLEEP(0)
DISPLAY("done")`)
	if strings.TrimSpace(out) != "done" {
		t.Errorf("expected %q, got %q", "done", out)
	}
}

func TestSleepNegativeIsCatchable(t *testing.T) {
	out := runOK(t, `TRY { SLEEP(-1) } CATCH (e) { DISPLAY("caught") }`)
	if strings.TrimSpace(out) != "caught" {
		t.Errorf("expected %q, got %q", "caught", out)
	}
}

func TestArityErrorsAcrossBuiltinCategories(t *testing.T) {
	tests := []string{
		`ABS(1, 2)`,
		`LENGTH()`,
		`SUBSTRING("a", 1)`,
		`RANGE()`,
		`TIMEZONES(1)`,
	}
	for _, expr := range tests {
		out := runOK(t, "TRY { x <- "+expr+" } CATCH (e) { DISPLAY(e) }")
		if !strings.Contains(out, "expects") {
			t.Errorf("%s: expected an arity message, got %q", expr, out)
		}
	}
}
