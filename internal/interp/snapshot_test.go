package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScenarioSnapshots runs a handful of complete programs and
// snapshots their stdout, grounded on the teacher's fixture_test.go use
// of snaps.MatchSnapshot for full-program output, scaled down to
// inline source strings since this module has no fixture corpus of its
// own to drive against.
func TestScenarioSnapshots(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{
			name: "integer_division_truncation",
			source: `DISPLAY(5 / 2)
DISPLAY(-5 / 2)`,
		},
		{
			name: "list_copy_on_assign",
			source: `A <- [1, 2, 3]
B <- A
APPEND(B, 4)
DISPLAY(A)
DISPLAY(B)`,
		},
		{
			name: "try_catch_division_by_zero",
			source: `TRY {
	x <- 10 / 0
} CATCH (e) {
	DISPLAY(e)
}`,
		},
		{
			name: "recursive_factorial",
			source: `PROCEDURE fact(n) {
	IF (n <= 1) { RETURN(1) }
	RETURN(n * fact(n - 1))
}
DISPLAY(fact(5))`,
		},
		{
			name: "format_string_interpolation",
			source: `DISPLAY(f"2+2={2 + 2}")`,
		},
		{
			name: "class_counter",
			source: `CLASS Counter() {
	PROCEDURE inc() { THIS.n <- THIS.n + 1 }
	PROCEDURE get() { RETURN(THIS.n) }
}
c <- Counter()
c.n <- 0
REPEAT 3 TIMES { c.inc() }
DISPLAY(c.get())`,
		},
		{
			name: "for_each_over_list",
			source: `total <- 0
FOR EACH x IN [1, 2, 3, 4, 5] {
	total <- total + x
}
DISPLAY(total)`,
		},
		{
			name: "sort_and_reverse",
			source: `L <- [3, 1, 4, 1, 5, 9, 2, 6]
DISPLAY(SORT(L))
DISPLAY(REVERSE(SORT(L)))`,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			out := runOK(t, sc.source)
			snaps.MatchSnapshot(t, sc.name, out)
		})
	}
}
