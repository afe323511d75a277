package harness

import (
	"fmt"

	"github.com/roach88/exprgrid/internal/codec"
	"github.com/roach88/exprgrid/internal/identity"
	"github.com/roach88/exprgrid/internal/verify"
)

// AssertionError is returned when an assertion fails. It includes the
// expected and actual outcomes to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion %s failed: expected %s, got %s",
		e.Type, e.Expected, e.Actual)
}

// assert dispatches one assertion against the run state.
func (s *runState) assert(a Assertion) error {
	switch a.Type {
	case AssertGridRows:
		return s.assertGridRows(a)
	case AssertCellCount:
		return s.assertCellCount(a)
	case AssertBitPattern:
		return s.assertBitPattern(a)
	case AssertDistinctVerified:
		return s.assertDistinctVerified()
	case AssertIdentityRepeats:
		return s.assertIdentityRepeats()
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func (s *runState) assertGridRows(a Assertion) error {
	if s.grid == nil {
		return &AssertionError{Type: AssertGridRows, Expected: fmt.Sprint(a.Count), Actual: "no grid"}
	}
	if len(s.grid.Rows) != a.Count {
		return &AssertionError{
			Type:     AssertGridRows,
			Expected: fmt.Sprintf("%d rows", a.Count),
			Actual:   fmt.Sprintf("%d rows", len(s.grid.Rows)),
		}
	}
	return nil
}

func (s *runState) assertCellCount(a Assertion) error {
	if s.grid == nil {
		return &AssertionError{Type: AssertCellCount, Expected: fmt.Sprint(a.Count), Actual: "no grid"}
	}
	if s.grid.CellCount() != a.Count {
		return &AssertionError{
			Type:     AssertCellCount,
			Expected: fmt.Sprintf("%d cells", a.Count),
			Actual:   fmt.Sprintf("%d cells", s.grid.CellCount()),
		}
	}
	return nil
}

// assertBitPattern checks which cells are literal zeros against a
// row-major '0'/'1' pattern string.
func (s *runState) assertBitPattern(a Assertion) error {
	if s.grid == nil {
		return &AssertionError{Type: AssertBitPattern, Expected: a.Pattern, Actual: "no grid"}
	}
	cells := s.grid.Flatten()
	if len(cells) != len(a.Pattern) {
		return &AssertionError{
			Type:     AssertBitPattern,
			Expected: fmt.Sprintf("%d cells", len(a.Pattern)),
			Actual:   fmt.Sprintf("%d cells", len(cells)),
		}
	}
	for i, want := range a.Pattern {
		isZero := cells[i] == codec.ZeroCell
		if (want == '0') != isZero {
			return &AssertionError{
				Type:     AssertBitPattern,
				Expected: fmt.Sprintf("bit %c at position %d", want, i),
				Actual:   fmt.Sprintf("cell %q", cells[i]),
			}
		}
	}
	return nil
}

// assertDistinctVerified checks the last generated set for textual
// uniqueness and verification against its target.
func (s *runState) assertDistinctVerified() error {
	if s.generated == nil {
		return &AssertionError{Type: AssertDistinctVerified, Expected: "a generated set", Actual: "none"}
	}
	seen := make(map[string]bool)
	for _, e := range s.generated {
		if seen[e.Text] {
			return &AssertionError{
				Type:     AssertDistinctVerified,
				Expected: "textually distinct expressions",
				Actual:   fmt.Sprintf("duplicate %q", e.Text),
			}
		}
		seen[e.Text] = true
		ok, err := verify.Verify(e.Text, s.generateTarget, verify.DefaultTolerance)
		if err != nil || !ok {
			return &AssertionError{
				Type:     AssertDistinctVerified,
				Expected: fmt.Sprintf("every expression verifies against %g", s.generateTarget),
				Actual:   fmt.Sprintf("%q does not (err=%v)", e.Text, err),
			}
		}
	}
	return nil
}

// assertIdentityRepeats re-derives the last identity set and compares the
// sequences element-wise.
func (s *runState) assertIdentityRepeats() error {
	if s.identitySet == nil {
		return &AssertionError{Type: AssertIdentityRepeats, Expected: "an identity set", Actual: "none"}
	}
	again := identity.DeriveSet(s.identityName, s.identitySize)
	if len(again) != len(s.identitySet) {
		return &AssertionError{
			Type:     AssertIdentityRepeats,
			Expected: fmt.Sprintf("%d expressions", len(s.identitySet)),
			Actual:   fmt.Sprintf("%d expressions", len(again)),
		}
	}
	for i := range again {
		if again[i] != s.identitySet[i] {
			return &AssertionError{
				Type:     AssertIdentityRepeats,
				Expected: fmt.Sprintf("%q at position %d", s.identitySet[i].Text, i),
				Actual:   fmt.Sprintf("%q", again[i].Text),
			}
		}
	}
	return nil
}
