package diversity

import (
	"fmt"
	"math"
	"strconv"

	"github.com/roach88/exprgrid/internal/catalog"
	"github.com/roach88/exprgrid/internal/expr"
	"github.com/roach88/exprgrid/internal/verify"
)

const (
	// DefaultMinCount is the minimum expression count when the caller
	// passes zero or a negative count.
	DefaultMinCount = 5

	// MaxAttempts bounds the candidate search (100 × 100). Hitting the
	// bound is a typed error, never an unbounded loop.
	MaxAttempts = 100 * 100

	// maxFactorialTarget guards the factorial-ratio template against
	// overflow-prone operands.
	maxFactorialTarget = 20
)

// Generator produces diverse expression sets against a catalog with a
// fixed verification tolerance. The zero-cost construction makes it cheap
// to create one per call site; Generators are stateless and safe for
// concurrent use.
type Generator struct {
	cat       *catalog.Catalog
	tolerance float64
}

// NewGenerator creates a Generator. A nil catalog uses catalog.Default();
// a non-positive tolerance uses verify.DefaultTolerance.
func NewGenerator(cat *catalog.Catalog, tolerance float64) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	if tolerance <= 0 {
		tolerance = verify.DefaultTolerance
	}
	return &Generator{cat: cat, tolerance: tolerance}
}

// Generate returns exactly minCount textually distinct expressions that
// all verify against target, using the default catalog and tolerance.
func Generate(target float64, minCount int) ([]expr.Expression, error) {
	return NewGenerator(nil, 0).Generate(target, minCount)
}

// Generate returns exactly minCount textually distinct expressions, each
// verifying against target within the generator's tolerance.
//
// Catalog pool entries are drawn first when target is exactly 1 or 0 and
// keep their catalog category; synthesized candidates carry
// CategorySynthesized. Candidates that evaluate to ±Inf or NaN, fail to
// parse, or miss the target are rejected. The search considers at most
// MaxAttempts candidates.
func (g *Generator) Generate(target float64, minCount int) ([]expr.Expression, error) {
	if minCount <= 0 {
		minCount = DefaultMinCount
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, &GenError{
			Code:    ErrCodeInsufficientDiversity,
			Message: "no expressions exist for a non-finite target",
			Target:  target,
			Want:    minCount,
		}
	}

	s := &search{
		tolerance: g.tolerance,
		target:    target,
		want:      minCount,
		seen:      make(map[string]bool),
	}

	// Catalog pool first for the exact bit values.
	if target == 1 || target == 0 {
		for _, e := range g.cat.Pool(target) {
			if s.consider(e.Text, e.Category) {
				return s.out, nil
			}
			if s.spent() {
				return nil, s.exhausted()
			}
		}
	}

	done, err := s.synthesize()
	if err != nil {
		return nil, err
	}
	if done {
		return s.out, nil
	}
	return nil, s.exhausted()
}

// search tracks one Generate call: survivors, uniqueness, and the
// candidate budget.
type search struct {
	tolerance float64
	target    float64
	want      int
	seen      map[string]bool
	out       []expr.Expression
	attempts  int
}

// consider canonicalizes a candidate, spends one attempt on it, and keeps
// it when it is new, finite, and verifies against the target. Returns true
// once the survivor set is complete.
func (s *search) consider(text string, category expr.Category) bool {
	if len(s.out) >= s.want {
		return true
	}
	s.attempts++
	canonical := expr.Canonical(text)
	if s.seen[canonical] {
		return false
	}
	s.seen[canonical] = true

	got, err := expr.Evaluate(canonical)
	if err != nil || math.IsNaN(got) || math.IsInf(got, 0) {
		return false
	}
	if !verify.Within(got, s.target, s.tolerance) {
		return false
	}
	s.out = append(s.out, expr.Expression{Text: canonical, Category: category})
	return len(s.out) >= s.want
}

func (s *search) spent() bool {
	return s.attempts >= MaxAttempts
}

func (s *search) exhausted() error {
	return &GenError{
		Code:     ErrCodeSearchExhausted,
		Message:  "candidate budget spent",
		Target:   s.target,
		Want:     s.want,
		Got:      len(s.out),
		Attempts: s.attempts,
	}
}

// synthesize expands the parametric template families in a fixed order.
// Returns done=true when the survivor set is complete.
func (s *search) synthesize() (bool, error) {
	t := s.target
	ts := formatNum(t)

	fixed := []string{
		ts,
		fmt.Sprintf("%s-1+1", ts),
		fmt.Sprintf("%s*2/2", ts),
		fmt.Sprintf("%s^1", ts),
	}
	if t >= 0 {
		fixed = append(fixed, fmt.Sprintf("√(%s^2)", ts))
	}
	isInt := t == math.Trunc(t) && math.Abs(t) < 1e15
	if isInt && t >= 2 && t <= maxFactorialTarget {
		fixed = append(fixed, fmt.Sprintf("%.0f!/%.0f!", t, t-1))
	}
	for _, c := range fixed {
		if s.consider(c, expr.CategorySynthesized) {
			return true, nil
		}
		if s.spent() {
			return false, s.exhausted()
		}
	}

	// Open-ended families: additive round trips for any target, scaling
	// round trips, and integer decompositions. The attempt budget is the
	// only exit besides completion.
	for i := 1; ; i++ {
		candidates := []string{
			fmt.Sprintf("%s-%d+%d", ts, i, i),
			fmt.Sprintf("%s*%d/%d", ts, i+2, i+2),
		}
		if isInt {
			candidates = append(candidates, fmt.Sprintf("%s+%d", formatNum(t-float64(i)), i))
			if i >= 2 && math.Abs(t) >= 4 && math.Mod(t, float64(i)) == 0 {
				candidates = append(candidates, fmt.Sprintf("%d*%s", i, formatNum(t/float64(i))))
			}
		}
		for _, c := range candidates {
			if s.consider(c, expr.CategorySynthesized) {
				return true, nil
			}
			if s.spent() {
				return false, s.exhausted()
			}
		}
	}
}

// formatNum renders a float the evaluator can parse back, shortest form.
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
