package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/exprgrid/internal/expr"
)

// Compile parses CUE catalog source into a Catalog.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The source must define an `entries` list conforming to the #Entry schema:
// each entry carries the expression text, its declared value (0 or 1), and
// its category. Schema violations surface as *CompileError with position
// information from the CUE evaluator.
func Compile(source string) (*Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(source, cue.Filename("catalog.cue"))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	entriesVal := v.LookupPath(cue.ParsePath("entries"))
	if !entriesVal.Exists() {
		return nil, &CompileError{
			Field:   "entries",
			Message: "entries list is required",
			Pos:     v.Pos(),
		}
	}
	if err := entriesVal.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	iter, err := entriesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	cat := &Catalog{}
	seen := make(map[string]bool)
	for iter.Next() {
		entry, err := parseEntry(iter.Value())
		if err != nil {
			return nil, err
		}
		if seen[entry.Expr.Text] {
			return nil, &CompileError{
				Field:   "entries",
				Message: fmt.Sprintf("duplicate expression %q", entry.Expr.Text),
				Pos:     iter.Value().Pos(),
			}
		}
		seen[entry.Expr.Text] = true
		cat.entries = append(cat.entries, entry)
	}
	if len(cat.entries) == 0 {
		return nil, &CompileError{
			Field:   "entries",
			Message: "at least one entry is required",
			Pos:     entriesVal.Pos(),
		}
	}
	return cat, nil
}

// parseEntry extracts one catalog entry from a CUE list element.
func parseEntry(v cue.Value) (Entry, error) {
	textVal := v.LookupPath(cue.ParsePath("text"))
	text, err := textVal.String()
	if err != nil {
		return Entry{}, formatCUEError(err)
	}

	valueVal := v.LookupPath(cue.ParsePath("value"))
	value, err := valueVal.Float64()
	if err != nil {
		return Entry{}, formatCUEError(err)
	}

	catVal := v.LookupPath(cue.ParsePath("category"))
	catStr, err := catVal.String()
	if err != nil {
		return Entry{}, formatCUEError(err)
	}
	category := expr.Category(catStr)
	if !expr.ValidCategories[category] || category == expr.CategorySynthesized {
		return Entry{}, &CompileError{
			Field:   "category",
			Message: fmt.Sprintf("invalid category %q", catStr),
			Pos:     catVal.Pos(),
		}
	}

	return Entry{
		Expr:  expr.New(text, category),
		Value: value,
	}, nil
}

// CompileError represents a catalog schema violation.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
