package cli

import (
	"errors"

	"github.com/roach88/exprgrid/internal/codec"
	"github.com/roach88/exprgrid/internal/diversity"
	"github.com/roach88/exprgrid/internal/expr"
)

// errorCode extracts the structured code from a domain error for CLI
// responses. Unrecognized errors report as UNKNOWN.
func errorCode(err error) string {
	var ce *codec.CodecError
	if errors.As(err, &ce) {
		return string(ce.Code)
	}
	var ge *diversity.GenError
	if errors.As(err, &ge) {
		return string(ge.Code)
	}
	var ee *expr.EvalError
	if errors.As(err, &ee) {
		return string(ee.Code)
	}
	return "UNKNOWN"
}
