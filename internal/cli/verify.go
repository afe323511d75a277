package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/expr"
	"github.com/roach88/exprgrid/internal/verify"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Tolerance float64
}

// VerifyData is the success payload of the verify command.
type VerifyData struct {
	Expression string  `json:"expression"`
	Expected   float64 `json:"expected"`
	Tolerance  float64 `json:"tolerance"`
	Verified   bool    `json:"verified"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <expression> <expected>",
		Short: "Verify an expression against an expected value",
		Long: `Evaluate an expression and compare it with an expected value within
a tolerance.

Exit codes:
  0 - The expression verifies
  1 - The expression does not verify or cannot be evaluated
  2 - Command error (malformed expected value)

Examples:
  exprgrid verify "√2" 1.41421356
  exprgrid verify "tan(π/4)" 1 --tolerance 1e-6`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", verify.DefaultTolerance,
		"comparison tolerance")
	return cmd
}

func runVerify(opts *VerifyOptions, text, expectedArg string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	expected, err := strconv.ParseFloat(expectedArg, 64)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid expected value %q", expectedArg))
	}

	ok, err := verify.Verify(text, expected, opts.Tolerance)
	if err != nil {
		f.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, "verification failed")
	}

	data := VerifyData{
		Expression: expr.Canonical(text),
		Expected:   expected,
		Tolerance:  opts.Tolerance,
		Verified:   ok,
	}
	if opts.Format == "json" {
		if err := f.JSON(data); err != nil {
			return err
		}
	} else if ok {
		f.Textf("verified")
	} else {
		f.Textf("not verified")
	}
	if !ok {
		return NewExitError(ExitFailure, "expression does not verify")
	}
	return nil
}
