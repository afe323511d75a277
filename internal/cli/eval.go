package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/expr"
)

// EvalData is the success payload of the eval command.
type EvalData struct {
	Expression string  `json:"expression"`
	Value      float64 `json:"value"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a mathematical expression",
		Long: `Evaluate an expression in the codec's grammar to a number.

Exit codes:
  0 - Evaluation succeeded
  1 - The expression is malformed or outside the grammar

Examples:
  exprgrid eval "sin²(1)+cos²(1)"
  exprgrid eval "5!/(4!*5)" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runEval(opts *RootOptions, text string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	value, err := expr.Evaluate(text)
	if err != nil {
		f.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, "evaluation failed")
	}

	if opts.Format == "json" {
		return f.JSON(EvalData{Expression: expr.Canonical(text), Value: value})
	}
	f.Textf("%g", value)
	return nil
}
