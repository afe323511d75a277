package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/diversity"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	MinCount int
}

// GenerateData is the success payload of the generate command.
type GenerateData struct {
	Target      float64  `json:"target"`
	Expressions []string `json:"expressions"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <target>",
		Short: "Generate diverse expressions for a target value",
		Long: `Produce textually distinct expressions that all evaluate to the
target value within the default tolerance.

Exit codes:
  0 - Generation succeeded
  1 - Too few expressions exist or the search budget ran out
  2 - Command error (malformed target)

Examples:
  exprgrid generate 1
  exprgrid generate 42 --min-count 10 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MinCount, "min-count", diversity.DefaultMinCount,
		"number of expressions to generate")
	return cmd
}

func runGenerate(opts *GenerateOptions, targetArg string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	target, err := strconv.ParseFloat(targetArg, 64)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid target %q", targetArg))
	}

	exprs, err := diversity.Generate(target, opts.MinCount)
	if err != nil {
		f.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, "generation failed")
	}

	if opts.Format == "json" {
		texts := make([]string, len(exprs))
		for i, e := range exprs {
			texts[i] = e.Text
		}
		return f.JSON(GenerateData{Target: target, Expressions: texts})
	}
	for _, e := range exprs {
		f.Textf("%s", e.Text)
	}
	return nil
}
