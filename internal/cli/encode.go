package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/codec"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Width int
	Pool  int
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text as an expression grid",
		Long: `Convert text to a grid of cells: a literal "0" per 0-bit and a
verifying expression per 1-bit.

JSON output is the grid object the decode command accepts on stdin.

Exit codes:
  0 - Encoding succeeded
  1 - The diversity pool could not be generated

Examples:
  exprgrid encode "FC"
  exprgrid encode "Hello" --width 16 --pool 12 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Width, "width", codec.DefaultWidth, "grid row width")
	cmd.Flags().IntVar(&opts.Pool, "pool", codec.DefaultPoolSize,
		"diversity pool size for 1-bits")
	return cmd
}

func runEncode(opts *EncodeOptions, text string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	grid, err := codec.Encode(text,
		codec.WithWidth(opts.Width),
		codec.WithPoolSize(opts.Pool),
	)
	if err != nil {
		f.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, "encoding failed")
	}
	f.VerboseLog("encoded %d bytes into %d cells across %d rows",
		len(text), grid.CellCount(), len(grid.Rows))

	if opts.Format == "json" {
		return f.JSON(grid)
	}
	for _, row := range grid.Rows {
		f.Textf("%s", strings.Join(row, " | "))
	}
	return nil
}
