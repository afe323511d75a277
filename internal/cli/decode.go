package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/codec"
	"github.com/roach88/exprgrid/internal/verify"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	Input     string
	Tolerance float64
}

// DecodeData is the success payload of the decode command.
type DecodeData struct {
	Text string `json:"text"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode an expression grid back to text",
		Long: `Read a grid as JSON (the encode command's --format json output) and
decode it. Every non-zero cell must verify against 1; a cell that fails
is reported as AMBIGUOUS_CELL with its position.

Exit codes:
  0 - Decoding succeeded
  1 - The grid is misaligned or contains an ambiguous cell
  2 - Command error (unreadable input, malformed JSON)

Examples:
  exprgrid encode "FC" --format json | exprgrid decode --input -
  exprgrid decode --input grid.json --tolerance 1e-6`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Input, "input", "-", "grid JSON file, or - for stdin")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", verify.DefaultTolerance,
		"verification tolerance")
	return cmd
}

func runDecode(opts *DecodeOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	grid, err := readGrid(opts.Input, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "reading grid", err)
	}

	text, err := codec.Decode(grid, codec.WithTolerance(opts.Tolerance))
	if err != nil {
		f.Error(errorCode(err), err.Error(), nil)
		return NewExitError(ExitFailure, "decoding failed")
	}

	if opts.Format == "json" {
		return f.JSON(DecodeData{Text: text})
	}
	f.Textf("%s", text)
	return nil
}

// readGrid loads a grid from a file path or stdin. It accepts both a bare
// grid object and the encode command's JSON response envelope.
func readGrid(input string, stdin io.Reader) (*codec.Grid, error) {
	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data *codec.Grid `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var grid codec.Grid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("malformed grid JSON: %w", err)
	}
	return &grid, nil
}
