package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/identity"
)

// IdentityData is the success payload of the identity command.
type IdentityData struct {
	Name        string   `json:"name"`
	Size        int      `json:"size"`
	Expressions []string `json:"expressions"`
}

// NewIdentityCommand creates the identity command.
func NewIdentityCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity <name> <size>",
		Short: "Derive a reproducible identity set for a name",
		Long: `Derive a name-seeded sequence of catalog expressions. The same
(name, size) pair always yields the same sequence.

Exit codes:
  0 - Derivation succeeded
  2 - Command error (malformed size)

Examples:
  exprgrid identity Alice 8
  exprgrid identity "Ada Lovelace" 12 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdentity(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runIdentity(opts *RootOptions, name, sizeArg string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	size, err := strconv.Atoi(sizeArg)
	if err != nil || size <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid size %q: must be a positive integer", sizeArg))
	}

	set := identity.DeriveSet(name, size)
	if opts.Format == "json" {
		texts := make([]string, len(set))
		for i, e := range set {
			texts[i] = e.Text
		}
		return f.JSON(IdentityData{Name: name, Size: size, Expressions: texts})
	}
	for _, e := range set {
		f.Textf("%s", e.Text)
	}
	return nil
}
