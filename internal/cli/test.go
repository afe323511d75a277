package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/exprgrid/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern on scenario names)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name     string   `json:"name"`
	RunToken string   `json:"run_token"`
	Pass     bool     `json:"pass"`
	Errors   []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenario.yaml|scenarios-dir>",
		Short: "Run conformance scenarios",
		Long: `Execute YAML conformance scenarios against the codec, validating step
expectations and final assertions.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, malformed scenarios)

Examples:
  exprgrid test ./scenarios
  exprgrid test ./scenarios --filter "roundtrip-*"
  exprgrid test roundtrip.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by name glob")
	return cmd
}

func runTests(opts *TestOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	scenarios, err := loadScenarios(path, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading scenarios", err)
	}

	runner := harness.NewRunner(nil)
	result := TestResult{}
	for _, scenario := range scenarios {
		f.VerboseLog("running scenario %s", scenario.Name)
		run, err := runner.Run(scenario)
		if err != nil {
			return WrapExitError(ExitCommandError,
				fmt.Sprintf("scenario %s cannot run", scenario.Name), err)
		}
		sr := ScenarioResult{
			Name:     scenario.Name,
			RunToken: run.RunToken,
			Pass:     run.Pass,
			Errors:   run.Errors,
		}
		result.Scenarios = append(result.Scenarios, sr)
		result.Total++
		if run.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := f.JSON(result); err != nil {
			return err
		}
	} else {
		for _, sr := range result.Scenarios {
			status := "PASS"
			if !sr.Pass {
				status = "FAIL"
			}
			f.Textf("%s %s", status, sr.Name)
			for _, msg := range sr.Errors {
				f.Textf("  %s", msg)
			}
		}
		f.Textf("%d/%d scenarios passed", result.Passed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

// loadScenarios resolves a path to scenarios, applying an optional name
// filter.
func loadScenarios(path, filter string) ([]*harness.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var scenarios []*harness.Scenario
	if info.IsDir() {
		scenarios, err = harness.LoadScenarioDir(path)
	} else {
		var s *harness.Scenario
		s, err = harness.LoadScenario(path)
		scenarios = []*harness.Scenario{s}
	}
	if err != nil {
		return nil, err
	}

	if filter == "" {
		return scenarios, nil
	}
	var filtered []*harness.Scenario
	for _, s := range scenarios {
		ok, err := filepath.Match(filter, s.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
		}
		if ok {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no scenarios match filter %q", filter)
	}
	return filtered, nil
}
