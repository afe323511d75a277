package harness

import (
	"errors"
	"fmt"

	"github.com/roach88/exprgrid/internal/codec"
	"github.com/roach88/exprgrid/internal/diversity"
	"github.com/roach88/exprgrid/internal/expr"
	"github.com/roach88/exprgrid/internal/identity"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq       int    `json:"seq"`
	Op        string `json:"op"`
	Text      string `json:"text,omitempty"`
	Rows      int    `json:"rows,omitempty"`
	Cells     int    `json:"cells,omitempty"`
	Count     int    `json:"count,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success; false when any expect
	// clause or assertion failed.
	Pass bool `json:"pass"`

	// RunToken identifies this execution.
	RunToken string `json:"run_token"`

	// Trace contains one event per executed step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation and assertion failures. Empty if Pass.
	Errors []string `json:"errors,omitempty"`
}

// AddError adds a failure and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Runner executes scenarios. The zero value is not usable; construct with
// NewRunner.
type Runner struct {
	tokens TokenGenerator
}

// NewRunner creates a Runner. A nil generator defaults to UUIDv7 tokens.
func NewRunner(tokens TokenGenerator) *Runner {
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}
	return &Runner{tokens: tokens}
}

// Run executes every step and assertion of a scenario.
//
// Expectation and assertion failures are collected on the Result; the
// returned error is reserved for scenarios that cannot run at all (a
// decode step before any grid exists, a tamper step out of bounds).
func (r *Runner) Run(scenario *Scenario) (*Result, error) {
	token := scenario.RunToken
	if token == "" {
		token = r.tokens.Generate()
	}
	result := &Result{Pass: true, RunToken: token, Trace: []TraceEvent{}}

	state := &runState{}
	for i, step := range scenario.Steps {
		event := TraceEvent{Seq: i + 1, Op: step.Op}
		stepErr, runErr := state.execute(step, &event)
		if runErr != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, runErr)
		}
		result.Trace = append(result.Trace, event)
		checkExpect(result, i+1, step, stepErr)
	}

	for i, a := range scenario.Assertions {
		if err := state.assert(a); err != nil {
			result.AddError(fmt.Sprintf("assertion %d: %v", i+1, err))
		}
	}
	return result, nil
}

// checkExpect reconciles a step's outcome with its expect clause.
func checkExpect(result *Result, seq int, step Step, stepErr error) {
	expect := step.Expect
	if expect == nil {
		if stepErr != nil {
			result.AddError(fmt.Sprintf("step %d (%s): unexpected error: %v", seq, step.Op, stepErr))
		}
		return
	}
	if expect.Error != "" {
		if stepErr == nil {
			result.AddError(fmt.Sprintf("step %d (%s): expected error %s, got none", seq, step.Op, expect.Error))
		} else if code := errorCode(stepErr); code != expect.Error {
			result.AddError(fmt.Sprintf("step %d (%s): expected error %s, got %s", seq, step.Op, expect.Error, code))
		}
		return
	}
	if stepErr != nil {
		result.AddError(fmt.Sprintf("step %d (%s): unexpected error: %v", seq, step.Op, stepErr))
		return
	}
	if expect.Text != "" && result.Trace[seq-1].Text != expect.Text {
		result.AddError(fmt.Sprintf("step %d (%s): expected text %q, got %q",
			seq, step.Op, expect.Text, result.Trace[seq-1].Text))
	}
}

// runState carries the artifacts steps leave behind for later steps and
// assertions.
type runState struct {
	grid *codec.Grid

	generated      []expr.Expression
	generateTarget float64

	identitySet  []expr.Expression
	identityName string
	identitySize int
}

// execute runs one step, filling the trace event. The first return value
// is the step's domain error (possibly expected); the second marks the
// scenario itself as unrunnable.
func (s *runState) execute(step Step, event *TraceEvent) (error, error) {
	switch step.Op {
	case OpEncode:
		var opts []codec.Option
		if step.Width > 0 {
			opts = append(opts, codec.WithWidth(step.Width))
		}
		if step.Pool > 0 {
			opts = append(opts, codec.WithPoolSize(step.Pool))
		}
		grid, err := codec.Encode(step.Text, opts...)
		if err != nil {
			event.ErrorCode = errorCode(err)
			return err, nil
		}
		s.grid = grid
		event.Text = step.Text
		event.Rows = len(grid.Rows)
		event.Cells = grid.CellCount()
		return nil, nil

	case OpDecode:
		if s.grid == nil {
			return nil, fmt.Errorf("no grid to decode")
		}
		text, err := codec.Decode(s.grid)
		if err != nil {
			event.ErrorCode = errorCode(err)
			return err, nil
		}
		event.Text = text
		return nil, nil

	case OpTamper:
		if s.grid == nil {
			return nil, fmt.Errorf("no grid to tamper with")
		}
		if step.Row < 0 || step.Col < 0 ||
			step.Row >= len(s.grid.Rows) || step.Col >= len(s.grid.Rows[step.Row]) {
			return nil, fmt.Errorf("cell (%d,%d) out of bounds", step.Row, step.Col)
		}
		s.grid.Rows[step.Row][step.Col] = step.Cell
		event.Text = step.Cell
		return nil, nil

	case OpGenerate:
		exprs, err := diversity.Generate(step.Target, step.MinCount)
		if err != nil {
			event.ErrorCode = errorCode(err)
			return err, nil
		}
		s.generated = exprs
		s.generateTarget = step.Target
		event.Count = len(exprs)
		return nil, nil

	case OpIdentity:
		s.identitySet = identity.DeriveSet(step.Name, step.Size)
		s.identityName = step.Name
		s.identitySize = step.Size
		event.Text = step.Name
		event.Count = len(s.identitySet)
		return nil, nil
	}
	return nil, fmt.Errorf("unknown op %q", step.Op)
}

// errorCode extracts the structured code from a codec, generation, or
// evaluation error; anything else reports as UNKNOWN.
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
