package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios validate codec contracts by executing a sequence of steps and
// asserting on the resulting trace and state.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps is the ordered list of operations to execute.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state after all steps ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// RunToken is an optional fixed run token for deterministic golden
	// comparison. If empty, a UUIDv7 token is generated per run.
	RunToken string `yaml:"run_token,omitempty"`
}

// Step is one operation in a scenario.
type Step struct {
	// Op selects the operation: encode, decode, tamper, generate, or
	// identity.
	Op string `yaml:"op"`

	// Text is the input text (encode).
	Text string `yaml:"text,omitempty"`

	// Width overrides the grid row width (encode).
	Width int `yaml:"width,omitempty"`

	// Pool overrides the encoder's diversity pool size (encode).
	Pool int `yaml:"pool,omitempty"`

	// Row, Col, and Cell locate and supply a replacement cell (tamper).
	Row  int    `yaml:"row,omitempty"`
	Col  int    `yaml:"col,omitempty"`
	Cell string `yaml:"cell,omitempty"`

	// Target and MinCount drive expression generation (generate).
	Target   float64 `yaml:"target,omitempty"`
	MinCount int     `yaml:"min_count,omitempty"`

	// Name and Size drive identity derivation (identity).
	Name string `yaml:"name,omitempty"`
	Size int    `yaml:"size,omitempty"`

	// Expect specifies the expected outcome. If nil, the step is only
	// required not to fail unexpectedly.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies an expected step outcome.
type ExpectClause struct {
	// Text is the expected decoded text (decode).
	Text string `yaml:"text,omitempty"`

	// Error is the expected error code, e.g. "AMBIGUOUS_CELL". A step
	// with an expected error must fail with exactly that code.
	Error string `yaml:"error,omitempty"`
}

// Step operation constants.
const (
	OpEncode   = "encode"
	OpDecode   = "decode"
	OpTamper   = "tamper"
	OpGenerate = "generate"
	OpIdentity = "identity"
)

var validOps = map[string]bool{
	OpEncode:   true,
	OpDecode:   true,
	OpTamper:   true,
	OpGenerate: true,
	OpIdentity: true,
}

// Assertion validates the state left behind by the steps.
type Assertion struct {
	// Type specifies the assertion type:
	// - "grid_rows": the last grid has exactly Count rows
	// - "cell_count": the last grid has exactly Count cells
	// - "bit_pattern": the last grid's zero/non-zero layout matches Pattern
	// - "distinct_verified": the last generated set is textually unique
	//   and every member verifies against its target
	// - "identity_repeats": re-deriving the last identity set yields an
	//   identical sequence
	Type string `yaml:"type"`

	// Count is the expected number (grid_rows, cell_count).
	Count int `yaml:"count,omitempty"`

	// Pattern is a string of '0' and '1' cells in row-major order
	// (bit_pattern).
	Pattern string `yaml:"pattern,omitempty"`
}

// Assertion type constants.
const (
	AssertGridRows         = "grid_rows"
	AssertCellCount        = "cell_count"
	AssertBitPattern       = "bit_pattern"
	AssertDistinctVerified = "distinct_verified"
	AssertIdentityRepeats  = "identity_repeats"
)

var validAssertions = map[string]bool{
	AssertGridRows:         true,
	AssertCellCount:        true,
	AssertBitPattern:       true,
	AssertDistinctVerified: true,
	AssertIdentityRepeats:  true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name for deterministic execution order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var scenarios []*Scenario
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
		switch step.Op {
		case OpEncode:
			if step.Text == "" {
				return fmt.Errorf("step %d: encode requires text", i)
			}
		case OpTamper:
			if step.Cell == "" {
				return fmt.Errorf("step %d: tamper requires a replacement cell", i)
			}
		case OpIdentity:
			if step.Name == "" || step.Size <= 0 {
				return fmt.Errorf("step %d: identity requires name and a positive size", i)
			}
		}
	}
	for i, a := range s.Assertions {
		if !validAssertions[a.Type] {
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
		if a.Type == AssertBitPattern && a.Pattern == "" {
			return fmt.Errorf("assertion %d: bit_pattern requires a pattern", i)
		}
	}
	return nil
}
