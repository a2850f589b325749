package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a sequence of command
// invocations with their expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are executed in order; each runs a fresh command.
	Steps []Step `yaml:"steps"`
}

// Step is a single command invocation.
type Step struct {
	// Command is the tool name ("eventoffset" or "tickconv").
	Command string `yaml:"command"`

	// Args are the command-line arguments, without the program name.
	Args []string `yaml:"args"`

	// Expect specifies the expected outcome.
	// If nil, only a successful exit is required.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// ExitCode is the expected process exit code.
	ExitCode int `yaml:"exit_code"`

	// Stdout is the exact expected standard output. Nil skips the check;
	// an empty string requires no output.
	Stdout *string `yaml:"stdout,omitempty"`

	// StderrContains must appear in standard error when set.
	StderrContains string `yaml:"stderr_contains,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "step:" vs "steps:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
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
		if step.Command == "" {
			return fmt.Errorf("steps[%d]: command is required", i)
		}
		if _, ok := Commands[step.Command]; !ok {
			return fmt.Errorf("steps[%d]: unknown command %q", i, step.Command)
		}
		if step.Args == nil {
			return fmt.Errorf("steps[%d]: args is required (use [] if no args)", i)
		}
		if step.Expect != nil && step.Expect.ExitCode < 0 {
			return fmt.Errorf("steps[%d].expect: exit_code must be non-negative", i)
		}
	}

	return nil
}
