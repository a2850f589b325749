package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRunPassingScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "pass",
		Description: "both tools succeed",
		Steps: []Step{
			{
				Command: "eventoffset",
				Args:    []string{"100"},
				Expect:  &ExpectClause{ExitCode: 0, Stdout: strPtr("Event: 100 byte: 6ee bit: 4\n")},
			},
			{
				Command: "tickconv",
				Args:    []string{"-60"},
				Expect:  &ExpectClause{ExitCode: 0, Stdout: strPtr("d -0.001388888888888889 h -0.03333333333333333 m -2.0 s -120\n")},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)

	require.Len(t, result.Trace, 2)
	assert.Equal(t, 1, result.Trace[0].Seq)
	assert.Equal(t, 2, result.Trace[1].Seq)
	assert.Equal(t, "tickconv", result.Trace[1].Command)
	assert.Equal(t, []string{"-60"}, result.Trace[1].Args)
}

func TestRunCollectsMismatches(t *testing.T) {
	scenario := &Scenario{
		Name:        "fail",
		Description: "every expectation is wrong",
		Steps: []Step{
			{
				Command: "eventoffset",
				Args:    []string{"100"},
				Expect:  &ExpectClause{ExitCode: 0, Stdout: strPtr("Event: 100 byte: 6ef bit: 4\n")},
			},
			{
				Command: "tickconv",
				Args:    []string{},
				Expect:  &ExpectClause{ExitCode: 0, StderrContains: "nothing like this"},
			},
			{
				// no expectation means success is required
				Command: "tickconv",
				Args:    []string{"abc"},
			},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "step 1 (eventoffset 100): stdout")
	assert.Contains(t, result.Errors[1], "exit code 2, want 0")
	assert.Contains(t, result.Errors[2], "does not contain")
	assert.Contains(t, result.Errors[3], "step 3 (tickconv abc): exit code 2, want 0")
}

func TestRunFailureLeavesStdoutEmpty(t *testing.T) {
	scenario := &Scenario{
		Name:        "missing",
		Description: "missing argument to either program",
		Steps: []Step{
			{Command: "eventoffset", Args: []string{}, Expect: &ExpectClause{ExitCode: 2, Stdout: strPtr("")}},
			{Command: "tickconv", Args: []string{}, Expect: &ExpectClause{ExitCode: 2, Stdout: strPtr("")}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	for _, event := range result.Trace {
		assert.NotEmpty(t, event.Stderr)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, err := Run(&Scenario{
		Name:        "bad",
		Description: "bad",
		Steps:       []Step{{Command: "nope", Args: []string{}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "nope"`)
}

func TestRunScenarioFiles(t *testing.T) {
	for _, name := range []string{"event_offset", "tick_conversion"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}
