package harness

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/baktools/internal/cli"
)

// Commands maps tool names to their command constructors.
var Commands = map[string]func() *cobra.Command{
	"eventoffset": cli.NewEventOffsetCommand,
	"tickconv":    cli.NewTickConvCommand,
}

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq      int      `json:"seq"`
	Command  string   `json:"command"`
	Args     []string `json:"args"`
	ExitCode int      `json:"exit_code"`
	Stdout   string   `json:"stdout"`
	Stderr   string   `json:"stderr"`
}

// Result is the outcome of running a scenario.
type Result struct {
	Pass   bool
	Errors []string
	Trace  []TraceEvent
}

// Run executes every step of the scenario and checks its expectations.
// Expectation mismatches are collected in Result.Errors; the returned
// error is reserved for scenarios that cannot run at all.
func Run(scenario *Scenario) (*Result, error) {
	result := &Result{Pass: true}

	for i, step := range scenario.Steps {
		newCmd, ok := Commands[step.Command]
		if !ok {
			return nil, fmt.Errorf("steps[%d]: unknown command %q", i, step.Command)
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := newCmd()
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		code := cli.Execute(cmd, step.Args)

		event := TraceEvent{
			Seq:      i + 1,
			Command:  step.Command,
			Args:     append([]string{}, step.Args...),
			ExitCode: code,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
		result.Trace = append(result.Trace, event)

		for _, msg := range checkStep(step, event) {
			result.Errors = append(result.Errors, fmt.Sprintf("step %d (%s %s): %s",
				event.Seq, step.Command, strings.Join(step.Args, " "), msg))
		}
	}

	result.Pass = len(result.Errors) == 0
	return result, nil
}

// checkStep compares an executed step with its expectation.
func checkStep(step Step, event TraceEvent) []string {
	expect := step.Expect
	if expect == nil {
		expect = &ExpectClause{ExitCode: cli.ExitSuccess}
	}

	var errs []string
	if event.ExitCode != expect.ExitCode {
		errs = append(errs, fmt.Sprintf("exit code %d, want %d", event.ExitCode, expect.ExitCode))
	}
	if expect.Stdout != nil && event.Stdout != *expect.Stdout {
		errs = append(errs, fmt.Sprintf("stdout %q, want %q", event.Stdout, *expect.Stdout))
	}
	if expect.StderrContains != "" && !strings.Contains(event.Stderr, expect.StderrContains) {
		errs = append(errs, fmt.Sprintf("stderr %q does not contain %q", event.Stderr, expect.StderrContains))
	}
	return errs
}
